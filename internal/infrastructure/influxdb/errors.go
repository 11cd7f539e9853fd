package influxdb

import "errors"

// Sentinel errors for event-history operations, matched with errors.Is.
var (
	ErrNotConnected     = errors.New("influxdb: not connected")
	ErrConnectionFailed = errors.New("influxdb: connection failed")

	// ErrWriteFailed surfaces synchronous write failures only; batch
	// writes report errors through the error callback instead.
	ErrWriteFailed = errors.New("influxdb: write failed")

	ErrDisabled = errors.New("influxdb: disabled in configuration")
)
