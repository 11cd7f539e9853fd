// Package influxdb provides InfluxDB connectivity for the netweave daemon.
//
// It wraps the official influxdb-client-go v2 library with netweave-specific
// patterns for connection management, event writing, and health monitoring.
//
// # Purpose
//
// This package handles time-series history for:
//   - Profile lifecycle events (added, updated, removed)
//   - Profile set size over time
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    URL:    "http://localhost:8086",
//	    Token:  "your-token",
//	    Org:    "netweave",
//	    Bucket: "events",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Record a profile change
//	client.WriteProfileEvent("updated", uuid, id, ctype)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are logged via a callback.
// Connection and health check errors are returned directly.
//
// # Performance
//
// Writes are batched according to config.yaml settings (batch_size, flush_interval).
// This keeps event recording off the profile operations' critical path.
package influxdb
