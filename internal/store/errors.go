package store

import "errors"

var (
	// ErrProfileNotFound is returned when no stored profile matches the
	// requested UUID.
	ErrProfileNotFound = errors.New("store: profile not found")

	// ErrProfileExists is returned when creating a profile whose UUID is
	// already stored.
	ErrProfileExists = errors.New("store: profile already exists")

	// ErrProfileInvalid is returned when a profile offered for storage
	// fails verification or lacks a UUID.
	ErrProfileInvalid = errors.New("store: profile invalid")
)
