package store

import "errors"

var (
	// ErrNotFound indicates an update referenced an unknown record id.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRange indicates an end time before the start time. The
	// mutation is rejected before any state changes.
	ErrInvalidRange = errors.New("end time before start time")

	// ErrPersistence indicates the storage backend failed to durably write
	// a mutation. In-memory state has been rolled back to match storage.
	ErrPersistence = errors.New("persistence failure")
)
