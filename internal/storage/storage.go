// Package storage provides the keyed-blob persistence layer backing the
// record store. State lives under three well-known keys; values are JSON.
package storage

import (
	"context"
	"errors"
)

// Well-known state keys.
const (
	KeyRecords    = "records"
	KeyInProgress = "in_progress"
	KeyCompanies  = "companies"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
// Callers treat it as "empty state", not a failure.
var ErrKeyNotFound = errors.New("key not found")

// Backend is a keyed blob store. Implementations must make Put durable
// before returning.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
