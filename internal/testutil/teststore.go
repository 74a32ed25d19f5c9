package testutil

import (
	"context"
	"testing"

	"github.com/mkallio/stint/internal/storage"
	"github.com/mkallio/stint/internal/store"
)

// NewTestStore creates a Store backed by an in-memory backend.
func NewTestStore(t *testing.T) (*store.Store, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	s, err := store.Open(context.Background(), backend, nil)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s, backend
}

// NewTestSQLiteStore creates a Store backed by an in-memory SQLite database.
func NewTestSQLiteStore(t *testing.T) *store.Store {
	t.Helper()
	backend, err := storage.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { backend.Close() })

	s, err := store.Open(context.Background(), backend, nil)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s
}
