package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryBackend is an in-memory Backend used by tests. Writes can be made to
// fail on demand to exercise persistence-failure rollback paths.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string][]byte

	// PutErr, when non-nil, is returned by every Put until cleared.
	PutErr error
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	value, ok := b.data[key]
	if !ok {
		return nil, fmt.Errorf("state %q: %w", key, ErrKeyNotFound)
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (b *MemoryBackend) Put(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.PutErr != nil {
		return b.PutErr
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	b.data[key] = stored
	return nil
}

func (b *MemoryBackend) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

func (b *MemoryBackend) Close() error { return nil }

// SetRaw seeds a key directly, bypassing Put failure injection. Tests use it
// to plant corrupt blobs.
func (b *MemoryBackend) SetRaw(key string, value []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
}
