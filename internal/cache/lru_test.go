package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_SetGet(t *testing.T) {
	c := NewLRU[string](4, time.Hour)
	c.Set("a", "1")

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRU_TTLExpiry(t *testing.T) {
	c := NewLRU[int](4, time.Hour)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("k", 7)
	now = now.Add(59 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry past TTL must read as absent")
	assert.Zero(t, c.Len(), "expired entry swept on access")
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int](2, time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // refresh a's recency
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestLRU_SetRefreshesExisting(t *testing.T) {
	c := NewLRU[int](2, time.Hour)
	c.Set("a", 1)
	c.Set("a", 2)
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}
