package location

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkallio/stint/internal/cache"
)

const (
	// Coordinates are rounded to 3 decimal places (about 111 m) so nearby
	// lookups share a cache entry.
	cacheTTL    = time.Hour
	cacheSize   = 256
	minInterval = 2 * time.Second
)

// CachedResolver wraps an upstream Resolver with an address cache and a
// minimum interval between upstream requests.
type CachedResolver struct {
	upstream Resolver
	cache    *cache.LRU[string]

	mu       sync.Mutex
	lastCall time.Time

	// now is overridable in tests.
	now func() time.Time
}

// NewCachedResolver decorates upstream with caching and throttling.
func NewCachedResolver(upstream Resolver) *CachedResolver {
	return &CachedResolver{
		upstream: upstream,
		cache:    cache.NewLRU[string](cacheSize, cacheTTL),
		now:      time.Now,
	}
}

// Resolve returns a cached address when one is live, otherwise consults the
// upstream resolver. A cache miss inside the minimum interval returns
// ErrThrottled without calling upstream.
func (r *CachedResolver) Resolve(ctx context.Context, lat, lon float64) (string, error) {
	key := coordKey(lat, lon)
	if addr, ok := r.cache.Get(key); ok {
		return addr, nil
	}

	r.mu.Lock()
	if !r.lastCall.IsZero() && r.now().Sub(r.lastCall) < minInterval {
		r.mu.Unlock()
		return "", ErrThrottled
	}
	r.lastCall = r.now()
	r.mu.Unlock()

	addr, err := r.upstream.Resolve(ctx, lat, lon)
	if err != nil {
		return "", err
	}
	r.cache.Set(key, addr)
	return addr, nil
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.3f,%.3f", lat, lon)
}
