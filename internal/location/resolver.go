// Package location resolves geocoordinates to human-readable address labels.
// It only runs at record-creation time: the store and the aggregation engine
// never consult it.
package location

import (
	"context"
	"errors"
)

// ErrThrottled is returned when a cache miss lands inside the minimum
// interval between upstream requests. Callers fall back to a placeholder
// label rather than waiting.
var ErrThrottled = errors.New("geocoding request throttled")

// Resolver turns a coordinate pair into an address string.
type Resolver interface {
	Resolve(ctx context.Context, lat, lon float64) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, lat, lon float64) (string, error)

func (f ResolverFunc) Resolve(ctx context.Context, lat, lon float64) (string, error) {
	return f(ctx, lat, lon)
}
