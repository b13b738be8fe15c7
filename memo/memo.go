// Package memo caches the results of a function by an explicit key.
//
// The key is built by a caller supplied function, never by serializing the
// arguments, so two arguments share a result only when the key function says
// they are the same. Results are held in an lru.Cache.
package memo

import (
	"context"
	"fmt"

	"go.expect.digital/aoc/lru"
)

// Memo wraps a function with a cache of its results.
type Memo[A any, K comparable, V any] struct {
	fn    func(ctx context.Context, arg A) (V, error)
	key   func(A) K
	cache *lru.Cache[K, V]
}

// New returns fn memoized by key. Options configure the underlying cache,
// e.g. lru.WithSize to bound the number of results kept.
func New[A any, K comparable, V any](
	fn func(ctx context.Context, arg A) (V, error),
	key func(A) K,
	options ...lru.Option[K, V],
) *Memo[A, K, V] {
	return &Memo[A, K, V]{
		fn:    fn,
		key:   key,
		cache: lru.New(options...),
	}
}

// Call returns the cached result for arg, calling the wrapped function on a miss.
// Errors are not cached.
func (m *Memo[A, K, V]) Call(ctx context.Context, arg A) (V, error) { //nolint:ireturn
	k := m.key(arg)

	if v, ok := m.cache.Lookup(k); ok {
		return v, nil
	}

	v, err := m.fn(ctx, arg)
	if err != nil {
		return v, err
	}

	if err := m.cache.Set(ctx, k, v); err != nil {
		return v, fmt.Errorf("memo set: %w", err)
	}

	return v, nil
}

// Len returns the number of cached results.
func (m *Memo[A, K, V]) Len() int {
	return m.cache.Len()
}

// Identity is a key function for arguments that are comparable themselves.
func Identity[A comparable](a A) A { return a }
