package cache

import (
	"context"
	"fmt"
)

// Fetch is a typed Read: it returns the cached data, or the error of a
// failed fetch.
func Fetch[T any](ctx context.Context, q *QueryCache, key Key, fetcher func(context.Context) (T, error), opts ...ReadOption) (T, error) {
	var zero T

	st := q.Read(ctx, key, func(ctx context.Context) (any, error) {
		return fetcher(ctx)
	}, opts...)
	if st.Status != StatusSuccess {
		if st.Err == nil {
			return zero, fmt.Errorf("query %s is %s", key.display(), st.Status)
		}
		return zero, st.Err
	}
	if st.Data == nil {
		return zero, nil
	}

	v, ok := st.Data.(T)
	if !ok {
		return zero, fmt.Errorf("query %s holds %T, want %T", key.display(), st.Data, zero)
	}
	return v, nil
}

// Mutate runs fn exactly once. On success every prefix in invalidate is
// marked stale before Mutate returns.
func Mutate[T any](ctx context.Context, q *QueryCache, fn func(context.Context) (T, error), invalidate ...Key) (T, error) {
	v, err := fn(ctx)
	if err != nil {
		return v, err
	}
	for _, prefix := range invalidate {
		q.Invalidate(prefix)
	}
	return v, nil
}
