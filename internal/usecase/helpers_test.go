package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
	"github.com/osu-ultimate/tournament-console/internal/platform/resilience"
)

// statusError stands in for a backend error carrying an HTTP status.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string   { return e.message }
func (e *statusError) StatusCode() int { return e.status }

func newTestQueries(t *testing.T) *cache.QueryCache {
	t.Helper()

	return cache.New(cache.Config{
		StaleTime:  time.Minute,
		GCTime:     time.Minute,
		MaxEntries: 100,
		Retry:      resilience.RetryConfig{MaxRetries: 0, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
	}, cache.WithLogger(logging.NewNop()))
}

func sameContext(ctx context.Context) interface{} {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

func ptr[T any](v T) *T { return &v }
