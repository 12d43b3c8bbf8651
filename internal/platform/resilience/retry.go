package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// StatusCoder is implemented by errors that carry an HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// IsClientError reports whether err carries a 4xx status anywhere in its chain.
func IsClientError(err error) bool {
	var sc StatusCoder
	if !errors.As(err, &sc) {
		return false
	}
	code := sc.StatusCode()
	return code >= 400 && code < 500
}

// RetryNotify is called before each wait with the failed attempt number (1-based).
type RetryNotify func(attempt int, err error, wait time.Duration)

// Retry runs op until it succeeds, returns a client error, exhausts
// cfg.MaxRetries or ctx ends. It returns the number of failed attempts
// alongside the result.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func(context.Context) (T, error), notify RetryNotify) (T, int, error) {
	cfg = NormalizeRetryConfig(cfg)

	failures := 0
	operation := func() (T, error) {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		failures++
		if IsClientError(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	v, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(newBackOff(cfg)),
		backoff.WithMaxTries(uint(cfg.MaxRetries+1)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			if notify != nil {
				notify(failures, err, wait)
			}
		}),
	)
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}
	return v, failures, err
}

// newBackOff doubles the wait from BaseDelay up to MaxDelay, without jitter.
func newBackOff(cfg RetryConfig) *backoff.ExponentialBackOff {
	policy := &backoff.ExponentialBackOff{
		InitialInterval:     cfg.BaseDelay,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         cfg.MaxDelay,
	}
	policy.Reset()
	return policy
}
