package resilience

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type statusErr int

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", int(e)) }
func (e statusErr) StatusCode() int { return int(e) }

func TestNewBackOff_DoublesUpToMaxDelay(t *testing.T) {
	policy := newBackOff(RetryConfig{MaxRetries: 3, BaseDelay: time.Second, MaxDelay: 30 * time.Second})

	want := []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		30 * time.Second,
		30 * time.Second,
	}
	for i, w := range want {
		if got := policy.NextBackOff(); got != w {
			t.Fatalf("wait %d = %s, want %s", i, got, w)
		}
	}
}

func TestRetry_ClientErrorIsNotRetried(t *testing.T) {
	calls := 0
	_, failures, err := Retry(context.Background(), RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond},
		func(context.Context) (string, error) {
			calls++
			return "", fmt.Errorf("wrapped: %w", statusErr(404))
		}, nil)

	if !IsClientError(err) {
		t.Fatalf("expected client error returned, got %v", err)
	}
	if calls != 1 || failures != 1 {
		t.Fatalf("expected exactly one attempt, calls=%d failures=%d", calls, failures)
	}
}

func TestRetry_ServerErrorRetriesWithIncreasingDelay(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: 2 * time.Millisecond, MaxDelay: 6 * time.Millisecond}

	var waits []time.Duration
	calls := 0
	_, failures, err := Retry(context.Background(), cfg,
		func(context.Context) (int, error) {
			calls++
			return 0, statusErr(503)
		},
		func(_ int, _ error, wait time.Duration) {
			waits = append(waits, wait)
		})

	if err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if calls != 4 || failures != 4 {
		t.Fatalf("expected 1 attempt + 3 retries, calls=%d failures=%d", calls, failures)
	}
	want := []time.Duration{2 * time.Millisecond, 4 * time.Millisecond, 6 * time.Millisecond}
	if len(waits) != len(want) {
		t.Fatalf("expected %d waits, got %v", len(want), waits)
	}
	for i := range want {
		if waits[i] != want[i] {
			t.Fatalf("wait[%d] = %s, want %s", i, waits[i], want[i])
		}
	}
}

func TestRetry_TransportErrorEventuallySucceeds(t *testing.T) {
	calls := 0
	v, failures, err := Retry(context.Background(), RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
		func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection reset")
			}
			return "ok", nil
		}, nil)

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if v != "ok" || failures != 2 {
		t.Fatalf("unexpected result v=%q failures=%d", v, failures)
	}
}
