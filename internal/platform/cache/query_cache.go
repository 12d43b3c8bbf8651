package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
	"github.com/osu-ultimate/tournament-console/internal/platform/resilience"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is a snapshot of one cache entry.
type State struct {
	Status       Status
	Data         any
	Err          error
	UpdatedAt    time.Time
	ErrorAt      time.Time
	FailureCount int
	Invalidated  bool
}

type Fetcher func(ctx context.Context) (any, error)

// RetryHook observes every scheduled retry of a fetch.
type RetryHook func(key Key, attempt int, err error, wait time.Duration)

type Config struct {
	// StaleTime is how long a successful result is served without refetching.
	// Negative means never stale.
	StaleTime time.Duration
	// GCTime is how long an unread entry survives once the cache is over MaxEntries.
	GCTime     time.Duration
	MaxEntries int
	Retry      resilience.RetryConfig
}

func DefaultConfig() Config {
	return Config{
		StaleTime:  5 * time.Minute,
		GCTime:     5 * time.Minute,
		MaxEntries: 1000,
		Retry:      resilience.DefaultRetryConfig(),
	}
}

type Option func(*QueryCache)

func WithLogger(logger *logging.Logger) Option {
	return func(q *QueryCache) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithClock replaces the time source used for staleness.
func WithClock(now func() time.Time) Option {
	return func(q *QueryCache) {
		if now != nil {
			q.now = now
		}
	}
}

func WithRetryHook(hook RetryHook) Option {
	return func(q *QueryCache) {
		q.onRetry = hook
	}
}

type readOptions struct {
	staleTime time.Duration
	retry     resilience.RetryConfig
}

type ReadOption func(*readOptions)

func WithStaleTime(d time.Duration) ReadOption {
	return func(o *readOptions) { o.staleTime = d }
}

func WithRetry(cfg resilience.RetryConfig) ReadOption {
	return func(o *readOptions) { o.retry = cfg }
}

func WithoutRetry() ReadOption {
	return func(o *readOptions) { o.retry.MaxRetries = 0 }
}

type entry struct {
	key           Key
	state         State
	invalidations uint64
	lastRead      time.Time
}

// QueryCache maps query keys to fetched results. It is safe for concurrent
// use; concurrent reads of one key share a single fetch.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	flight  resilience.SingleFlight

	cfg     Config
	now     func() time.Time
	logger  *logging.Logger
	onRetry RetryHook
	tracer  trace.Tracer
}

func New(cfg Config, opts ...Option) *QueryCache {
	defaults := DefaultConfig()
	if cfg.StaleTime == 0 {
		cfg.StaleTime = defaults.StaleTime
	}
	if cfg.GCTime <= 0 {
		cfg.GCTime = defaults.GCTime
	}
	if cfg.MaxEntries < 0 {
		cfg.MaxEntries = 0
	}
	cfg.Retry = resilience.NormalizeRetryConfig(cfg.Retry)

	q := &QueryCache{
		entries: make(map[string]*entry),
		cfg:     cfg,
		now:     time.Now,
		logger:  logging.Default(),
		tracer:  otel.Tracer("github.com/osu-ultimate/tournament-console/internal/platform/cache"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(q)
		}
	}
	return q
}

func (q *QueryCache) Config() Config {
	return q.cfg
}

// Read returns the state for key, calling fetcher first when there is no
// entry, the entry is older than the stale time, or it was invalidated.
func (q *QueryCache) Read(ctx context.Context, key Key, fetcher Fetcher, opts ...ReadOption) State {
	ro := readOptions{staleTime: q.cfg.StaleTime, retry: q.cfg.Retry}
	for _, opt := range opts {
		if opt != nil {
			opt(&ro)
		}
	}

	enc := key.String()
	if st, fresh := q.touch(enc, ro.staleTime); fresh {
		return st
	}

	v, err, _ := q.flight.DoContext(ctx, enc, func() (any, error) {
		return q.fetch(ctx, key, enc, fetcher, ro), nil
	})
	if err != nil {
		st, _ := q.Peek(key)
		return State{Status: StatusPending, Data: st.Data, Err: err, UpdatedAt: st.UpdatedAt}
	}
	return v.(State)
}

// Peek returns the current state without fetching.
func (q *QueryCache) Peek(key Key) (State, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	e, ok := q.entries[key.String()]
	if !ok {
		return State{}, false
	}
	return e.state, true
}

// Set stores data for key as a fresh successful result.
func (q *QueryCache) Set(key Key, data any) {
	enc := key.String()
	now := q.now()

	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.entries[enc]
	if !ok {
		e = &entry{key: key}
		q.entries[enc] = e
	}
	e.state = State{Status: StatusSuccess, Data: data, UpdatedAt: now}
	e.lastRead = now
	q.evictLocked(now)
}

// Invalidate marks every entry whose key starts with prefix as stale and
// returns how many were marked. An empty prefix matches everything.
func (q *QueryCache) Invalidate(prefix Key) int {
	pfx := prefix.String()

	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for enc, e := range q.entries {
		if !strings.HasPrefix(enc, pfx) {
			continue
		}
		e.invalidations++
		e.state.Invalidated = true
		n++
	}
	return n
}

// Remove drops every entry whose key starts with prefix.
func (q *QueryCache) Remove(prefix Key) int {
	pfx := prefix.String()

	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for enc := range q.entries {
		if strings.HasPrefix(enc, pfx) {
			delete(q.entries, enc)
			n++
		}
	}
	return n
}

func (q *QueryCache) Clear() {
	q.mu.Lock()
	q.entries = make(map[string]*entry)
	q.mu.Unlock()
}

func (q *QueryCache) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.entries)
}

// Keys returns the keys currently held that start with prefix.
func (q *QueryCache) Keys(prefix Key) []Key {
	pfx := prefix.String()

	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]Key, 0, len(q.entries))
	for enc, e := range q.entries {
		if strings.HasPrefix(enc, pfx) {
			out = append(out, e.key)
		}
	}
	return out
}

func (q *QueryCache) touch(enc string, staleTime time.Duration) (State, bool) {
	now := q.now()

	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.entries[enc]
	if !ok {
		return State{}, false
	}
	e.lastRead = now
	return e.state, isFresh(e.state, now, staleTime)
}

func isFresh(st State, now time.Time, staleTime time.Duration) bool {
	if st.Status != StatusSuccess || st.Invalidated {
		return false
	}
	if staleTime < 0 {
		return true
	}
	return now.Sub(st.UpdatedAt) <= staleTime
}

func (q *QueryCache) fetch(ctx context.Context, key Key, enc string, fetcher Fetcher, ro readOptions) State {
	now := q.now()

	q.mu.Lock()
	e, ok := q.entries[enc]
	if ok && isFresh(e.state, now, ro.staleTime) {
		st := e.state
		q.mu.Unlock()
		return st
	}
	if !ok {
		e = &entry{key: key, state: State{Status: StatusPending}}
		q.entries[enc] = e
	}
	e.lastRead = now
	startInvalidations := e.invalidations
	q.evictLocked(now)
	q.mu.Unlock()

	// Callers share this fetch, so one caller going away must not cancel it.
	fetchCtx := context.WithoutCancel(ctx)
	fetchCtx, span := q.tracer.Start(fetchCtx, "cache.QueryCache.fetch",
		trace.WithAttributes(attribute.String("cache.key", key.display())),
	)
	defer span.End()

	data, failures, err := resilience.Retry(fetchCtx, ro.retry,
		func(c context.Context) (any, error) {
			if fetcher == nil {
				return nil, fmt.Errorf("query %s has no fetcher", key.display())
			}
			return fetcher(c)
		},
		func(attempt int, err error, wait time.Duration) {
			q.logger.WarnContext(fetchCtx, "query fetch failed, retrying",
				"key", key.display(),
				"attempt", attempt,
				"retry_in", wait,
				"error", err,
			)
			if q.onRetry != nil {
				q.onRetry(key, attempt, err, wait)
			}
		},
	)

	q.mu.Lock()
	defer q.mu.Unlock()

	now = q.now()
	var st State
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		q.logger.WarnContext(fetchCtx, "query fetch failed", "key", key.display(), "failures", failures, "error", err)

		st = e.state
		st.Status = StatusError
		st.Err = err
		st.ErrorAt = now
		st.FailureCount = failures
	} else {
		st = State{
			Status:      StatusSuccess,
			Data:        data,
			UpdatedAt:   now,
			Invalidated: e.invalidations != startInvalidations,
		}
	}

	// Removed while fetching: hand the result to the callers but keep it out of the cache.
	if cur, ok := q.entries[enc]; ok && cur == e {
		e.state = st
	}
	return st
}

// evictLocked trims the cache to MaxEntries, dropping entries unread for
// GCTime first and then the least recently read. In-flight keys are kept.
func (q *QueryCache) evictLocked(now time.Time) {
	if q.cfg.MaxEntries == 0 || len(q.entries) <= q.cfg.MaxEntries {
		return
	}

	for enc, e := range q.entries {
		if len(q.entries) <= q.cfg.MaxEntries {
			return
		}
		if now.Sub(e.lastRead) > q.cfg.GCTime && !q.flight.InFlight(enc) {
			delete(q.entries, enc)
		}
	}
	if len(q.entries) <= q.cfg.MaxEntries {
		return
	}

	type candidate struct {
		enc      string
		lastRead time.Time
	}
	candidates := make([]candidate, 0, len(q.entries))
	for enc, e := range q.entries {
		candidates = append(candidates, candidate{enc: enc, lastRead: e.lastRead})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].lastRead.Before(candidates[j].lastRead)
	})
	for _, c := range candidates {
		if len(q.entries) <= q.cfg.MaxEntries {
			return
		}
		if q.flight.InFlight(c.enc) {
			continue
		}
		delete(q.entries, c.enc)
	}
}
