package jobs

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
)

type fakeTournaments struct {
	items []tournament.Tournament
	err   error
}

func (f *fakeTournaments) List(context.Context) ([]tournament.Tournament, error) {
	return f.items, f.err
}

type fakeRefresher struct {
	mu      sync.Mutex
	calls   []int64
	failFor map[int64]bool
	called  chan struct{}
}

func (f *fakeRefresher) record(id int64) error {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.mu.Unlock()
	if f.called != nil {
		select {
		case f.called <- struct{}{}:
		default:
		}
	}
	if f.failFor[id] {
		return errors.New("backend unavailable")
	}
	return nil
}

func (f *fakeRefresher) ids() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]int64(nil), f.calls...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type fakeMatches struct{ fakeRefresher }

func (f *fakeMatches) Refresh(_ context.Context, id int64) ([]match.Match, error) {
	return nil, f.record(id)
}

type fakeFields struct{ fakeRefresher }

func (f *fakeFields) Refresh(_ context.Context, id int64) ([]tournament.Field, error) {
	return nil, f.record(id)
}

func TestNewCacheWarmer_RequiresInterval(t *testing.T) {
	_, err := NewCacheWarmer(WarmerConfig{}, &fakeTournaments{}, &fakeMatches{}, &fakeFields{}, logging.NewNop())
	require.Error(t, err)
}

func TestCacheWarmer_RunOnce_RefreshesLiveTournamentsOnly(t *testing.T) {
	t.Parallel()

	tournaments := &fakeTournaments{items: []tournament.Tournament{
		{ID: 1, Slug: "regionals", Status: tournament.StatusLive},
		{ID: 2, Slug: "hat", Status: tournament.StatusDraft},
		{ID: 3, Slug: "nationals", Status: tournament.StatusLive},
		{ID: 4, Slug: "winter-league", Status: tournament.StatusCompleted},
	}}
	matches := &fakeMatches{}
	fields := &fakeFields{}

	warmer, err := NewCacheWarmer(WarmerConfig{Interval: time.Minute, Workers: 3}, tournaments, matches, fields, logging.NewNop())
	require.NoError(t, err)

	result, err := warmer.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Tournaments)
	assert.Equal(t, 4, result.Refreshed)
	assert.Zero(t, result.Failed)
	assert.Equal(t, []int64{1, 3}, matches.ids())
	assert.Equal(t, []int64{1, 3}, fields.ids())
}

func TestCacheWarmer_RunOnce_CountsFailures(t *testing.T) {
	t.Parallel()

	tournaments := &fakeTournaments{items: []tournament.Tournament{
		{ID: 7, Slug: "nationals", Status: tournament.StatusLive},
	}}
	matches := &fakeMatches{}
	fields := &fakeFields{fakeRefresher{failFor: map[int64]bool{7: true}}}

	warmer, err := NewCacheWarmer(WarmerConfig{Interval: time.Minute, Workers: 2}, tournaments, matches, fields, logging.NewNop())
	require.NoError(t, err)

	result, err := warmer.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Refreshed)
	assert.Equal(t, 1, result.Failed)
}

func TestCacheWarmer_RunOnce_ListError(t *testing.T) {
	t.Parallel()

	tournaments := &fakeTournaments{err: errors.New("timeout")}
	warmer, err := NewCacheWarmer(WarmerConfig{Interval: time.Minute}, tournaments, &fakeMatches{}, &fakeFields{}, logging.NewNop())
	require.NoError(t, err)

	_, err = warmer.RunOnce(context.Background())
	require.Error(t, err)
}

func TestCacheWarmer_RunOnce_NoLiveTournaments(t *testing.T) {
	t.Parallel()

	tournaments := &fakeTournaments{items: []tournament.Tournament{{ID: 1, Status: tournament.StatusDraft}}}
	matches := &fakeMatches{}
	warmer, err := NewCacheWarmer(WarmerConfig{Interval: time.Minute}, tournaments, matches, &fakeFields{}, logging.NewNop())
	require.NoError(t, err)

	result, err := warmer.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Tournaments)
	assert.Empty(t, matches.ids())
}

func TestCacheWarmer_StartRunsImmediately(t *testing.T) {
	tournaments := &fakeTournaments{items: []tournament.Tournament{{ID: 9, Status: tournament.StatusLive}}}
	matches := &fakeMatches{fakeRefresher{called: make(chan struct{}, 1)}}

	warmer, err := NewCacheWarmer(WarmerConfig{Interval: time.Hour}, tournaments, matches, &fakeFields{}, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, warmer.Start())
	t.Cleanup(func() { _ = warmer.Stop() })

	select {
	case <-matches.called:
	case <-time.After(5 * time.Second):
		t.Fatal("expected the first warm pass to run on start")
	}

	require.NoError(t, warmer.Stop())
	require.NoError(t, warmer.Stop())
}
