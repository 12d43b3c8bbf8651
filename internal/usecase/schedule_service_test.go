package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/team"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	matchmock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/match"
	tournamentmock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/tournament"
)

type scheduleFixture struct {
	tournaments *tournamentmock.Repository
	matches     *matchmock.Repository
	fields      *tournamentmock.FieldRepository
	service     *ScheduleService
}

func newScheduleFixture(t *testing.T) scheduleFixture {
	t.Helper()

	queries := newTestQueries(t)
	f := scheduleFixture{
		tournaments: tournamentmock.NewRepository(t),
		matches:     matchmock.NewRepository(t),
		fields:      tournamentmock.NewFieldRepository(t),
	}
	f.service = NewScheduleService(
		NewTournamentService(f.tournaments, queries),
		NewMatchService(f.matches, queries),
		NewFieldService(f.fields, queries),
	)
	return f
}

func TestScheduleService_Build(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)
	fieldA := tournament.Field{ID: 2, TournamentID: 3, Name: "Field A"}
	fieldB := tournament.Field{ID: 1, TournamentID: 3, Name: "Field B"}
	kickoff := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 17, 15, 0, 0, 0, time.UTC)

	f.tournaments.
		On("GetBySlug", mock.Anything, "osu-open").
		Return(tournament.Tournament{
			ID:        3,
			Slug:      "osu-open",
			StartDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		}, nil).
		Once()
	f.matches.
		On("ListByTournament", mock.Anything, int64(3)).
		Return([]match.Match{
			{ID: 40, Time: &kickoff, DurationMins: 75, Field: &fieldA, Team1: match.Resolved{Team: team.Team{ID: 10}}, Team2: match.Placeholder{Seed: 4}},
			{ID: 41, Time: &late, DurationMins: 75, Field: &fieldB},
			{ID: 42},
		}, nil).
		Once()
	f.fields.
		On("ListByTournament", mock.Anything, int64(3)).
		Return([]tournament.Field{fieldA, fieldB}, nil).
		Once()

	got, err := f.service.Build(context.Background(), "osu-open")
	require.NoError(t, err)

	require.Len(t, got.Days, 3)
	assert.True(t, got.Days[0].Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.True(t, got.Days[2].Equal(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)))

	// Weeks hold match days only: the empty Sunday the 15th is left out.
	require.Len(t, got.Weeks, 2)
	assert.Equal(t, "Week 1", got.Weeks[0].Label)
	require.Len(t, got.Weeks[0].Days, 1)
	assert.True(t, got.Weeks[0].Days[0].Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))
	require.Len(t, got.Weeks[1].Days, 1)
	assert.True(t, got.Weeks[1].Days[0].Equal(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, 2, got.Lookup.Len())
	require.Len(t, got.Lookup.Unscheduled, 1)
	assert.Equal(t, int64(42), got.Lookup.Unscheduled[0].ID)

	require.Len(t, got.Fields, 2)
	assert.Equal(t, int64(1), got.Fields[0].ID)
	assert.Equal(t, "Field A", got.FieldName(2))
	assert.Equal(t, "", got.FieldName(9))
}

func TestScheduleService_Build_PropagatesFetchError(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)
	f.tournaments.
		On("GetBySlug", mock.Anything, "osu-open").
		Return(tournament.Tournament{ID: 3, Slug: "osu-open"}, nil).
		Once()
	f.matches.
		On("ListByTournament", mock.Anything, int64(3)).
		Return(nil, &statusError{status: http.StatusServiceUnavailable, message: "unavailable"}).
		Once()
	f.fields.
		On("ListByTournament", mock.Anything, int64(3)).
		Return([]tournament.Field{}, nil).
		Maybe()

	_, err := f.service.Build(context.Background(), "osu-open")
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestScheduleService_Build_WeeksFollowMatchDays(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)
	field := tournament.Field{ID: 1, TournamentID: 5, Name: "Main"}
	monday := time.Date(2025, 3, 24, 10, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 3, 26, 10, 0, 0, 0, time.UTC)

	f.tournaments.
		On("GetBySlug", mock.Anything, "spring-league").
		Return(tournament.Tournament{
			ID:        5,
			Slug:      "spring-league",
			StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		}, nil).
		Once()
	f.matches.
		On("ListByTournament", mock.Anything, int64(5)).
		Return([]match.Match{
			{ID: 1, Time: &monday, DurationMins: 60, Field: &field},
			{ID: 2, Time: &wednesday, DurationMins: 60, Field: &field},
		}, nil).
		Once()
	f.fields.
		On("ListByTournament", mock.Anything, int64(5)).
		Return([]tournament.Field{field}, nil).
		Once()

	got, err := f.service.Build(context.Background(), "spring-league")
	require.NoError(t, err)

	assert.Len(t, got.Days, 31)
	require.Len(t, got.Weeks, 1)
	assert.Equal(t, "Week 1", got.Weeks[0].Label)
	require.Len(t, got.Weeks[0].Days, 2)
	assert.True(t, got.Weeks[0].Days[0].Equal(time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)))
	assert.True(t, got.Weeks[0].Days[1].Equal(time.Date(2025, 3, 26, 0, 0, 0, 0, time.UTC)))
}
