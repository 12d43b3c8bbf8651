package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/schedule"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
)

type tournamentSource interface {
	GetBySlug(ctx context.Context, slug string) (tournament.Tournament, error)
}

type matchSource interface {
	ListByTournament(ctx context.Context, tournamentID int64) ([]match.Match, error)
}

type fieldSource interface {
	List(ctx context.Context, tournamentID int64) ([]tournament.Field, error)
}

// Schedule is everything needed to draw the schedule grid of a tournament.
type Schedule struct {
	Tournament tournament.Tournament
	Lookup     schedule.Lookup
	// Days covers the tournament date range plus any day a match falls on.
	Days   []time.Time
	Weeks  []schedule.Week
	Fields []tournament.Field
}

// FieldName returns the name of fieldID, or "" when the field is unknown.
func (s Schedule) FieldName(fieldID int64) string {
	for _, f := range s.Fields {
		if f.ID == fieldID {
			return f.Name
		}
	}
	return ""
}

type ScheduleService struct {
	tournaments tournamentSource
	matches     matchSource
	fields      fieldSource
}

func NewScheduleService(tournaments tournamentSource, matches matchSource, fields fieldSource) *ScheduleService {
	return &ScheduleService{
		tournaments: tournaments,
		matches:     matches,
		fields:      fields,
	}
}

func (s *ScheduleService) Build(ctx context.Context, slug string) (Schedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Build")
	defer span.End()

	t, err := s.tournaments.GetBySlug(ctx, slug)
	if err != nil {
		return Schedule{}, err
	}

	var (
		matches []match.Match
		fields  []tournament.Field
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		items, err := s.matches.ListByTournament(ctx, t.ID)
		matches = items
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.fields.List(ctx, t.ID)
		fields = items
		return err
	})
	if err := p.Wait(); err != nil {
		return Schedule{}, err
	}

	lookup := schedule.BuildLookup(matches)
	var dateRange []time.Time
	if !t.StartDate.IsZero() && !t.EndDate.IsZero() {
		dateRange = schedule.TournamentDays(t.StartDate, t.EndDate)
	}
	days := mergeDays(dateRange, lookup.Dates())

	sorted := append([]tournament.Field(nil), fields...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return Schedule{
		Tournament: t,
		Lookup:     lookup,
		Days:       days,
		Weeks:      schedule.BucketWeeks(lookup.Dates()),
		Fields:     sorted,
	}, nil
}

func mergeDays(sets ...[]time.Time) []time.Time {
	seen := make(map[time.Time]struct{})
	var out []time.Time
	for _, set := range sets {
		for _, d := range set {
			y, m, day := d.UTC().Date()
			key := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
