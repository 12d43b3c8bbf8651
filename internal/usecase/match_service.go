package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
)

const (
	spiritCategoryMin = 0
	spiritCategoryMax = 4
)

type MatchService struct {
	repo    match.Repository
	queries *cache.QueryCache
}

func NewMatchService(repo match.Repository, queries *cache.QueryCache) *MatchService {
	return &MatchService{
		repo:    repo,
		queries: queries,
	}
}

func (s *MatchService) ListByTournament(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTournament", tournamentAttr(tournamentID))
	defer span.End()

	return cache.Fetch(ctx, s.queries, matchesKey(tournamentID), func(ctx context.Context) ([]match.Match, error) {
		items, err := s.repo.ListByTournament(ctx, tournamentID)
		return items, backendError("list matches", err)
	})
}

func (s *MatchService) ListByTeam(ctx context.Context, tournamentSlug, teamSlug string) ([]match.Match, error) {
	tournamentSlug = strings.TrimSpace(tournamentSlug)
	teamSlug = strings.TrimSpace(teamSlug)
	if tournamentSlug == "" || teamSlug == "" {
		return nil, fmt.Errorf("%w: tournament slug and team slug are required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, teamMatchesKey(tournamentSlug, teamSlug), func(ctx context.Context) ([]match.Match, error) {
		items, err := s.repo.ListByTeam(ctx, tournamentSlug, teamSlug)
		return items, backendError("list team matches", err)
	})
}

func (s *MatchService) Get(ctx context.Context, id int64) (match.Match, error) {
	if id <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, matchKey(id), func(ctx context.Context) (match.Match, error) {
		item, err := s.repo.GetByID(ctx, id)
		return item, backendError(fmt.Sprintf("get match %d", id), err)
	})
}

func (s *MatchService) Stats(ctx context.Context, id int64) (match.Stats, error) {
	if id <= 0 {
		return match.Stats{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, matchStatsKey(id), func(ctx context.Context) (match.Stats, error) {
		stats, err := s.repo.Stats(ctx, id)
		return stats, backendError(fmt.Sprintf("get match %d stats", id), err)
	})
}

func (s *MatchService) Create(ctx context.Context, input match.CreateInput) (match.Match, error) {
	if err := validateCreateMatch(input); err != nil {
		return match.Match{}, err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (match.Match, error) {
		item, err := s.repo.Create(ctx, input)
		return item, backendError("create match", err)
	}, keyMatches)
}

func (s *MatchService) Update(ctx context.Context, id int64, input match.UpdateInput) (match.Match, error) {
	if id <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.IsEmpty() {
		return match.Match{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if input.DurationMins != nil && *input.DurationMins <= 0 {
		return match.Match{}, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if input.FieldID != nil && *input.FieldID <= 0 {
		return match.Match{}, fmt.Errorf("%w: field id must be positive", ErrInvalidInput)
	}

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (match.Match, error) {
		item, err := s.repo.Update(ctx, id, input)
		return item, backendError("update match", err)
	}, keyMatches, matchKey(id))
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	_, err := cache.Mutate(ctx, s.queries, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, backendError("delete match", s.repo.Delete(ctx, id))
	}, keyMatches, matchKey(id))
	return err
}

// SubmitScore records the score suggested by the session's team.
func (s *MatchService) SubmitScore(ctx context.Context, id int64, input match.ScoreInput) (match.Match, error) {
	if err := validateScore(id, input); err != nil {
		return match.Match{}, err
	}

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (match.Match, error) {
		item, err := s.repo.SubmitScore(ctx, id, input)
		return item, backendError("submit score", err)
	}, keyMatches, matchKey(id))
}

// StaffSubmitScore sets the final score directly. Standings change with it.
func (s *MatchService) StaffSubmitScore(ctx context.Context, id int64, input match.ScoreInput) (match.Match, error) {
	if err := validateScore(id, input); err != nil {
		return match.Match{}, err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.StaffSubmitScore", matchAttr(id))
	defer span.End()

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (match.Match, error) {
		item, err := s.repo.StaffSubmitScore(ctx, id, input)
		return item, backendError("submit staff score", err)
	}, keyMatches, matchKey(id), keyPools, keyBrackets, cache.K("cross-pools"), cache.K("position-pools"))
}

func (s *MatchService) SubmitSpiritScore(ctx context.Context, id int64, input match.SpiritInput) (match.Match, error) {
	if id <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := validateSpiritSheet("opponent", input.Opponent); err != nil {
		return match.Match{}, err
	}
	if err := validateSpiritSheet("self", input.Self); err != nil {
		return match.Match{}, err
	}

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (match.Match, error) {
		item, err := s.repo.SubmitSpiritScore(ctx, id, input)
		return item, backendError("submit spirit score", err)
	}, keyMatches, matchKey(id), keyTournaments, keyTournament)
}

func validateCreateMatch(input match.CreateInput) error {
	switch {
	case input.TournamentID <= 0:
		return fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	case input.Seed1 <= 0 || input.Seed2 <= 0:
		return fmt.Errorf("%w: both seeds are required", ErrInvalidInput)
	case input.Seed1 == input.Seed2:
		return fmt.Errorf("%w: a seed cannot play itself", ErrInvalidInput)
	case input.Time.IsZero():
		return fmt.Errorf("%w: match time is required", ErrInvalidInput)
	case input.SequenceNumber <= 0:
		return fmt.Errorf("%w: sequence number must be positive", ErrInvalidInput)
	case input.FieldID < 0:
		return fmt.Errorf("%w: field id must not be negative", ErrInvalidInput)
	case input.Stage == match.StageNone:
		return fmt.Errorf("%w: stage is required", ErrInvalidInput)
	case input.StageID <= 0:
		return fmt.Errorf("%w: %s id is required", ErrInvalidInput, input.Stage)
	}
	return nil
}

func validateScore(id int64, input match.ScoreInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.Score1 < 0 || input.Score2 < 0 {
		return fmt.Errorf("%w: scores must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateSpiritSheet(which string, sheet match.SpiritSheet) error {
	categories := []struct {
		name  string
		value int
	}{
		{"rules", sheet.Rules},
		{"fouls", sheet.Fouls},
		{"fair", sheet.Fair},
		{"positive", sheet.Positive},
		{"communication", sheet.Communication},
	}
	for _, c := range categories {
		if c.value < spiritCategoryMin || c.value > spiritCategoryMax {
			return fmt.Errorf("%w: %s spirit %s must be between %d and %d",
				ErrInvalidInput, which, c.name, spiritCategoryMin, spiritCategoryMax)
		}
	}
	if sheet.MVPID < 0 || sheet.MSPID < 0 {
		return fmt.Errorf("%w: %s spirit nominee id must not be negative", ErrInvalidInput, which)
	}
	return nil
}

// Refresh marks the tournament's match list stale and loads it again.
func (s *MatchService) Refresh(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	s.queries.Invalidate(matchesKey(tournamentID))
	return s.ListByTournament(ctx, tournamentID)
}
