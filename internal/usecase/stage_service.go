package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
)

// StageService reads and creates the stages of a tournament: pools, the
// cross pool, brackets and position pools.
type StageService struct {
	repo    tournament.StageRepository
	queries *cache.QueryCache
}

func NewStageService(repo tournament.StageRepository, queries *cache.QueryCache) *StageService {
	return &StageService{
		repo:    repo,
		queries: queries,
	}
}

func (s *StageService) ListPools(ctx context.Context, tournamentSlug string) ([]tournament.Pool, error) {
	tournamentSlug = strings.TrimSpace(tournamentSlug)
	if tournamentSlug == "" {
		return nil, fmt.Errorf("%w: tournament slug is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, poolsKey(tournamentSlug), func(ctx context.Context) ([]tournament.Pool, error) {
		items, err := s.repo.ListPools(ctx, tournamentSlug)
		return items, backendError("list pools", err)
	})
}

// GetCrossPool returns false when the tournament has no cross pool yet.
func (s *StageService) GetCrossPool(ctx context.Context, tournamentID int64) (tournament.CrossPool, bool, error) {
	if tournamentID <= 0 {
		return tournament.CrossPool{}, false, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	cp, err := cache.Fetch(ctx, s.queries, crossPoolKey(tournamentID), func(ctx context.Context) (tournament.CrossPool, error) {
		item, err := s.repo.GetCrossPool(ctx, tournamentID)
		return item, backendError("get cross pool", err)
	})
	if errors.Is(err, ErrNotFound) {
		return tournament.CrossPool{}, false, nil
	}
	if err != nil {
		return tournament.CrossPool{}, false, err
	}
	return cp, true, nil
}

func (s *StageService) ListBrackets(ctx context.Context, tournamentSlug string) ([]tournament.Bracket, error) {
	tournamentSlug = strings.TrimSpace(tournamentSlug)
	if tournamentSlug == "" {
		return nil, fmt.Errorf("%w: tournament slug is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, bracketsKey(tournamentSlug), func(ctx context.Context) ([]tournament.Bracket, error) {
		items, err := s.repo.ListBrackets(ctx, tournamentSlug)
		return items, backendError("list brackets", err)
	})
}

func (s *StageService) ListPositionPools(ctx context.Context, tournamentID int64) ([]tournament.Pool, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, positionPoolsKey(tournamentID), func(ctx context.Context) ([]tournament.Pool, error) {
		items, err := s.repo.ListPositionPools(ctx, tournamentID)
		return items, backendError("list position pools", err)
	})
}

func (s *StageService) CreatePool(ctx context.Context, input tournament.PoolInput) (tournament.Pool, error) {
	input, err := normalizePoolInput(input)
	if err != nil {
		return tournament.Pool{}, err
	}

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (tournament.Pool, error) {
		item, err := s.repo.CreatePool(ctx, input)
		return item, backendError("create pool", err)
	}, keyPools, keyTournaments, keyTournament)
}

func (s *StageService) CreateCrossPool(ctx context.Context, tournamentID int64) (tournament.CrossPool, error) {
	if tournamentID <= 0 {
		return tournament.CrossPool{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (tournament.CrossPool, error) {
		item, err := s.repo.CreateCrossPool(ctx, tournamentID)
		return item, backendError("create cross pool", err)
	}, crossPoolKey(tournamentID))
}

func (s *StageService) CreateBracket(ctx context.Context, input tournament.BracketInput) (tournament.Bracket, error) {
	input.Name = strings.TrimSpace(input.Name)
	switch {
	case input.TournamentID <= 0:
		return tournament.Bracket{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	case input.Name == "":
		return tournament.Bracket{}, fmt.Errorf("%w: bracket name is required", ErrInvalidInput)
	case input.SequenceNumber <= 0:
		return tournament.Bracket{}, fmt.Errorf("%w: sequence number must be positive", ErrInvalidInput)
	}

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (tournament.Bracket, error) {
		item, err := s.repo.CreateBracket(ctx, input)
		return item, backendError("create bracket", err)
	}, keyBrackets)
}

func (s *StageService) CreatePositionPool(ctx context.Context, input tournament.PoolInput) (tournament.Pool, error) {
	input, err := normalizePoolInput(input)
	if err != nil {
		return tournament.Pool{}, err
	}

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (tournament.Pool, error) {
		item, err := s.repo.CreatePositionPool(ctx, input)
		return item, backendError("create position pool", err)
	}, positionPoolsKey(input.TournamentID))
}

// ParseSeedingList reads the seeding entered in the console form: a JSON
// array of team ids in seed order, e.g. "[4, 9, 2]". Blank text is an empty list.
func ParseSeedingList(text string) ([]int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	var ids []int64
	if err := sonic.UnmarshalString(text, &ids); err != nil {
		return nil, fmt.Errorf("%w: seeding must be a JSON array of team ids", ErrInvalidInput)
	}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: seeding team id %d must be positive", ErrInvalidInput, id)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: team %d is seeded twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	return ids, nil
}

func normalizePoolInput(input tournament.PoolInput) (tournament.PoolInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	switch {
	case input.TournamentID <= 0:
		return input, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	case input.Name == "":
		return input, fmt.Errorf("%w: pool name is required", ErrInvalidInput)
	case input.SequenceNumber <= 0:
		return input, fmt.Errorf("%w: sequence number must be positive", ErrInvalidInput)
	}
	if err := tournament.SeedingFromList(input.Seeding).Validate(); err != nil {
		return input, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return input, nil
}
