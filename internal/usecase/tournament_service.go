package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/osu-ultimate/tournament-console/internal/domain/standing"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
)

type TournamentService struct {
	repo    tournament.Repository
	queries *cache.QueryCache
}

func NewTournamentService(repo tournament.Repository, queries *cache.QueryCache) *TournamentService {
	return &TournamentService{
		repo:    repo,
		queries: queries,
	}
}

// Overview is a tournament with its teams indexed by id.
type Overview struct {
	Tournament tournament.Tournament
	Teams      standing.Lookup
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.List")
	defer span.End()

	items, err := cache.Fetch(ctx, s.queries, keyTournaments, func(ctx context.Context) ([]tournament.Tournament, error) {
		items, err := s.repo.List(ctx)
		return items, backendError("list tournaments", err)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *TournamentService) GetBySlug(ctx context.Context, slug string) (tournament.Tournament, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament slug is required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GetBySlug")
	defer span.End()

	return cache.Fetch(ctx, s.queries, tournamentBySlugKey(slug), func(ctx context.Context) (tournament.Tournament, error) {
		item, err := s.repo.GetBySlug(ctx, slug)
		return item, backendError("get tournament "+slug, err)
	})
}

func (s *TournamentService) GetByID(ctx context.Context, id int64) (tournament.Tournament, error) {
	if id <= 0 {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, tournamentByIDKey(id), func(ctx context.Context) (tournament.Tournament, error) {
		item, err := s.repo.GetByID(ctx, id)
		return item, backendError(fmt.Sprintf("get tournament %d", id), err)
	})
}

func (s *TournamentService) Overview(ctx context.Context, slug string) (Overview, error) {
	t, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return Overview{}, err
	}
	return Overview{
		Tournament: t,
		Teams:      standing.TeamLookup(t.Teams),
	}, nil
}

// Start moves a scheduled tournament into play.
func (s *TournamentService) Start(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Start", tournamentAttr(id))
	defer span.End()

	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !t.Status.Startable() {
		return fmt.Errorf("%w: tournament %d cannot be started while %s", ErrInvalidInput, id, t.Status.Label())
	}

	_, err = cache.Mutate(ctx, s.queries, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, backendError("start tournament", s.repo.Start(ctx, id))
	}, s.tournamentKeys()...)
	return err
}

func (s *TournamentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	_, err := cache.Mutate(ctx, s.queries, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, backendError("delete tournament", s.repo.Delete(ctx, id))
	}, s.tournamentKeys()...)
	return err
}

func (s *TournamentService) UpdateSeeding(ctx context.Context, id int64, seeding tournament.Seeding) (tournament.Tournament, error) {
	if id <= 0 {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if err := seeding.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	invalidate := append(s.tournamentKeys(), keyPools, keyBrackets, crossPoolKey(id), positionPoolsKey(id))
	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (tournament.Tournament, error) {
		item, err := s.repo.UpdateSeeding(ctx, id, seeding)
		return item, backendError("update seeding", err)
	}, invalidate...)
}

func (s *TournamentService) GenerateFixtures(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GenerateFixtures", tournamentAttr(id))
	defer span.End()

	invalidate := append(s.tournamentKeys(), matchesKey(id))
	_, err := cache.Mutate(ctx, s.queries, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, backendError("generate fixtures", s.repo.GenerateFixtures(ctx, id))
	}, invalidate...)
	return err
}

// UploadSchedule replaces match times and fields from a CSV export.
func (s *TournamentService) UploadSchedule(ctx context.Context, id int64, filename string, content []byte) error {
	if id <= 0 {
		return fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return fmt.Errorf("%w: schedule file is empty", ErrInvalidInput)
	}
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return fmt.Errorf("%w: schedule file must be a .csv, got %q", ErrInvalidInput, filename)
	}

	_, err := cache.Mutate(ctx, s.queries, func(ctx context.Context) (struct{}, error) {
		err := s.repo.UploadSchedule(ctx, id, filepath.Base(filename), bytes.NewReader(content))
		return struct{}{}, backendError("upload schedule", err)
	}, matchesKey(id), fieldsKey(id))
	return err
}

func (s *TournamentService) tournamentKeys() []cache.Key {
	return []cache.Key{keyTournaments, keyTournament}
}
