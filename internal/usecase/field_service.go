package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
)

type FieldService struct {
	repo    tournament.FieldRepository
	queries *cache.QueryCache
}

func NewFieldService(repo tournament.FieldRepository, queries *cache.QueryCache) *FieldService {
	return &FieldService{
		repo:    repo,
		queries: queries,
	}
}

func (s *FieldService) List(ctx context.Context, tournamentID int64) ([]tournament.Field, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, fieldsKey(tournamentID), func(ctx context.Context) ([]tournament.Field, error) {
		items, err := s.repo.ListByTournament(ctx, tournamentID)
		return items, backendError("list fields", err)
	})
}

func (s *FieldService) Create(ctx context.Context, tournamentID int64, input tournament.FieldInput) (tournament.Field, error) {
	if tournamentID <= 0 {
		return tournament.Field{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	input, err := normalizeFieldInput(input)
	if err != nil {
		return tournament.Field{}, err
	}

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (tournament.Field, error) {
		item, err := s.repo.Create(ctx, tournamentID, input)
		return item, backendError("create field", err)
	}, fieldsKey(tournamentID))
}

// Update edits a field. Matches embed their field, so they are refetched too.
func (s *FieldService) Update(ctx context.Context, tournamentID, fieldID int64, input tournament.FieldInput) (tournament.Field, error) {
	if tournamentID <= 0 || fieldID <= 0 {
		return tournament.Field{}, fmt.Errorf("%w: tournament id and field id are required", ErrInvalidInput)
	}
	input, err := normalizeFieldInput(input)
	if err != nil {
		return tournament.Field{}, err
	}

	return cache.Mutate(ctx, s.queries, func(ctx context.Context) (tournament.Field, error) {
		item, err := s.repo.Update(ctx, fieldID, input)
		return item, backendError("update field", err)
	}, fieldsKey(tournamentID), matchesKey(tournamentID))
}

func normalizeFieldInput(input tournament.FieldInput) (tournament.FieldInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	input.LocationURL = strings.TrimSpace(input.LocationURL)
	if input.Name == "" {
		return input, fmt.Errorf("%w: field name is required", ErrInvalidInput)
	}
	if input.LocationURL != "" {
		u, err := url.Parse(input.LocationURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return input, fmt.Errorf("%w: location url must be an http(s) url", ErrInvalidInput)
		}
	}
	return input, nil
}

// Refresh marks the tournament's fields stale and loads them again.
func (s *FieldService) Refresh(ctx context.Context, tournamentID int64) ([]tournament.Field, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	s.queries.Invalidate(fieldsKey(tournamentID))
	return s.List(ctx, tournamentID)
}
