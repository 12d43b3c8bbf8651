package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
)

type PlayerService struct {
	repo    player.Repository
	queries *cache.QueryCache
}

func NewPlayerService(repo player.Repository, queries *cache.QueryCache) *PlayerService {
	return &PlayerService{
		repo:    repo,
		queries: queries,
	}
}

// List returns one page of the player directory. Each distinct filter set
// is cached on its own.
func (s *PlayerService) List(ctx context.Context, filters player.Filters) (player.Page, error) {
	if filters.Search != nil {
		search := strings.TrimSpace(*filters.Search)
		filters.Search = &search
		if search == "" {
			filters.Search = nil
		}
	}
	if err := filters.Validate(); err != nil {
		return player.Page{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	return cache.Fetch(ctx, s.queries, playersKey(filters), func(ctx context.Context) (player.Page, error) {
		page, err := s.repo.List(ctx, filters)
		return page, backendError("list players", err)
	})
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID int64, sort *player.SortField, order *string) (player.Page, error) {
	if teamID <= 0 {
		return player.Page{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := (player.Filters{Sort: sort, Order: order}).Validate(); err != nil {
		return player.Page{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var sortKey, orderKey any
	if sort != nil {
		sortKey = string(*sort)
	}
	if order != nil {
		orderKey = *order
	}

	return cache.Fetch(ctx, s.queries, teamPlayersKey(teamID, sortKey, orderKey), func(ctx context.Context) (player.Page, error) {
		page, err := s.repo.ListByTeam(ctx, teamID, sort, order)
		return page, backendError("list team players", err)
	})
}

func (s *PlayerService) Get(ctx context.Context, slug string) (player.Player, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return player.Player{}, fmt.Errorf("%w: player slug is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, playerKey(slug), func(ctx context.Context) (player.Player, error) {
		item, err := s.repo.GetBySlug(ctx, slug)
		return item, backendError("get player "+slug, err)
	})
}
