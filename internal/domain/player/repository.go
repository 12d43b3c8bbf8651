package player

import "context"

// Repository describes player and roster reads from the backend.
type Repository interface {
	List(ctx context.Context, filters Filters) (Page, error)
	ListByTeam(ctx context.Context, teamID int64, sort *SortField, order *string) (Page, error)
	GetBySlug(ctx context.Context, slug string) (Player, error)
	Roster(ctx context.Context, tournamentSlug, teamSlug string) ([]Registration, error)
}
