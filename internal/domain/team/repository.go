package team

import "context"

// Repository describes team reads from the tournament backend.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetBySlug(ctx context.Context, slug string) (Team, error)
}
