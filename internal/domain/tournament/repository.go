package tournament

import (
	"context"
	"io"
)

// Repository describes tournament reads and admin actions on the backend.
type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	GetByID(ctx context.Context, id int64) (Tournament, error)
	GetBySlug(ctx context.Context, slug string) (Tournament, error)
	Start(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	UpdateSeeding(ctx context.Context, id int64, seeding Seeding) (Tournament, error)
	GenerateFixtures(ctx context.Context, id int64) error
	UploadSchedule(ctx context.Context, id int64, filename string, csv io.Reader) error
}

type FieldRepository interface {
	ListByTournament(ctx context.Context, tournamentID int64) ([]Field, error)
	Create(ctx context.Context, tournamentID int64, input FieldInput) (Field, error)
	Update(ctx context.Context, fieldID int64, input FieldInput) (Field, error)
}

type StageRepository interface {
	ListPools(ctx context.Context, tournamentSlug string) ([]Pool, error)
	CreatePool(ctx context.Context, input PoolInput) (Pool, error)
	GetCrossPool(ctx context.Context, tournamentID int64) (CrossPool, error)
	CreateCrossPool(ctx context.Context, tournamentID int64) (CrossPool, error)
	ListBrackets(ctx context.Context, tournamentSlug string) ([]Bracket, error)
	CreateBracket(ctx context.Context, input BracketInput) (Bracket, error)
	ListPositionPools(ctx context.Context, tournamentID int64) ([]Pool, error)
	CreatePositionPool(ctx context.Context, input PoolInput) (Pool, error)
}
