package match

import "context"

// Repository describes match reads and writes on the backend.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID int64) ([]Match, error)
	ListByTeam(ctx context.Context, tournamentSlug, teamSlug string) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, error)
	Stats(ctx context.Context, id int64) (Stats, error)
	Create(ctx context.Context, input CreateInput) (Match, error)
	Update(ctx context.Context, id int64, input UpdateInput) (Match, error)
	Delete(ctx context.Context, id int64) error
	SubmitScore(ctx context.Context, id int64, input ScoreInput) (Match, error)
	StaffSubmitScore(ctx context.Context, id int64, input ScoreInput) (Match, error)
	SubmitSpiritScore(ctx context.Context, id int64, input SpiritInput) (Match, error)
}
