package osuapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
)

// TournamentRepository implements tournament.Repository over the backend API.
type TournamentRepository struct {
	client *Client
}

func NewTournamentRepository(client *Client) *TournamentRepository {
	return &TournamentRepository{client: client}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	var rows []tournamentDTO
	if err := r.client.Do(ctx, http.MethodGet, "/api/tournaments", nil, &rows); err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		t, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// GetByID uses the slug route, which also resolves numeric ids.
func (r *TournamentRepository) GetByID(ctx context.Context, id int64) (tournament.Tournament, error) {
	return r.get(ctx, fmt.Sprintf("/api/tournaments/%d", id))
}

func (r *TournamentRepository) GetBySlug(ctx context.Context, slug string) (tournament.Tournament, error) {
	return r.get(ctx, "/api/tournaments/"+url.PathEscape(slug))
}

func (r *TournamentRepository) get(ctx context.Context, path string) (tournament.Tournament, error) {
	var row tournamentDTO
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &row); err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	return row.toDomain()
}

func (r *TournamentRepository) Start(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/tournaments/start/%d", id), nil, nil); err != nil {
		return fmt.Errorf("start tournament id=%d: %w", id, err)
	}
	return nil
}

func (r *TournamentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/tournaments/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete tournament id=%d: %w", id, err)
	}
	return nil
}

func (r *TournamentRepository) UpdateSeeding(ctx context.Context, id int64, seeding tournament.Seeding) (tournament.Tournament, error) {
	body := map[string]any{"seeding": seedingToWire(seeding)}

	var row tournamentDTO
	if err := r.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/tournaments/%d/update-seeding", id), body, &row); err != nil {
		return tournament.Tournament{}, fmt.Errorf("update seeding tournament id=%d: %w", id, err)
	}
	return row.toDomain()
}

func (r *TournamentRepository) GenerateFixtures(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/tournaments/generate-fixtures/%d", id), nil, nil); err != nil {
		return fmt.Errorf("generate fixtures tournament id=%d: %w", id, err)
	}
	return nil
}

func (r *TournamentRepository) UploadSchedule(ctx context.Context, id int64, filename string, csv io.Reader) error {
	path := fmt.Sprintf("/api/tournaments/%d/update-schedule", id)
	if err := r.client.UploadMultipart(ctx, path, "schedule_file", filename, csv, nil); err != nil {
		return fmt.Errorf("upload schedule tournament id=%d: %w", id, err)
	}
	return nil
}

// FieldRepository implements tournament.FieldRepository.
type FieldRepository struct {
	client *Client
}

func NewFieldRepository(client *Client) *FieldRepository {
	return &FieldRepository{client: client}
}

func (r *FieldRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]tournament.Field, error) {
	var rows []fieldDTO
	if err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/api/tournaments/%d/fields", tournamentID), nil, &rows); err != nil {
		return nil, fmt.Errorf("list fields tournament id=%d: %w", tournamentID, err)
	}

	out := make([]tournament.Field, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(tournamentID))
	}
	return out, nil
}

func (r *FieldRepository) Create(ctx context.Context, tournamentID int64, input tournament.FieldInput) (tournament.Field, error) {
	var row fieldDTO
	if err := r.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/tournaments/%d/fields", tournamentID), newFieldBody(input), &row); err != nil {
		return tournament.Field{}, fmt.Errorf("create field tournament id=%d: %w", tournamentID, err)
	}
	return row.toDomain(tournamentID), nil
}

func (r *FieldRepository) Update(ctx context.Context, fieldID int64, input tournament.FieldInput) (tournament.Field, error) {
	var row fieldDTO
	if err := r.client.Do(ctx, http.MethodPut, fmt.Sprintf("/api/fields/%d", fieldID), newFieldBody(input), &row); err != nil {
		return tournament.Field{}, fmt.Errorf("update field id=%d: %w", fieldID, err)
	}
	return row.toDomain(0), nil
}

// StageRepository implements tournament.StageRepository for pools, cross
// pools, brackets and position pools.
type StageRepository struct {
	client *Client
}

func NewStageRepository(client *Client) *StageRepository {
	return &StageRepository{client: client}
}

type poolBody struct {
	TournamentID   int64   `json:"tournament_id"`
	SequenceNumber int     `json:"sequence_number"`
	Name           string  `json:"name"`
	Seeding        []int64 `json:"seeding"`
}

func newPoolBody(in tournament.PoolInput) poolBody {
	seeding := in.Seeding
	if seeding == nil {
		seeding = []int64{}
	}
	return poolBody{
		TournamentID:   in.TournamentID,
		SequenceNumber: in.SequenceNumber,
		Name:           in.Name,
		Seeding:        seeding,
	}
}

func (r *StageRepository) ListPools(ctx context.Context, tournamentSlug string) ([]tournament.Pool, error) {
	return r.listPools(ctx, "/api/tournaments/"+url.PathEscape(tournamentSlug)+"/pools")
}

func (r *StageRepository) ListPositionPools(ctx context.Context, tournamentID int64) ([]tournament.Pool, error) {
	return r.listPools(ctx, fmt.Sprintf("/api/tournaments/%d/position-pools", tournamentID))
}

func (r *StageRepository) listPools(ctx context.Context, path string) ([]tournament.Pool, error) {
	var rows []stageDTO
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}

	out := make([]tournament.Pool, 0, len(rows))
	for _, row := range rows {
		p, err := row.toPool()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *StageRepository) CreatePool(ctx context.Context, input tournament.PoolInput) (tournament.Pool, error) {
	return r.createPool(ctx, "/api/tournaments/pools", input)
}

func (r *StageRepository) CreatePositionPool(ctx context.Context, input tournament.PoolInput) (tournament.Pool, error) {
	return r.createPool(ctx, "/api/tournaments/position-pools", input)
}

func (r *StageRepository) createPool(ctx context.Context, path string, input tournament.PoolInput) (tournament.Pool, error) {
	var row stageDTO
	if err := r.client.Do(ctx, http.MethodPost, path, newPoolBody(input), &row); err != nil {
		return tournament.Pool{}, fmt.Errorf("create pool %q: %w", input.Name, err)
	}
	p, err := row.toPool()
	if err != nil {
		return tournament.Pool{}, err
	}
	if p.TournamentID == 0 {
		p.TournamentID = input.TournamentID
	}
	return p, nil
}

// GetCrossPool returns the tournament's single cross pool.
func (r *StageRepository) GetCrossPool(ctx context.Context, tournamentID int64) (tournament.CrossPool, error) {
	var rows listPayload[stageDTO]
	if err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/api/tournaments/%d/cross-pools", tournamentID), nil, &rows); err != nil {
		return tournament.CrossPool{}, fmt.Errorf("list cross pools tournament id=%d: %w", tournamentID, err)
	}
	if len(rows) == 0 {
		return tournament.CrossPool{}, &RequestError{
			Status:  http.StatusNotFound,
			Message: "Cross pool not found",
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("/api/tournaments/%d/cross-pools", tournamentID),
		}
	}
	return rows[0].toCrossPool()
}

func (r *StageRepository) CreateCrossPool(ctx context.Context, tournamentID int64) (tournament.CrossPool, error) {
	body := map[string]any{"tournament_id": tournamentID}

	var row stageDTO
	if err := r.client.Do(ctx, http.MethodPost, "/api/tournaments/cross-pools", body, &row); err != nil {
		return tournament.CrossPool{}, fmt.Errorf("create cross pool tournament id=%d: %w", tournamentID, err)
	}
	cp, err := row.toCrossPool()
	if err != nil {
		return tournament.CrossPool{}, err
	}
	if cp.TournamentID == 0 {
		cp.TournamentID = tournamentID
	}
	return cp, nil
}

func (r *StageRepository) ListBrackets(ctx context.Context, tournamentSlug string) ([]tournament.Bracket, error) {
	var rows []stageDTO
	if err := r.client.Do(ctx, http.MethodGet, "/api/tournaments/"+url.PathEscape(tournamentSlug)+"/brackets", nil, &rows); err != nil {
		return nil, fmt.Errorf("list brackets tournament=%s: %w", tournamentSlug, err)
	}

	out := make([]tournament.Bracket, 0, len(rows))
	for _, row := range rows {
		b, err := row.toBracket()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *StageRepository) CreateBracket(ctx context.Context, input tournament.BracketInput) (tournament.Bracket, error) {
	body := map[string]any{
		"tournament_id":   input.TournamentID,
		"sequence_number": input.SequenceNumber,
		"name":            input.Name,
	}

	var row stageDTO
	if err := r.client.Do(ctx, http.MethodPost, "/api/tournaments/brackets", body, &row); err != nil {
		return tournament.Bracket{}, fmt.Errorf("create bracket %q: %w", input.Name, err)
	}
	b, err := row.toBracket()
	if err != nil {
		return tournament.Bracket{}, err
	}
	if b.TournamentID == 0 {
		b.TournamentID = input.TournamentID
	}
	return b, nil
}
