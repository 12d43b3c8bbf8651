package osuapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
)

// MatchRepository implements match.Repository over the backend API.
type MatchRepository struct {
	client *Client
}

func NewMatchRepository(client *Client) *MatchRepository {
	return &MatchRepository{client: client}
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	var rows []matchDTO
	if err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/api/matches?tournament_id=%d", tournamentID), nil, &rows); err != nil {
		return nil, fmt.Errorf("list matches tournament id=%d: %w", tournamentID, err)
	}
	return matchesToDomain(rows)
}

func (r *MatchRepository) ListByTeam(ctx context.Context, tournamentSlug, teamSlug string) ([]match.Match, error) {
	path := "/api/matches/tournament/" + url.PathEscape(tournamentSlug) + "/team/" + url.PathEscape(teamSlug)

	var rows []matchDTO
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, fmt.Errorf("list matches tournament=%s team=%s: %w", tournamentSlug, teamSlug, err)
	}
	return matchesToDomain(rows)
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, error) {
	return r.one(ctx, http.MethodGet, fmt.Sprintf("/api/matches/%d", id), nil)
}

func (r *MatchRepository) Stats(ctx context.Context, id int64) (match.Stats, error) {
	var row matchStatsDTO
	if err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/api/matches/%d/stats", id), nil, &row); err != nil {
		return match.Stats{}, fmt.Errorf("get match stats id=%d: %w", id, err)
	}
	return row.toDomain()
}

func (r *MatchRepository) Create(ctx context.Context, input match.CreateInput) (match.Match, error) {
	return r.one(ctx, http.MethodPost, "/api/matches", newCreateMatchBody(input))
}

func (r *MatchRepository) Update(ctx context.Context, id int64, input match.UpdateInput) (match.Match, error) {
	return r.one(ctx, http.MethodPut, fmt.Sprintf("/api/matches/%d", id), newUpdateMatchBody(input))
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/matches/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete match id=%d: %w", id, err)
	}
	return nil
}

func (r *MatchRepository) SubmitScore(ctx context.Context, id int64, input match.ScoreInput) (match.Match, error) {
	body := scoreBody{ScoreTeam1: input.Score1, ScoreTeam2: input.Score2}
	return r.one(ctx, http.MethodPost, fmt.Sprintf("/api/matches/%d/submit-score", id), body)
}

func (r *MatchRepository) StaffSubmitScore(ctx context.Context, id int64, input match.ScoreInput) (match.Match, error) {
	body := scoreBody{ScoreTeam1: input.Score1, ScoreTeam2: input.Score2}
	return r.one(ctx, http.MethodPost, fmt.Sprintf("/api/matches/%d/staff-submit-score", id), body)
}

func (r *MatchRepository) SubmitSpiritScore(ctx context.Context, id int64, input match.SpiritInput) (match.Match, error) {
	body := spiritBody{
		Opponent: newSpiritSheetBody(input.Opponent),
		Self:     newSpiritSheetBody(input.Self),
	}
	return r.one(ctx, http.MethodPost, fmt.Sprintf("/api/matches/%d/submit-spirit-score", id), body)
}

func (r *MatchRepository) one(ctx context.Context, method, path string, body any) (match.Match, error) {
	var row matchDTO
	if err := r.client.Do(ctx, method, path, body, &row); err != nil {
		return match.Match{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return row.toDomain()
}
