package osuapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/platform/querybuilder"
)

// PlayerRepository implements player.Repository over the backend API.
type PlayerRepository struct {
	client *Client
}

func NewPlayerRepository(client *Client) *PlayerRepository {
	return &PlayerRepository{client: client}
}

// List keeps the filter order search, gender, role, team_id, sort, order,
// limit, offset and skips unset filters.
func (r *PlayerRepository) List(ctx context.Context, filters player.Filters) (player.Page, error) {
	qb, err := querybuilder.FromModel(filters)
	if err != nil {
		return player.Page{}, fmt.Errorf("build player query: %w", err)
	}

	var page playersPageDTO
	if err := r.client.Do(ctx, http.MethodGet, qb.AppendTo("/api/players"), nil, &page); err != nil {
		return player.Page{}, fmt.Errorf("list players: %w", err)
	}
	return page.toDomain(), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64, sort *player.SortField, order *string) (player.Page, error) {
	qb := querybuilder.New().Add("sort", sort).Add("order", order)
	path := qb.AppendTo(fmt.Sprintf("/api/players/by-team/%d", teamID))

	var page playersPageDTO
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return player.Page{}, fmt.Errorf("list players team id=%d: %w", teamID, err)
	}
	return page.toDomain(), nil
}

// GetBySlug reports a missing player as "Player not found" whatever the
// backend says.
func (r *PlayerRepository) GetBySlug(ctx context.Context, slug string) (player.Player, error) {
	path := "/api/players/" + url.PathEscape(slug)

	var row playerDTO
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &row); err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
			return player.Player{}, &RequestError{
				Status:  http.StatusNotFound,
				Message: "Player not found",
				Method:  reqErr.Method,
				Path:    reqErr.Path,
			}
		}
		return player.Player{}, fmt.Errorf("get player slug=%s: %w", slug, err)
	}
	return row.toDomain()
}

func (r *PlayerRepository) Roster(ctx context.Context, tournamentSlug, teamSlug string) ([]player.Registration, error) {
	path := "/api/tournaments/" + url.PathEscape(tournamentSlug) + "/team/" + url.PathEscape(teamSlug) + "/roster"

	var rows []registrationDTO
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, fmt.Errorf("get roster tournament=%s team=%s: %w", tournamentSlug, teamSlug, err)
	}
	return registrationsToDomain(rows)
}
