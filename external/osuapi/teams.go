package osuapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/osu-ultimate/tournament-console/internal/domain/team"
)

// TeamRepository implements team.Repository over the backend API.
type TeamRepository struct {
	client *Client
}

func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows listPayload[teamDTO]
	if err := r.client.Do(ctx, http.MethodGet, "/api/teams", nil, &rows); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (team.Team, error) {
	var row teamDTO
	if err := r.client.Do(ctx, http.MethodGet, "/api/teams/by-slug/"+url.PathEscape(slug), nil, &row); err != nil {
		return team.Team{}, fmt.Errorf("get team slug=%s: %w", slug, err)
	}
	return row.toDomain(), nil
}
