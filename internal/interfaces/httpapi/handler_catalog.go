package httpapi

import (
	"net/http"

	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/domain/team"
)

// ListTeams returns every team, or the fuzzy matches for ?q= when given.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	var (
		items []team.Team
		err   error
	)
	if q := queryString(r, "q"); q != nil {
		items, err = h.teams.Search(ctx, *q)
	} else {
		items, err = h.teams.List(ctx)
	}
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	slug := r.PathValue("teamSlug")
	t, err := h.teams.GetBySlug(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	slug := r.PathValue("teamSlug")
	t, err := h.teams.GetBySlug(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_slug", slug)
		return
	}

	var sort *player.SortField
	if v := queryString(r, "sort"); v != nil {
		f := player.SortField(*v)
		sort = &f
	}

	page, err := h.players.ListByTeam(ctx, t.ID, sort, queryString(r, "order"))
	if err != nil {
		h.fail(ctx, w, "list team players failed", err, "team_id", t.ID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageToDTO(page))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filters, err := playerFiltersFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.players.List(ctx, filters)
	if err != nil {
		h.fail(ctx, w, "list players failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageToDTO(page))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	slug := r.PathValue("slug")
	p, err := h.players.Get(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func playerFiltersFromQuery(r *http.Request) (player.Filters, error) {
	var f player.Filters
	f.Search = queryString(r, "search")
	if v := queryString(r, "gender"); v != nil {
		g := player.Gender(*v)
		f.Gender = &g
	}
	if v := queryString(r, "role"); v != nil {
		role := player.Role(*v)
		f.Role = &role
	}
	if v := queryString(r, "sort"); v != nil {
		s := player.SortField(*v)
		f.Sort = &s
	}
	f.Order = queryString(r, "order")

	var err error
	if f.TeamID, err = queryInt64(r, "team_id"); err != nil {
		return player.Filters{}, err
	}
	if f.Limit, err = queryInt(r, "limit"); err != nil {
		return player.Filters{}, err
	}
	if f.Offset, err = queryInt(r, "offset"); err != nil {
		return player.Filters{}, err
	}
	return f, nil
}
