package httpapi

import (
	"net/http"
	"time"
)

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	items, err := h.tournaments.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list tournaments failed", err)
		return
	}

	out := make([]tournamentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	slug := r.PathValue("slug")
	overview, err := h.tournaments.Overview(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get tournament failed", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(overview.Tournament))
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	slug := r.PathValue("slug")
	sched, err := h.schedule.Build(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "build schedule failed", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleToDTO(sched, time.Now()))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	slug := r.PathValue("slug")
	standings, err := h.standings.Get(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get standings failed", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(standings))
}

func (h *Handler) ListFields(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFields")
	defer span.End()

	slug := r.PathValue("slug")
	t, err := h.tournaments.GetBySlug(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get tournament failed", err, "slug", slug)
		return
	}

	fields, err := h.fields.List(ctx, t.ID)
	if err != nil {
		h.fail(ctx, w, "list fields failed", err, "tournament_id", t.ID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fieldsToDTO(fields))
}

func (h *Handler) GetTeamPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPage")
	defer span.End()

	slug, teamSlug := r.PathValue("slug"), r.PathValue("teamSlug")
	page, err := h.teams.Page(ctx, slug, teamSlug)
	if err != nil {
		h.fail(ctx, w, "get team page failed", err, "slug", slug, "team_slug", teamSlug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamPageToDTO(page, time.Now()))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matches.Get(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match failed", err, "match_id", matchID)
		return
	}

	// The timeline is optional; a match without recorded events still renders.
	stats, err := h.matches.Stats(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match stats failed", "match_id", matchID, "error", err)
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailDTO{
		Match:  matchToDTO(m, time.Now()),
		Events: statsToDTO(stats),
	})
}
