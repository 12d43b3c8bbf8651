package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{slug}", handler.GetTournament)
	mux.HandleFunc("GET /v1/tournaments/{slug}/schedule", handler.GetSchedule)
	mux.HandleFunc("GET /v1/tournaments/{slug}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/tournaments/{slug}/fields", handler.ListFields)
	mux.HandleFunc("GET /v1/tournaments/{slug}/teams/{teamSlug}", handler.GetTeamPage)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamSlug}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamSlug}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{slug}", handler.GetPlayer)
}

// Session routes drive the one backend session every call shares, so they
// sit behind the console token like the admin routes.
func registerSessionRoutes(mux *http.ServeMux, handler *Handler, consoleToken string) {
	guard := func(h http.HandlerFunc) http.Handler {
		return RequireConsoleToken(consoleToken, h)
	}

	mux.Handle("POST /v1/session/login", guard(handler.Login))
	mux.Handle("POST /v1/session/otp/request", guard(handler.RequestOTP))
	mux.Handle("POST /v1/session/otp", guard(handler.LoginWithOTP))
	mux.Handle("POST /v1/session/logout", guard(handler.Logout))
	mux.Handle("GET /v1/session/me", guard(handler.Me))
	mux.Handle("GET /v1/session/access/{slug}", guard(handler.GetAccess))
}

func registerConsoleRoutes(mux *http.ServeMux, handler *Handler, consoleToken string) {
	guard := func(h http.HandlerFunc) http.Handler {
		return RequireConsoleToken(consoleToken, h)
	}

	mux.Handle("POST /v1/console/tournaments/{tournamentID}/start", guard(handler.StartTournament))
	mux.Handle("DELETE /v1/console/tournaments/{tournamentID}", guard(handler.DeleteTournament))
	mux.Handle("PUT /v1/console/tournaments/{tournamentID}/seeding", guard(handler.UpdateSeeding))
	mux.Handle("POST /v1/console/tournaments/{tournamentID}/fixtures", guard(handler.GenerateFixtures))
	mux.Handle("POST /v1/console/tournaments/{tournamentID}/schedule", guard(handler.UploadSchedule))

	mux.Handle("POST /v1/console/tournaments/{tournamentID}/fields", guard(handler.CreateField))
	mux.Handle("PUT /v1/console/tournaments/{tournamentID}/fields/{fieldID}", guard(handler.UpdateField))

	mux.Handle("POST /v1/console/pools", guard(handler.CreatePool))
	mux.Handle("POST /v1/console/tournaments/{tournamentID}/cross-pool", guard(handler.CreateCrossPool))
	mux.Handle("POST /v1/console/brackets", guard(handler.CreateBracket))
	mux.Handle("POST /v1/console/position-pools", guard(handler.CreatePositionPool))

	mux.Handle("POST /v1/console/matches", guard(handler.CreateMatch))
	mux.Handle("PATCH /v1/console/matches/{matchID}", guard(handler.UpdateMatch))
	mux.Handle("DELETE /v1/console/matches/{matchID}", guard(handler.DeleteMatch))
	mux.Handle("POST /v1/console/matches/{matchID}/score", guard(handler.StaffSubmitScore))
	mux.Handle("POST /v1/console/matches/{matchID}/suggested-score", guard(handler.SubmitScore))
	mux.Handle("POST /v1/console/matches/{matchID}/spirit-score", guard(handler.SubmitSpiritScore))
}
