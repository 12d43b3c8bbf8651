package httpapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/mock"

	"github.com/osu-ultimate/tournament-console/external/osuapi"
	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	matchmock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/match"
	playermock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/player"
	teammock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/team"
	tournamentmock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/tournament"
	usermock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/user"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
	"github.com/osu-ultimate/tournament-console/internal/platform/resilience"
	"github.com/osu-ultimate/tournament-console/internal/usecase"
)

const testConsoleToken = "console-secret"

type testBackend struct {
	tournaments *tournamentmock.Repository
	fields      *tournamentmock.FieldRepository
	stages      *tournamentmock.StageRepository
	matches     *matchmock.Repository
	teams       *teammock.Repository
	players     *playermock.Repository
	users       *usermock.Repository
}

func newTestRouter(t *testing.T, consoleToken string) (http.Handler, testBackend) {
	t.Helper()

	backend := testBackend{
		tournaments: tournamentmock.NewRepository(t),
		fields:      tournamentmock.NewFieldRepository(t),
		stages:      tournamentmock.NewStageRepository(t),
		matches:     matchmock.NewRepository(t),
		teams:       teammock.NewRepository(t),
		players:     playermock.NewRepository(t),
		users:       usermock.NewRepository(t),
	}

	logger := logging.NewNop()
	queries := cache.New(cache.Config{
		StaleTime:  time.Minute,
		GCTime:     time.Minute,
		MaxEntries: 100,
		Retry:      resilience.RetryConfig{MaxRetries: 0, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
	}, cache.WithLogger(logger))

	tournaments := usecase.NewTournamentService(backend.tournaments, queries)
	matches := usecase.NewMatchService(backend.matches, queries)
	fields := usecase.NewFieldService(backend.fields, queries)
	stages := usecase.NewStageService(backend.stages, queries)

	handler := NewHandler(Services{
		Tournaments: tournaments,
		Schedule:    usecase.NewScheduleService(tournaments, matches, fields),
		Standings:   usecase.NewStandingsService(tournaments, stages),
		Matches:     matches,
		Fields:      fields,
		Stages:      stages,
		Teams:       usecase.NewTeamService(backend.teams, backend.players, matches, queries),
		Players:     usecase.NewPlayerService(backend.players, queries),
		Auth:        usecase.NewAuthService(backend.users, queries, logger),
	}, logger)

	router := NewRouter(handler, logger, nil, RouterConfig{ConsoleToken: consoleToken})
	return router, backend
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) googleErrorBody {
	t.Helper()

	var body googleResponseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Error == nil {
		t.Fatalf("expected error body, got %s", rec.Body.String())
	}
	return *body.Error
}

func TestHealthz_AssignsRequestID(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected %s header to be set", requestIDHeader)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "caller-id-1")
	rec = serve(router, req)
	if got := rec.Header().Get(requestIDHeader); got != "caller-id-1" {
		t.Fatalf("expected caller request id to be echoed, got %q", got)
	}
}

func TestConsoleRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	for _, token := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodPost, "/v1/console/tournaments/3/start", nil)
		if token != "" {
			req.Header.Set(consoleTokenHeader, token)
		}
		rec := serve(router, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: expected status 401, got %d", token, rec.Code)
		}
	}
}

func TestSessionRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	router, backend := newTestRouter(t, testConsoleToken)

	routes := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/v1/session/login"},
		{method: http.MethodPost, path: "/v1/session/otp/request"},
		{method: http.MethodPost, path: "/v1/session/otp"},
		{method: http.MethodPost, path: "/v1/session/logout"},
		{method: http.MethodGet, path: "/v1/session/me"},
		{method: http.MethodGet, path: "/v1/session/access/nationals"},
	}
	for _, route := range routes {
		rec := serve(router, httptest.NewRequest(route.method, route.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected status 401, got %d", route.method, route.path, rec.Code)
		}
	}
	backend.users.AssertNotCalled(t, "Logout", mock.Anything)
	backend.users.AssertNotCalled(t, "Me", mock.Anything)
}

func TestConsoleRoutes_TokenNotConfigured(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodDelete, "/v1/console/matches/9", nil)
	req.Header.Set(consoleTokenHeader, "anything")
	rec := serve(router, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

func TestStartTournament(t *testing.T) {
	t.Parallel()

	router, backend := newTestRouter(t, testConsoleToken)
	backend.tournaments.On("GetByID", mock.Anything, int64(3)).
		Return(tournament.Tournament{ID: 3, Slug: "nationals", Status: tournament.StatusScheduled}, nil).Once()
	backend.tournaments.On("Start", mock.Anything, int64(3)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/console/tournaments/3/start", nil)
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestStartTournament_RejectsLiveTournament(t *testing.T) {
	t.Parallel()

	router, backend := newTestRouter(t, testConsoleToken)
	backend.tournaments.On("GetByID", mock.Anything, int64(3)).
		Return(tournament.Tournament{ID: 3, Slug: "nationals", Status: tournament.StatusLive}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/console/tournaments/3/start", nil)
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	backend.tournaments.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestConsoleRoutes_RejectBadPathID(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	req := httptest.NewRequest(http.MethodDelete, "/v1/console/tournaments/abc", nil)
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestGetTournament_NotFoundUsesBackendMessage(t *testing.T) {
	t.Parallel()

	router, backend := newTestRouter(t, testConsoleToken)
	backend.tournaments.On("GetBySlug", mock.Anything, "missing").
		Return(tournament.Tournament{}, &osuapi.RequestError{Status: http.StatusNotFound, Message: "Tournament not found."}).Once()

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/v1/tournaments/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got := decodeError(t, rec).Message; got != "Tournament not found." {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestLoginWithOTP_RejectsMalformedCode(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	body := `{"email":"captain@example.org","otp":"12ab","otp_ts":1700000000}`
	req := httptest.NewRequest(http.MethodPost, "/v1/session/otp", strings.NewReader(body))
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestLogin_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	body := `{"username":"admin","password":"pw","remember":true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/session/login", strings.NewReader(body))
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestListPlayers_InvalidFilters(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	for _, query := range []string{"limit=500", "limit=abc", "gender=X", "order=up", "sort=age", "team_id=x"} {
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/v1/players?"+query, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected status 400, got %d", query, rec.Code)
		}
	}
}

func TestListPlayers_ForwardsFilters(t *testing.T) {
	t.Parallel()

	router, backend := newTestRouter(t, testConsoleToken)
	backend.players.On("List", mock.Anything, mock.MatchedBy(func(f player.Filters) bool {
		return f.Search != nil && *f.Search == "ann" &&
			f.Gender != nil && *f.Gender == player.GenderFemale &&
			f.Limit != nil && *f.Limit == 10 &&
			f.Role == nil && f.TeamID == nil
	})).Return(player.Page{
		Players: []player.Summary{{ID: 4, Slug: "ann-lee", Name: "Ann Lee", Gender: player.GenderFemale}},
		Total:   1,
	}, nil).Once()

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/v1/players?search=ann&gender=F&limit=10", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data playerPageDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Data.Total != 1 || len(body.Data.Players) != 1 || body.Data.Players[0].Gender != "Female" {
		t.Fatalf("unexpected page: %+v", body.Data)
	}
}

func TestUpdateSeeding_FromText(t *testing.T) {
	t.Parallel()

	router, backend := newTestRouter(t, testConsoleToken)
	want := tournament.Seeding{1: 12, 2: 7, 3: 3}
	backend.tournaments.On("UpdateSeeding", mock.Anything, int64(5), want).
		Return(tournament.Tournament{ID: 5, Slug: "regionals", CurrentSeeding: want}, nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/v1/console/tournaments/5/seeding", strings.NewReader(`{"text":"[12, 7, 3]"}`))
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateSeeding_RejectsDuplicateTeams(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	req := httptest.NewRequest(http.MethodPut, "/v1/console/tournaments/5/seeding", strings.NewReader(`{"team_ids":[4,4]}`))
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUploadSchedule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		filename   string
		content    string
		setup      func(testBackend)
		wantStatus int
	}{
		{
			name:     "csv file",
			filename: "fixtures.csv",
			content:  "match,time,field\n1,09:00,2\n",
			setup: func(b testBackend) {
				b.tournaments.On("UploadSchedule", mock.Anything, int64(7), "fixtures.csv", mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "wrong extension",
			filename:   "fixtures.xlsx",
			content:    "binary",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty file",
			filename:   "fixtures.csv",
			content:    "  \n",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, backend := newTestRouter(t, testConsoleToken)
			if tt.setup != nil {
				tt.setup(backend)
			}

			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			part, err := mw.CreateFormFile(scheduleFormField, tt.filename)
			if err != nil {
				t.Fatalf("create form file: %v", err)
			}
			if _, err := part.Write([]byte(tt.content)); err != nil {
				t.Fatalf("write form file: %v", err)
			}
			if err := mw.Close(); err != nil {
				t.Fatalf("close multipart writer: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/console/tournaments/7/schedule", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			req.Header.Set(consoleTokenHeader, testConsoleToken)
			rec := serve(router, req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestUploadSchedule_MissingFile(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("note", "no file"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/console/tournaments/7/schedule", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec).Message; !strings.Contains(msg, scheduleFormField) {
		t.Fatalf("expected message to name %s, got %q", scheduleFormField, msg)
	}
}

func TestSubmitScore_RequiresBothScores(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	req := httptest.NewRequest(http.MethodPost, "/v1/console/matches/11/score", strings.NewReader(`{"score_team_1":13}`))
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestSubmitSpiritScore_RejectsOutOfRangeCategory(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, testConsoleToken)

	body := `{"opponent":{"rules":5,"fouls":2,"fair":2,"positive":2,"communication":2},"self":{}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/console/matches/11/spirit-score", strings.NewReader(body))
	req.Header.Set(consoleTokenHeader, testConsoleToken)
	rec := serve(router, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
