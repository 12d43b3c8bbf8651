package osuapi

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
)

func ptr[T any](v T) *T {
	return &v
}

func TestPlayerRepository_ListKeepsQueryOrder(t *testing.T) {
	t.Parallel()

	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"players":[{"id":1,"user_id":11,"name":"Asha Rao","slug":"asha-rao","profile_picture":null,"gender":"F","city":"Pune"}],"total":41}`))
	})

	page, err := NewPlayerRepository(client).List(context.Background(), player.Filters{
		Gender: ptr(player.GenderFemale),
		Role:   ptr(player.RoleHandler),
		Sort:   ptr(player.SortName),
		Order:  ptr("asc"),
		Limit:  ptr(20),
		Offset: ptr(0),
	})
	require.NoError(t, err)

	assert.Equal(t, "gender=F&role=H&sort=name&order=asc&limit=20&offset=0", gotQuery)
	assert.Equal(t, 41, page.Total)
	require.Len(t, page.Players, 1)
	assert.Equal(t, player.Summary{ID: 1, UserID: 11, Name: "Asha Rao", Slug: "asha-rao", Gender: player.GenderFemale, City: "Pune"}, page.Players[0])
}

func TestPlayerRepository_GetBySlugNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
	})

	_, err := NewPlayerRepository(client).GetBySlug(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, "Player not found", err.Error())
}

func TestPlayerRepository_GetBySlug(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/players/asha-rao", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"slug":"asha-rao","user":{"id":11,"first_name":"Asha","last_name":"Rao"},"gender":"F","match_up":"F","city":"Pune","throwing_hand":"R","preffered_role":"H"}`))
	})

	p, err := NewPlayerRepository(client).GetBySlug(context.Background(), "asha-rao")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", p.FullName())
	assert.Equal(t, player.RoleHandler, p.PreferredRole)
	assert.Equal(t, player.HandRight, p.ThrowingHand)
}

func TestMatchRepository_DecodesMatch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tournament_id=3", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": 21, "name": "1 vs 4", "time": "2025-03-24T09:00:00+05:30", "duration_mins": "75",
			"status": "SCH", "sequence_number": 2, "placeholder_seed_1": 1, "placeholder_seed_2": 4,
			"team_1": {"id": 5, "name": "Disc Jockeys", "slug": "disc-jockeys", "logo": null},
			"team_2": null,
			"tournament": {"id": 3, "name": "Nationals", "slug": "nationals"},
			"field": {"id": 9, "name": "Field 1", "address": "Main ground", "is_broadcasted": true, "location_url": null},
			"pool": {"id": 12, "name": "A", "sequence_number": 1},
			"cross_pool": null, "bracket": null, "position_pool": null,
			"suggested_score_team_1": {"score_team_1": 13, "score_team_2": 11, "entered_by": {"id": 1, "user_full_name": "Asha Rao"}}
		}]`))
	})

	matches, err := NewMatchRepository(client).ListByTournament(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, match.StatusScheduled, m.Status)
	assert.Equal(t, 75, m.DurationMins)
	assert.True(t, m.Time.Equal(time.Date(2025, 3, 24, 3, 30, 0, 0, time.UTC)), "unexpected time %v", m.Time)
	assert.Equal(t, match.Stage{Kind: match.StagePool, ID: 12, Name: "A", SequenceNumber: 1}, m.Stage)
	assert.Equal(t, "Pool A - 2", m.DisplayName())
	assert.Equal(t, int64(3), m.Field.TournamentID)

	resolved, ok := m.Team1.(match.Resolved)
	require.True(t, ok)
	assert.Equal(t, "Disc Jockeys", resolved.Team.Name)
	assert.Equal(t, match.Placeholder{Seed: 4}, m.Team2)

	require.NotNil(t, m.Suggested1)
	assert.Equal(t, "Asha Rao", m.Suggested1.EnteredBy)
	assert.Nil(t, m.Suggested2)
}

func TestMatchDTO_RejectsTwoStages(t *testing.T) {
	t.Parallel()

	d := matchDTO{ID: 4, Status: "YTF", Pool: &stageDTO{ID: 1}, Bracket: &stageDTO{ID: 2}}
	_, err := d.toDomain()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to both")
}

func TestMatchRepository_CreateBody(t *testing.T) {
	t.Parallel()

	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(raw, &got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":30,"status":"YTF","sequence_number":1,"placeholder_seed_1":2,"placeholder_seed_2":7,"bracket":{"id":8,"name":"1-8"}}`))
	})

	m, err := NewMatchRepository(client).Create(context.Background(), match.CreateInput{
		TournamentID:   3,
		SequenceNumber: 1,
		Time:           time.Date(2025, 3, 24, 9, 0, 0, 0, time.UTC),
		Seed1:          2,
		Seed2:          7,
		Stage:          match.StageBracket,
		StageID:        8,
	})
	require.NoError(t, err)

	assert.Equal(t, "2 vs 7", got["name"])
	assert.Equal(t, "YTF", got["status"])
	assert.Equal(t, "2025-03-24T09:00:00Z", got["time"])
	assert.EqualValues(t, 8, got["bracket_id"])
	assert.NotContains(t, got, "pool_id")
	assert.NotContains(t, got, "field_id")
	assert.Equal(t, match.StageBracket, m.Stage.Kind)
}

func TestMatchRepository_Stats(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[
			{"type":"BL","time":"2025-03-24T09:20:00Z","current_score_team_1":1,"current_score_team_2":0,"team":{"id":6},"block_by":{"user_full_name":"Kai Lee"}},
			{"type":"XX","time":"2025-03-24T09:15:00Z"},
			{"type":"SC","time":"2025-03-24T09:10:00Z","current_score_team_1":1,"current_score_team_2":0,"team":{"id":5},"scored_by":{"user_full_name":"Asha Rao"},"assisted_by":{"user_first_name":"Ben","user_last_name":"Ode"}}
		]}`))
	})

	stats, err := NewMatchRepository(client).Stats(context.Background(), 21)
	require.NoError(t, err)
	require.Len(t, stats.Events, 2)
	assert.Equal(t, match.EventScore, stats.Events[0].Type)
	assert.Equal(t, "Ben Ode", stats.Events[0].AssistedBy)
	assert.Equal(t, match.EventBlock, stats.Events[1].Type)
	assert.Equal(t, "Kai Lee", stats.Events[1].BlockBy)
}

func TestTournamentRepository_GetBySlug(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tournaments/nationals", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 3, "name": "Nationals", "slug": "nationals", "status": "LIV", "type": "MXD",
			"start_date": "2025-03-24", "end_date": "2025-03-26", "location": "Pune",
			"teams": [{"id": 5, "name": "Disc Jockeys", "slug": "disc-jockeys"}],
			"initial_seeding": {"1": 5, "2": "6"},
			"current_seeding": {},
			"spirit_ranking": [{"team_id": 5, "rank": 1, "points": "12.5", "self_points": 11}]
		}`))
	})

	got, err := NewTournamentRepository(client).GetBySlug(context.Background(), "nationals")
	require.NoError(t, err)
	assert.Equal(t, tournament.StatusLive, got.Status)
	assert.Equal(t, tournament.Seeding{1: 5, 2: 6}, got.InitialSeeding)
	assert.True(t, got.EndDate.Equal(time.Date(2025, 3, 26, 0, 0, 0, 0, time.UTC)))
	require.Len(t, got.SpiritRanking, 1)
	assert.Equal(t, 12.5, got.SpiritRanking[0].Points)
}

func TestTournamentRepository_UpdateSeedingBody(t *testing.T) {
	t.Parallel()

	var got map[string]map[string]float64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tournaments/3/update-seeding", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(raw, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"slug":"nationals","status":"SCH","current_seeding":{"1":6,"2":5}}`))
	})

	out, err := NewTournamentRepository(client).UpdateSeeding(context.Background(), 3, tournament.Seeding{1: 6, 2: 5})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"1": 6, "2": 5}, got["seeding"])
	assert.Equal(t, tournament.Seeding{1: 6, 2: 5}, out.CurrentSeeding)
}

func TestStageRepository_GetCrossPoolAcceptsPagedList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":2,"initial_seeding":{"1":5},"current_seeding":{"1":6},"tournament":{"id":3}}],"count":1}`))
	})

	cp, err := NewStageRepository(client).GetCrossPool(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cp.ID)
	assert.Equal(t, tournament.Seeding{1: 6}, cp.CurrentSeeding)
}

func TestStageRepository_ListPoolsResults(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tournaments/nationals/pools", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":12,"name":"A","sequence_number":1,"initial_seeding":{"1":5,"2":6},
			"results":{"5":{"wins":2,"losses":0,"draws":0,"GF":26,"GA":20,"rank":"1"},"6":{"wins":0,"losses":2,"draws":0,"GF":20,"GA":26,"rank":2}}}]`))
	})

	pools, err := NewStageRepository(client).ListPools(context.Background(), "nationals")
	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, tournament.Result{Wins: 2, GoalsFor: 26, GoalsAgainst: 20, Rank: 1}, pools[0].Results[5])
	assert.Equal(t, 2, pools[0].Results[6].Rank)
}

func TestUserRepository_RequestOTP(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/csrf/":
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "abc", Path: "/"})
		case "/api/user/login/otp/request":
			assert.Equal(t, "abc", r.Header.Get("X-CSRFToken"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"otp_ts": 1711270800}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	challenge, err := NewUserRepository(client).RequestOTP(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1711270800), challenge.Timestamp)
}
