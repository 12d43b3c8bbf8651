package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/domain/team"
	matchmock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/match"
	playermock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/player"
	teammock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/team"
)

func TestTeamService_Search(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	queries := newTestQueries(t)
	service := NewTeamService(teamRepo, playermock.NewRepository(t), NewMatchService(matchmock.NewRepository(t), queries), queries)

	teamRepo.
		On("List", mock.Anything).
		Return([]team.Team{
			{ID: 1, Slug: "flywings", Name: "Flywings"},
			{ID: 2, Slug: "disc-jockeys", Name: "Disc Jockeys"},
			{ID: 3, Slug: "air-bangalore", Name: "Air Bangalore"},
		}, nil).
		Once()

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "blank returns all", query: " ", want: []int64{1, 2, 3}},
		{name: "subsequence", query: "dsc", want: []int64{2}},
		{name: "case insensitive", query: "AIR", want: []int64{3}},
		{name: "typo", query: "flywigns", want: []int64{1}},
		{name: "no match", query: "zzz", want: []int64{}},
	}

	for _, tc := range tests {
		got, err := service.Search(context.Background(), tc.query)
		if err != nil {
			t.Fatalf("%s: search teams: %v", tc.name, err)
		}
		ids := make([]int64, 0, len(got))
		for _, tm := range got {
			ids = append(ids, tm.ID)
		}
		if len(ids) != len(tc.want) {
			t.Fatalf("%s: unexpected result: got=%v want=%v", tc.name, ids, tc.want)
		}
		for i := range ids {
			if ids[i] != tc.want[i] {
				t.Fatalf("%s: unexpected result: got=%v want=%v", tc.name, ids, tc.want)
			}
		}
	}
}

func TestTeamService_Roster_SplitsStaff(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	queries := newTestQueries(t)
	service := NewTeamService(teammock.NewRepository(t), playerRepo, NewMatchService(matchmock.NewRepository(t), queries), queries)

	playerRepo.
		On("Roster", mock.Anything, "osu-open", "flywings").
		Return([]player.Registration{
			{ID: 1, Role: player.RoleDefault},
			{ID: 2, Role: player.RoleCoach},
			{ID: 3, Role: player.RoleCaptain},
		}, nil).
		Once()

	got, err := service.Roster(context.Background(), "osu-open", "flywings")
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(got.Players) != 2 || len(got.Staff) != 1 {
		t.Fatalf("unexpected split: players=%d staff=%d", len(got.Players), len(got.Staff))
	}
	if got.Staff[0].ID != 2 {
		t.Fatalf("unexpected staff registration: got=%d want=2", got.Staff[0].ID)
	}
}
