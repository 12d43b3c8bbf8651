package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/domain/team"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
)

// teamSearchThreshold is the minimum name similarity accepted for a typo match.
const teamSearchThreshold = 0.7

type teamMatchSource interface {
	ListByTeam(ctx context.Context, tournamentSlug, teamSlug string) ([]match.Match, error)
}

// Roster is a team's registrations for one tournament, split by role.
type Roster struct {
	Players []player.Registration
	Staff   []player.Registration
}

// TeamPage is the team page of a tournament.
type TeamPage struct {
	Team    team.Team
	Roster  Roster
	Matches []match.Match
}

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	matches    teamMatchSource
	queries    *cache.QueryCache
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	matches teamMatchSource,
	queries *cache.QueryCache,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matches:    matches,
		queries:    queries,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	return cache.Fetch(ctx, s.queries, teamsKey(), func(ctx context.Context) ([]team.Team, error) {
		items, err := s.teamRepo.List(ctx)
		return items, backendError("list teams", err)
	})
}

func (s *TeamService) GetBySlug(ctx context.Context, slug string) (team.Team, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return team.Team{}, fmt.Errorf("%w: team slug is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, teamKey(slug), func(ctx context.Context) (team.Team, error) {
		item, err := s.teamRepo.GetBySlug(ctx, slug)
		return item, backendError("get team "+slug, err)
	})
}

// Search returns teams whose name fuzzily contains query, best match first.
// Names within a small edit distance of query also match. A blank query
// returns every team.
func (s *TeamService) Search(ctx context.Context, query string) ([]team.Team, error) {
	teams, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return teams, nil
	}
	return searchTeams(teams, query), nil
}

func (s *TeamService) Roster(ctx context.Context, tournamentSlug, teamSlug string) (Roster, error) {
	tournamentSlug = strings.TrimSpace(tournamentSlug)
	teamSlug = strings.TrimSpace(teamSlug)
	if tournamentSlug == "" || teamSlug == "" {
		return Roster{}, fmt.Errorf("%w: tournament slug and team slug are required", ErrInvalidInput)
	}

	regs, err := cache.Fetch(ctx, s.queries, rosterKey(tournamentSlug, teamSlug), func(ctx context.Context) ([]player.Registration, error) {
		items, err := s.playerRepo.Roster(ctx, tournamentSlug, teamSlug)
		return items, backendError("get roster", err)
	})
	if err != nil {
		return Roster{}, err
	}

	players, staff := player.SplitRoster(regs)
	return Roster{Players: players, Staff: staff}, nil
}

func (s *TeamService) TeamMatches(ctx context.Context, tournamentSlug, teamSlug string) ([]match.Match, error) {
	return s.matches.ListByTeam(ctx, tournamentSlug, teamSlug)
}

// Page assembles the team, its roster and its matches in a tournament.
func (s *TeamService) Page(ctx context.Context, tournamentSlug, teamSlug string) (TeamPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Page")
	defer span.End()

	t, err := s.GetBySlug(ctx, teamSlug)
	if err != nil {
		return TeamPage{}, err
	}
	roster, err := s.Roster(ctx, tournamentSlug, teamSlug)
	if err != nil {
		return TeamPage{}, err
	}
	matches, err := s.TeamMatches(ctx, tournamentSlug, teamSlug)
	if err != nil {
		return TeamPage{}, err
	}

	return TeamPage{Team: t, Roster: roster, Matches: matches}, nil
}

func searchTeams(teams []team.Team, query string) []team.Team {
	type hit struct {
		team  team.Team
		score float64
	}

	q := strings.ToLower(query)
	var hits []hit
	for _, t := range teams {
		name := strings.ToLower(t.Name)
		if fuzzy.MatchNormalizedFold(q, name) {
			// Subsequence matches rank above typo matches; tighter ones first.
			distance := fuzzy.RankMatchNormalizedFold(q, name)
			hits = append(hits, hit{team: t, score: 2 - float64(distance)/float64(max(len(name), 1))})
			continue
		}

		distance := fuzzy.LevenshteinDistance(q, name)
		similarity := 1 - float64(distance)/float64(max(len(q), len(name)))
		if similarity > teamSearchThreshold {
			hits = append(hits, hit{team: t, score: similarity})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].team.Name < hits[j].team.Name
	})

	out := make([]team.Team, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.team)
	}
	return out
}
