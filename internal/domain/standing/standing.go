package standing

import (
	"fmt"
	"sort"

	"github.com/osu-ultimate/tournament-console/internal/domain/team"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
)

// Row is one team's line in a pool table.
type Row struct {
	TeamID         int64
	Seed           int
	Rank           int
	Wins           int
	Losses         int
	Draws          int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	// Points is 3 per win and 1 per draw. The backend does not send points.
	Points int
}

// RankPool builds the table of a pool or position pool. Rows are ordered by
// the backend rank, then team id. The pool's seeds are handed out in
// ascending order by finishing position, so row i carries the i-th seed
// slot; rows past the seeded slots get zero.
func RankPool(results map[int64]tournament.Result, seeding tournament.Seeding) []Row {
	rows := make([]Row, 0, len(results))
	for teamID, r := range results {
		rows = append(rows, Row{
			TeamID:         teamID,
			Rank:           r.Rank,
			Wins:           r.Wins,
			Losses:         r.Losses,
			Draws:          r.Draws,
			GoalsFor:       r.GoalsFor,
			GoalsAgainst:   r.GoalsAgainst,
			GoalDifference: r.GoalsFor - r.GoalsAgainst,
			Points:         3*r.Wins + r.Draws,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Rank != rows[j].Rank {
			return rows[i].Rank < rows[j].Rank
		}
		return rows[i].TeamID < rows[j].TeamID
	})

	seeds := seeding.Ranks()
	for i := range rows {
		if i < len(seeds) {
			rows[i].Seed = seeds[i]
		}
	}
	return rows
}

// SpiritTable orders a spirit ranking by rank, then team id.
func SpiritTable(ranks []tournament.SpiritRank) []tournament.SpiritRank {
	out := append([]tournament.SpiritRank(nil), ranks...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}

// Lookup resolves team ids for display.
type Lookup map[int64]team.Team

func TeamLookup(teams []team.Team) Lookup {
	return Lookup(team.Index(teams))
}

// Name returns the team name, or a placeholder for unknown ids.
func (l Lookup) Name(teamID int64) string {
	if t, ok := l[teamID]; ok {
		return t.Name
	}
	return fmt.Sprintf("Team %d", teamID)
}
