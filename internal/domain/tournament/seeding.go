package tournament

import (
	"fmt"
	"sort"
)

// Seeding assigns ranks, starting at 1, to team ids.
type Seeding map[int]int64

// Ordered returns team ids by ascending rank.
func (s Seeding) Ordered() []int64 {
	ranks := s.Ranks()
	out := make([]int64, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, s[r])
	}
	return out
}

// Ranks returns the ranks in ascending order.
func (s Seeding) Ranks() []int {
	ranks := make([]int, 0, len(s))
	for r := range s {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)
	return ranks
}

// Validate checks the seeding is dense from 1 and names every team once.
func (s Seeding) Validate() error {
	seen := make(map[int64]int, len(s))
	for r := 1; r <= len(s); r++ {
		id, ok := s[r]
		if !ok {
			return fmt.Errorf("seeding is missing rank %d", r)
		}
		if id <= 0 {
			return fmt.Errorf("seeding rank %d has no team", r)
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("team %d is seeded at both %d and %d", id, prev, r)
		}
		seen[id] = r
	}
	return nil
}

// SeedingFromList seeds teams in list order.
func SeedingFromList(teamIDs []int64) Seeding {
	out := make(Seeding, len(teamIDs))
	for i, id := range teamIDs {
		out[i+1] = id
	}
	return out
}
