package team

import "fmt"

// Team is a club registered with the backend. Teams are shared across
// tournaments.
type Team struct {
	ID      int64
	Slug    string
	Name    string
	LogoURL string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Slug == "" {
		return fmt.Errorf("team slug is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Index maps team id to team. Later duplicates win.
func Index(teams []Team) map[int64]Team {
	out := make(map[int64]Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out
}
