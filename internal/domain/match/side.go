package match

import (
	"fmt"

	"github.com/osu-ultimate/tournament-console/internal/domain/team"
)

// Side is one participant slot of a match: either a resolved team or a
// placeholder seed waiting for an earlier stage to finish.
type Side interface {
	SeedNumber() int
	side()
}

type Resolved struct {
	Team team.Team
	Seed int
}

type Placeholder struct {
	Seed int
}

func (r Resolved) SeedNumber() int    { return r.Seed }
func (p Placeholder) SeedNumber() int { return p.Seed }
func (Resolved) side()                {}
func (Placeholder) side()             {}

// TeamOf returns the team behind s, if resolved.
func TeamOf(s Side) (team.Team, bool) {
	switch v := s.(type) {
	case Resolved:
		return v.Team, true
	case Placeholder:
		return team.Team{}, false
	default:
		return team.Team{}, false
	}
}

// SideLabel renders a side as the match card does: "Name (seed)" or the
// bare seed number.
func SideLabel(s Side) string {
	switch v := s.(type) {
	case Resolved:
		return fmt.Sprintf("%s (%d)", v.Team.Name, v.Seed)
	case Placeholder:
		return fmt.Sprintf("%d", v.Seed)
	default:
		return "TBD"
	}
}
