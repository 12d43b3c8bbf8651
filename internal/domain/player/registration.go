package player

import (
	"fmt"

	"github.com/osu-ultimate/tournament-console/internal/domain/team"
)

// RegistrationRole is the badge shown next to a rostered person.
type RegistrationRole string

const (
	RoleDefault       RegistrationRole = "DFLT"
	RoleCaptain       RegistrationRole = "CAP"
	RoleSpiritCaptain RegistrationRole = "SCAP"
	RoleCoach         RegistrationRole = "COACH"
	RoleOwner         RegistrationRole = "OWNER"
)

func ParseRegistrationRole(v string) (RegistrationRole, error) {
	switch r := RegistrationRole(v); r {
	case RoleDefault, RoleCaptain, RoleSpiritCaptain, RoleCoach, RoleOwner:
		return r, nil
	case "":
		return RoleDefault, nil
	default:
		return "", fmt.Errorf("unknown registration role %q", v)
	}
}

// Badge is the label rendered for the role, empty for regular players.
func (r RegistrationRole) Badge() string {
	switch r {
	case RoleCaptain:
		return "Captain"
	case RoleSpiritCaptain:
		return "Spirit Captain"
	case RoleCoach:
		return "Coach"
	case RoleOwner:
		return "Owner"
	case RoleDefault:
		return ""
	default:
		return ""
	}
}

// IsStaff reports roles listed apart from the playing roster.
func (r RegistrationRole) IsStaff() bool {
	switch r {
	case RoleCoach, RoleOwner:
		return true
	case RoleDefault, RoleCaptain, RoleSpiritCaptain:
		return false
	default:
		return false
	}
}

// Registration links a person to a team for one tournament.
type Registration struct {
	ID           int64
	TournamentID int64
	Team         team.Team
	Role         RegistrationRole
	Person       RosterPerson
	BasePrice    *float64
	SoldPrice    *float64
}

// RosterPerson is the player as embedded in a roster entry.
type RosterPerson struct {
	ID        int64
	FirstName string
	LastName  string
	Gender    Gender
}

// SplitRoster separates playing members from coaches and owners, keeping order.
func SplitRoster(regs []Registration) (players, staff []Registration) {
	for _, r := range regs {
		if r.Role.IsStaff() {
			staff = append(staff, r)
			continue
		}
		players = append(players, r)
	}
	return players, staff
}
