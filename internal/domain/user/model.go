package user

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
)

// User is the account behind the backend session.
type User struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	IsStaff   bool
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Access is what the session may do inside one tournament.
type Access struct {
	AdminTeamIDs          []int64
	IsStaff               bool
	IsTournamentAdmin     bool
	IsTournamentVolunteer bool
	PlayingTeamID         int64
}

// IsOfficial reports staff, tournament admins and volunteers, who may enter
// scores for any match.
func (a Access) IsOfficial() bool {
	return a.IsStaff || a.IsTournamentAdmin || a.IsTournamentVolunteer
}

func (a Access) IsTeamAdminOf(teamID int64) bool {
	return teamID > 0 && slices.Contains(a.AdminTeamIDs, teamID)
}

// IsMatchTeamAdmin reports whether the session administers either side of m.
func (a Access) IsMatchTeamAdmin(m match.Match) bool {
	for _, id := range m.TeamIDs() {
		if a.IsTeamAdminOf(id) {
			return true
		}
	}
	return false
}

// CanSubmitScore reports whether the session administers a side of m that
// has not reported a score yet.
func (a Access) CanSubmitScore(m match.Match) bool {
	if t, ok := match.TeamOf(m.Team1); ok && a.IsTeamAdminOf(t.ID) && m.Suggested1 == nil {
		return true
	}
	if t, ok := match.TeamOf(m.Team2); ok && a.IsTeamAdminOf(t.ID) && m.Suggested2 == nil {
		return true
	}
	return false
}

type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// OTPChallenge is returned when a one-time password was sent. The timestamp
// must be echoed back on login.
type OTPChallenge struct {
	Email     string
	Timestamp int64
}

type OTPLogin struct {
	Email     string
	OTP       string
	Timestamp int64
}

func (l OTPLogin) Validate() error {
	if err := ValidateEmail(l.Email); err != nil {
		return err
	}
	if err := ValidateOTP(l.OTP); err != nil {
		return err
	}
	if l.Timestamp <= 0 {
		return fmt.Errorf("otp timestamp is required")
	}
	return nil
}

// ValidateOTP accepts exactly six ASCII digits.
func ValidateOTP(code string) error {
	if len(code) != 6 {
		return fmt.Errorf("otp must be 6 digits")
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return fmt.Errorf("otp must be 6 digits")
		}
	}
	return nil
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("email is invalid")
	}
	return nil
}
