package tournament

import (
	"fmt"
	"time"

	"github.com/osu-ultimate/tournament-console/internal/domain/team"
)

// Tournament is one event as the backend reports it.
type Tournament struct {
	ID             int64
	Slug           string
	Name           string
	Status         Status
	Type           string
	StartDate      time.Time
	EndDate        time.Time
	Location       string
	BannerURL      string
	InitialSeeding Seeding
	CurrentSeeding Seeding
	Teams          []team.Team
	SpiritRanking  []SpiritRank
}

// SpiritRank is one row of the spirit-of-the-game table. SelfPoints is the
// team's own average, shown alongside.
type SpiritRank struct {
	TeamID     int64
	Rank       int
	Points     float64
	SelfPoints float64
}

func (t Tournament) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("tournament id is required")
	}
	if t.Slug == "" {
		return fmt.Errorf("tournament slug is required")
	}
	if !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("tournament end date %s is before start date %s",
			t.EndDate.Format(time.DateOnly), t.StartDate.Format(time.DateOnly))
	}
	return nil
}

// Field is a pitch matches are played on.
type Field struct {
	ID            int64
	TournamentID  int64
	Name          string
	Address       string
	IsBroadcasted bool
	LocationURL   string
}

// FieldInput carries the editable attributes of a field.
type FieldInput struct {
	Name          string
	Address       string
	IsBroadcasted bool
	LocationURL   string
}
