package match

import (
	"fmt"
	"time"

	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
)

// Match is one game between two sides.
type Match struct {
	ID             int64
	TournamentID   int64
	Name           string
	Team1          Side
	Team2          Side
	Status         Status
	Time           *time.Time
	DurationMins   int
	Field          *tournament.Field
	Score1         int
	Score2         int
	Suggested1     *SuggestedScore
	Suggested2     *SuggestedScore
	Spirit1        *SpiritScore
	Spirit2        *SpiritScore
	SelfSpirit1    *SpiritScore
	SelfSpirit2    *SpiritScore
	VideoURL       string
	SequenceNumber int
	Stage          Stage
}

// SuggestedScore is a score reported by one team, not yet confirmed.
type SuggestedScore struct {
	Score1    int
	Score2    int
	EnteredBy string
}

// SpiritScore is a spirit-of-the-game sheet.
type SpiritScore struct {
	Rules         int
	Fouls         int
	Fair          int
	Positive      int
	Communication int
	Total         float64
	Comments      string
	MVP           *Person
	MSP           *Person
}

type Person struct {
	ID        int64
	FirstName string
	LastName  string
	ImageURL  string
}

func (p Person) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// End returns the scheduled end of the match.
func (m Match) End() (time.Time, bool) {
	if m.Time == nil {
		return time.Time{}, false
	}
	return m.Time.Add(time.Duration(m.DurationMins) * time.Minute), true
}

// IsPlaced reports whether the match has both a time and a field.
func (m Match) IsPlaced() bool {
	return m.Time != nil && m.Field != nil
}

// DisplayName is "<stage> - <sequence>", falling back to the backend name.
func (m Match) DisplayName() string {
	label := m.Stage.Label()
	if label == "" {
		return m.Name
	}
	return fmt.Sprintf("%s - %d", label, m.SequenceNumber)
}

// IsLive reports whether now falls inside a scheduled match's slot.
func (m Match) IsLive(now time.Time) bool {
	switch m.Status {
	case StatusScheduled:
		end, ok := m.End()
		return ok && !now.Before(*m.Time) && now.Before(end)
	case StatusYetToBeFixed, StatusCompleted:
		return false
	default:
		return false
	}
}

// SuggestedScoresClash reports whether both teams reported scores that
// disagree.
func (m Match) SuggestedScoresClash() bool {
	if m.Suggested1 == nil || m.Suggested2 == nil {
		return false
	}
	return m.Suggested1.Score1 != m.Suggested2.Score1 || m.Suggested1.Score2 != m.Suggested2.Score2
}

// TeamIDs returns the ids of the resolved sides.
func (m Match) TeamIDs() []int64 {
	out := make([]int64, 0, 2)
	for _, s := range []Side{m.Team1, m.Team2} {
		if t, ok := TeamOf(s); ok {
			out = append(out, t.ID)
		}
	}
	return out
}

// SideOf returns 1 or 2 when teamID plays in m, else 0.
func (m Match) SideOf(teamID int64) int {
	if t, ok := TeamOf(m.Team1); ok && t.ID == teamID {
		return 1
	}
	if t, ok := TeamOf(m.Team2); ok && t.ID == teamID {
		return 2
	}
	return 0
}

// CreateInput describes a new fixture between two seeds.
type CreateInput struct {
	TournamentID   int64
	SequenceNumber int
	Time           time.Time
	Seed1          int
	Seed2          int
	FieldID        int64
	Stage          StageKind
	StageID        int64
}

// Name is the backend name given to new fixtures.
func (in CreateInput) Name() string {
	return fmt.Sprintf("%d vs %d", in.Seed1, in.Seed2)
}

// UpdateInput carries the editable slot attributes. Nil fields are left as is.
type UpdateInput struct {
	Time         *time.Time
	FieldID      *int64
	DurationMins *int
	VideoURL     *string
}

func (in UpdateInput) IsEmpty() bool {
	return in.Time == nil && in.FieldID == nil && in.DurationMins == nil && in.VideoURL == nil
}

type ScoreInput struct {
	Score1 int
	Score2 int
}

// SpiritSheet is one team's spirit submission.
type SpiritSheet struct {
	Rules         int
	Fouls         int
	Fair          int
	Positive      int
	Communication int
	Comments      string
	MVPID         int64
	MSPID         int64
}

// SpiritInput pairs the sheet for the opponent with the team's self assessment.
type SpiritInput struct {
	Opponent SpiritSheet
	Self     SpiritSheet
}

// Stats is the event timeline of a match.
type Stats struct {
	Events []Event
}

type EventType uint8

const (
	EventScore EventType = iota + 1
	EventBlock
	EventThrowaway
	EventDrop
)

func ParseEventType(v string) (EventType, error) {
	switch v {
	case "SC":
		return EventScore, nil
	case "BL":
		return EventBlock, nil
	case "TA":
		return EventThrowaway, nil
	case "DR":
		return EventDrop, nil
	default:
		return 0, fmt.Errorf("unknown match event %q", v)
	}
}

func (t EventType) String() string {
	switch t {
	case EventScore:
		return "score"
	case EventBlock:
		return "block"
	case EventThrowaway:
		return "throwaway"
	case EventDrop:
		return "drop"
	default:
		return "unknown"
	}
}

type Event struct {
	Type       EventType
	Time       time.Time
	Score1     int
	Score2     int
	TeamID     int64
	ScoredBy   string
	AssistedBy string
	BlockBy    string
}
