package tournament

import "fmt"

// Status is the lifecycle stage of a tournament.
type Status uint8

const (
	StatusDraft Status = iota + 1
	StatusRegistrationOpen
	StatusRegistrationClosed
	StatusScheduled
	StatusLive
	StatusCompleted
)

var statusNames = map[Status]string{
	StatusDraft:              "draft",
	StatusRegistrationOpen:   "registration_open",
	StatusRegistrationClosed: "registration_closed",
	StatusScheduled:          "scheduled",
	StatusLive:               "live",
	StatusCompleted:          "completed",
}

// ParseStatus accepts the backend's values and the older short codes.
func ParseStatus(v string) (Status, error) {
	switch v {
	case "draft", "DFT":
		return StatusDraft, nil
	case "registration_open":
		return StatusRegistrationOpen, nil
	case "registration_closed":
		return StatusRegistrationClosed, nil
	case "scheduled", "SCH":
		return StatusScheduled, nil
	case "live", "LIV":
		return StatusLive, nil
	case "completed", "COM":
		return StatusCompleted, nil
	default:
		return 0, fmt.Errorf("unknown tournament status %q", v)
	}
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusRegistrationOpen:
		return "Registration Open"
	case StatusRegistrationClosed:
		return "Registration Closed"
	case StatusScheduled:
		return "Scheduled"
	case StatusLive:
		return "Live"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Editable reports whether fixtures, fields and stages may still change.
func (s Status) Editable() bool {
	switch s {
	case StatusScheduled:
		return true
	case StatusDraft, StatusRegistrationOpen, StatusRegistrationClosed, StatusLive, StatusCompleted:
		return false
	default:
		return false
	}
}

// Startable reports whether the tournament can be moved to live.
func (s Status) Startable() bool {
	switch s {
	case StatusScheduled:
		return true
	case StatusDraft, StatusRegistrationOpen, StatusRegistrationClosed, StatusLive, StatusCompleted:
		return false
	default:
		return false
	}
}

// AcceptsScores reports whether match results are being collected.
func (s Status) AcceptsScores() bool {
	switch s {
	case StatusLive:
		return true
	case StatusDraft, StatusRegistrationOpen, StatusRegistrationClosed, StatusScheduled, StatusCompleted:
		return false
	default:
		return false
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("invalid tournament status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
