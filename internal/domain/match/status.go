package match

import "fmt"

type Status uint8

const (
	StatusYetToBeFixed Status = iota + 1
	StatusScheduled
	StatusCompleted
)

// ParseStatus accepts both the long names and the short codes the backend
// has used for match status.
func ParseStatus(v string) (Status, error) {
	switch v {
	case "YTF", "yet_to_be_fixed", "draft":
		return StatusYetToBeFixed, nil
	case "SCH", "scheduled":
		return StatusScheduled, nil
	case "COM", "completed":
		return StatusCompleted, nil
	default:
		return 0, fmt.Errorf("unknown match status %q", v)
	}
}

func (s Status) String() string {
	switch s {
	case StatusYetToBeFixed:
		return "yet_to_be_fixed"
	case StatusScheduled:
		return "scheduled"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Code is the short form the backend accepts on writes.
func (s Status) Code() string {
	switch s {
	case StatusYetToBeFixed:
		return "YTF"
	case StatusScheduled:
		return "SCH"
	case StatusCompleted:
		return "COM"
	default:
		return ""
	}
}

func (s Status) Label() string {
	switch s {
	case StatusYetToBeFixed:
		return "Yet to be fixed"
	case StatusScheduled:
		return "Scheduled"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case StatusYetToBeFixed, StatusScheduled, StatusCompleted:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid match status %d", uint8(s))
	}
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
