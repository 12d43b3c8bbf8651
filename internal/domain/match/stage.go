package match

import "fmt"

type StageKind uint8

const (
	StageNone StageKind = iota
	StagePool
	StageCrossPool
	StageBracket
	StagePositionPool
)

// ParseStageKind reads the stage names used by the console form.
func ParseStageKind(v string) (StageKind, error) {
	switch v {
	case "pool":
		return StagePool, nil
	case "cross_pool":
		return StageCrossPool, nil
	case "bracket":
		return StageBracket, nil
	case "position_pool":
		return StagePositionPool, nil
	case "":
		return StageNone, nil
	default:
		return StageNone, fmt.Errorf("unknown stage %q", v)
	}
}

func (k StageKind) String() string {
	switch k {
	case StagePool:
		return "pool"
	case StageCrossPool:
		return "cross_pool"
	case StageBracket:
		return "bracket"
	case StagePositionPool:
		return "position_pool"
	case StageNone:
		return ""
	default:
		return fmt.Sprintf("StageKind(%d)", uint8(k))
	}
}

// Field is the backend id attribute carrying this stage on a match write.
func (k StageKind) Field() string {
	switch k {
	case StagePool:
		return "pool_id"
	case StageCrossPool:
		return "cross_pool_id"
	case StageBracket:
		return "bracket_id"
	case StagePositionPool:
		return "position_pool_id"
	case StageNone:
		return ""
	default:
		return ""
	}
}

// Stage is the single grouping a match belongs to.
type Stage struct {
	Kind           StageKind
	ID             int64
	Name           string
	SequenceNumber int
}

// Label names the stage for display.
func (s Stage) Label() string {
	switch s.Kind {
	case StagePool:
		return "Pool " + s.Name
	case StageCrossPool:
		return "Cross Pool"
	case StageBracket:
		return "Bracket " + s.Name
	case StagePositionPool:
		return "Position Pool " + s.Name
	case StageNone:
		return ""
	default:
		return ""
	}
}

var (
	poolColors         = []string{"blue", "green", "pink", "indigo", "purple", "lime", "red", "fuchsia", "cyan"}
	crossPoolColors    = []string{"yellow", "red", "fuchsia"}
	bracketColors      = []string{"cyan", "indigo", "sky"}
	positionPoolColors = []string{"lime", "pink", "emerald"}
)

// CardColor picks the accent colour of a match card. Empty when the
// sequence numbers fall outside the palette.
func CardColor(m Match) string {
	switch m.Stage.Kind {
	case StagePool:
		return pick(poolColors, m.Stage.SequenceNumber)
	case StageCrossPool:
		return pick(crossPoolColors, m.SequenceNumber)
	case StageBracket:
		if m.Stage.SequenceNumber < 1 || m.Stage.SequenceNumber > 5 {
			return ""
		}
		return pick(bracketColors, m.SequenceNumber)
	case StagePositionPool:
		return pick(positionPoolColors, m.Stage.SequenceNumber)
	case StageNone:
		return ""
	default:
		return ""
	}
}

func pick(palette []string, seq int) string {
	if seq < 1 || seq > len(palette) {
		return ""
	}
	return palette[seq-1]
}
