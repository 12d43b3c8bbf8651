package schedule

import (
	"sort"
	"time"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
)

// DayLayout renders the calendar day label of a match, in UTC.
const DayLayout = "Jan 2, 2006"

// Slot is a time range on one day.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Collision records a match displaced from the lookup by a later match
// with the same day, slot and field.
type Collision struct {
	Day      string
	Slot     Slot
	FieldID  int64
	Replaced match.Match
	Kept     match.Match
}

// Lookup indexes placed matches as day -> start -> end -> field id -> match
// for rendering a grid with days as tabs, slots as rows and fields as columns.
type Lookup struct {
	Slots     map[string]map[time.Time]map[time.Time]map[int64]match.Match
	DayFields map[string]map[int64]bool
	// Collisions lists overwritten entries in insertion order. The last
	// match for a key always wins.
	Collisions []Collision
	// Unscheduled holds matches missing a time or a field, in input order.
	Unscheduled []match.Match

	dayDates map[string]time.Time
}

// DayLabel formats t as its UTC calendar day.
func DayLabel(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// BuildLookup indexes matches by day, slot and field.
func BuildLookup(matches []match.Match) Lookup {
	l := Lookup{
		Slots:     make(map[string]map[time.Time]map[time.Time]map[int64]match.Match),
		DayFields: make(map[string]map[int64]bool),
		dayDates:  make(map[string]time.Time),
	}

	for _, m := range matches {
		if !m.IsPlaced() {
			l.Unscheduled = append(l.Unscheduled, m)
			continue
		}

		start := m.Time.UTC()
		end, _ := m.End()
		end = end.UTC()
		day := DayLabel(start)
		fieldID := m.Field.ID

		if _, ok := l.dayDates[day]; !ok {
			l.dayDates[day] = dateOf(start)
		}

		byStart, ok := l.Slots[day]
		if !ok {
			byStart = make(map[time.Time]map[time.Time]map[int64]match.Match)
			l.Slots[day] = byStart
		}
		byEnd, ok := byStart[start]
		if !ok {
			byEnd = make(map[time.Time]map[int64]match.Match)
			byStart[start] = byEnd
		}
		byField, ok := byEnd[end]
		if !ok {
			byField = make(map[int64]match.Match)
			byEnd[end] = byField
		}

		if prev, taken := byField[fieldID]; taken {
			l.Collisions = append(l.Collisions, Collision{
				Day:      day,
				Slot:     Slot{Start: start, End: end},
				FieldID:  fieldID,
				Replaced: prev,
				Kept:     m,
			})
		}
		byField[fieldID] = m

		fields, ok := l.DayFields[day]
		if !ok {
			fields = make(map[int64]bool)
			l.DayFields[day] = fields
		}
		fields[fieldID] = true
	}

	return l
}

// Get returns the match at the given coordinates.
func (l Lookup) Get(day string, start, end time.Time, fieldID int64) (match.Match, bool) {
	m, ok := l.Slots[day][start.UTC()][end.UTC()][fieldID]
	return m, ok
}

// Len counts the matches reachable through the lookup.
func (l Lookup) Len() int {
	n := 0
	for _, byStart := range l.Slots {
		for _, byEnd := range byStart {
			for _, byField := range byEnd {
				n += len(byField)
			}
		}
	}
	return n
}

// Days returns the day labels in chronological order.
func (l Lookup) Days() []string {
	days := make([]string, 0, len(l.dayDates))
	for d := range l.dayDates {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return l.dayDates[days[i]].Before(l.dayDates[days[j]])
	})
	return days
}

// Dates returns the days holding matches, as UTC midnights in order.
func (l Lookup) Dates() []time.Time {
	out := make([]time.Time, 0, len(l.dayDates))
	for _, d := range l.Days() {
		out = append(out, l.dayDates[d])
	}
	return out
}

// TimeSlots returns the slots used on day, ordered by start then end.
func (l Lookup) TimeSlots(day string) []Slot {
	var out []Slot
	for start, byEnd := range l.Slots[day] {
		for end := range byEnd {
			out = append(out, Slot{Start: start, End: end})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].End.Before(out[j].End)
	})
	return out
}

// Fields returns the ids of fields with at least one match on day, ascending.
func (l Lookup) Fields(day string) []int64 {
	out := make([]int64, 0, len(l.DayFields[day]))
	for id, used := range l.DayFields[day] {
		if used {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
