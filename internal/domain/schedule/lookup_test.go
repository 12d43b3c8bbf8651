package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
)

func at(v string) *time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return &t
}

func field(id int64) *tournament.Field {
	return &tournament.Field{ID: id, Name: "Field"}
}

func TestBuildLookup_DistinctKeysAreAllReachable(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: 1, Time: at("2025-03-24T09:00:00Z"), DurationMins: 60, Field: field(1)},
		{ID: 2, Time: at("2025-03-24T09:00:00Z"), DurationMins: 60, Field: field(2)},
		{ID: 3, Time: at("2025-03-25T09:00:00Z"), DurationMins: 60, Field: field(1)},
		{ID: 4, Time: at("2025-03-26T14:30:00Z"), DurationMins: 90, Field: field(3)},
	}

	l := BuildLookup(matches)

	require.Equal(t, len(matches), l.Len())
	for _, m := range matches {
		end, _ := m.End()
		got, ok := l.Get(DayLabel(*m.Time), *m.Time, end, m.Field.ID)
		require.True(t, ok, "match %d not reachable", m.ID)
		assert.Equal(t, m.ID, got.ID)
	}
	assert.Empty(t, l.Collisions)
	assert.Empty(t, l.Unscheduled)
	assert.Equal(t, []string{"Mar 24, 2025", "Mar 25, 2025", "Mar 26, 2025"}, l.Days())
	assert.Equal(t, []int64{1, 2}, l.Fields("Mar 24, 2025"))
}

func TestBuildLookup_SkipsUnplacedMatches(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: 1, Time: at("2025-03-24T09:00:00Z"), DurationMins: 60, Field: field(1)},
		{ID: 2, Time: at("2025-03-24T10:00:00Z"), DurationMins: 60},
		{ID: 3, DurationMins: 60, Field: field(1)},
	}

	l := BuildLookup(matches)

	assert.Equal(t, 1, l.Len())
	require.Len(t, l.Unscheduled, 2)
	assert.Equal(t, int64(2), l.Unscheduled[0].ID)
	assert.Equal(t, int64(3), l.Unscheduled[1].ID)
	assert.NotContains(t, l.Fields("Mar 24, 2025"), int64(0))
}

func TestBuildLookup_SameKeyKeepsLastMatch(t *testing.T) {
	t.Parallel()

	first := match.Match{ID: 10, Time: at("2025-03-24T09:00:00Z"), DurationMins: 60, Field: field(1)}
	second := match.Match{ID: 11, Time: at("2025-03-24T09:00:00Z"), DurationMins: 60, Field: field(1)}

	l := BuildLookup([]match.Match{first, second})

	assert.Equal(t, 1, l.Len())
	got, ok := l.Get("Mar 24, 2025", *first.Time, first.Time.Add(time.Hour), 1)
	require.True(t, ok)
	assert.Equal(t, int64(11), got.ID)

	require.Len(t, l.Collisions, 1)
	assert.Equal(t, int64(10), l.Collisions[0].Replaced.ID)
	assert.Equal(t, int64(11), l.Collisions[0].Kept.ID)
	assert.Equal(t, int64(1), l.Collisions[0].FieldID)
}

func TestBuildLookup_DayLabelUsesUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+9", 9*60*60)
	local := time.Date(2025, 3, 25, 2, 0, 0, 0, loc)

	l := BuildLookup([]match.Match{{ID: 1, Time: &local, DurationMins: 30, Field: field(1)}})

	assert.Equal(t, []string{"Mar 24, 2025"}, l.Days())
	assert.Equal(t, []time.Time{time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)}, l.Dates())
}

func TestLookup_TimeSlotsOrdered(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: 1, Time: at("2025-03-24T11:00:00Z"), DurationMins: 60, Field: field(1)},
		{ID: 2, Time: at("2025-03-24T09:00:00Z"), DurationMins: 90, Field: field(2)},
		{ID: 3, Time: at("2025-03-24T09:00:00Z"), DurationMins: 60, Field: field(1)},
	}

	slots := BuildLookup(matches).TimeSlots("Mar 24, 2025")

	require.Len(t, slots, 3)
	assert.Equal(t, *at("2025-03-24T09:00:00Z"), slots[0].Start)
	assert.Equal(t, *at("2025-03-24T10:00:00Z"), slots[0].End)
	assert.Equal(t, *at("2025-03-24T10:30:00Z"), slots[1].End)
	assert.Equal(t, *at("2025-03-24T11:00:00Z"), slots[2].Start)
}
