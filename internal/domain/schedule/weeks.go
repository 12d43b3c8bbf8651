package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Week groups the days that share a Monday anchor.
type Week struct {
	Label  string
	Anchor time.Time
	Days   []time.Time
}

// WeekAnchor returns the Monday on or before t's UTC date. Sunday belongs
// to the preceding Monday.
func WeekAnchor(t time.Time) time.Time {
	d := dateOf(t)
	offset := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		offset = 6
	}
	return d.AddDate(0, 0, -offset)
}

// BucketWeeks groups days into weeks labelled "Week 1".."Week n" in
// chronological order. Days are compared by UTC date and de-duplicated.
func BucketWeeks(days []time.Time) []Week {
	byAnchor := make(map[time.Time]map[time.Time]struct{})
	for _, day := range days {
		anchor := WeekAnchor(day)
		set, ok := byAnchor[anchor]
		if !ok {
			set = make(map[time.Time]struct{})
			byAnchor[anchor] = set
		}
		set[dateOf(day)] = struct{}{}
	}

	anchors := make([]time.Time, 0, len(byAnchor))
	for a := range byAnchor {
		anchors = append(anchors, a)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Before(anchors[j]) })

	weeks := make([]Week, 0, len(anchors))
	for i, a := range anchors {
		ds := make([]time.Time, 0, len(byAnchor[a]))
		for d := range byAnchor[a] {
			ds = append(ds, d)
		}
		sort.Slice(ds, func(i, j int) bool { return ds[i].Before(ds[j]) })

		weeks = append(weeks, Week{
			Label:  fmt.Sprintf("Week %d", i+1),
			Anchor: a,
			Days:   ds,
		})
	}
	return weeks
}

// TournamentDays lists every UTC date from start to end inclusive. It is
// empty when end precedes start.
func TournamentDays(start, end time.Time) []time.Time {
	from, to := dateOf(start), dateOf(end)
	if to.Before(from) {
		return nil
	}

	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
