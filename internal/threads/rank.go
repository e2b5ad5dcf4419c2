package threads

import (
	"sort"
	"time"

	"shuho/internal/core"
)

// Window expands two dates into the inclusive report window:
// start at 00:00:00.000 and end at 23:59:59.999... in the dates' location.
func Window(start, end time.Time) (time.Time, time.Time) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
	return s, e
}

// FilterByDateRange selects threads whose root post falls inside the
// inclusive [start, end] window.
func FilterByDateRange(threads []core.Thread, start, end time.Time) []core.Thread {
	selected := make([]core.Thread, 0, len(threads))
	for _, t := range threads {
		d := t.Parent.Date
		if !d.Before(start) && !d.After(end) {
			selected = append(selected, t)
		}
	}
	return selected
}

// TopByEngagement returns the up-to-limit highest scoring threads in the
// given area, descending by engagement score. The sort is stable: threads
// with equal scores keep their relative order from the input.
func TopByEngagement(threads []core.Thread, area string, limit int) []core.Thread {
	ranked := make([]core.Thread, 0, len(threads))
	for _, t := range threads {
		if t.Area == area {
			ranked = append(ranked, t)
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].EngagementScore > ranked[b].EngagementScore
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
