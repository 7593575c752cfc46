package reconcile

import "sort"

// SortByName orders matches ascending by name in place, which for the
// YYYY-MM-DD-HHMMSS_label convention is also date order. The planner
// calls this exactly once per build, immediately after Match.
func SortByName(matches []Matching) {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name() < matches[j].Name()
	})
}
