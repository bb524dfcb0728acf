package fuzzy

import (
	"slices"
	"time"
)

// Compare orders two dates, returning -1, 0 or 1. Dates are compared
// chronologically unless exactly one of them is fuzzy and both fall in
// the same month. In that case:
//
//   - an exact 1st comes before any fuzzy date
//   - "early" comes before every other exact day
//   - "mid" comes after exact days before floor(daysInMonth/2)-1 and
//     before the rest
//   - "late" and unstated days come after every exact day except the
//     last day of the month
func Compare(a, b Date) int {
	if a.IsFuzzy() == b.IsFuzzy() || !a.SameMonth(b) {
		return a.Time.Compare(b.Time)
	}
	if a.IsFuzzy() {
		return compareFuzzy(a.Fuzzy, b.Time)
	}
	return -compareFuzzy(b.Fuzzy, a.Time)
}

// compareFuzzy places a fuzzy day relative to an exact day of the same
// month.
func compareFuzzy(fuzz Fuzziness, exact time.Time) int {
	day := exact.Day()
	if day == 1 {
		return 1
	}
	if fuzz == Early {
		return -1
	}

	dim := DaysInMonth(exact.Year(), exact.Month())
	if fuzz == Mid {
		if day < dim/2-1 {
			return 1
		}
		return -1
	}

	// Late, and Unstated which sorts the same way.
	if day == dim {
		return -1
	}
	return 1
}

// Less reports whether a sorts before b.
func Less(a, b Date) bool {
	return Compare(a, b) < 0
}

// Sort orders dates in place using Compare. Equal dates keep their
// relative order.
func Sort(dates []Date) {
	slices.SortStableFunc(dates, Compare)
}
