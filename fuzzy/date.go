// Package fuzzy interprets loosely written calendar dates such as
// "Mid January, 2017" or "February 2", compares them with
// fuzziness-aware tie-breaking and renders them back to text.
package fuzzy

import (
	"time"
)

// Fuzziness records how precisely the day of a Date was stated.
type Fuzziness int

const (
	// None means the day was given exactly.
	None Fuzziness = iota
	// Unstated means no day was given; the date defaults to the 1st.
	Unstated
	// Early means the text said "early"; the date is the 1st.
	Early
	// Mid means the text said "mid"; the date is the middle of the month.
	Mid
	// Late means the text said "late"; the date is the last day of the month.
	Late
)

// IsFuzzy reports whether the day is anything other than exact.
func (f Fuzziness) IsFuzzy() bool {
	return f != None
}

// IsNamed reports whether the fuzziness came from an explicit word.
func (f Fuzziness) IsNamed() bool {
	return f == Early || f == Mid || f == Late
}

func (f Fuzziness) String() string {
	switch f {
	case Unstated:
		return "unstated"
	case Early:
		return "early"
	case Mid:
		return "mid"
	case Late:
		return "late"
	default:
		return ""
	}
}

// ParseFuzziness maps a keyword back to its Fuzziness.
func ParseFuzziness(s string) (Fuzziness, bool) {
	switch s {
	case "":
		return None, true
	case "unstated", "true":
		return Unstated, true
	case "early":
		return Early, true
	case "mid":
		return Mid, true
	case "late":
		return Late, true
	}
	return None, false
}

// Date is a calendar date annotated with how fuzzy its day is and the
// text it was parsed from. Treat it as a value.
type Date struct {
	Time     time.Time
	Fuzzy    Fuzziness
	Original string
}

// Year returns the calendar year.
func (d Date) Year() int { return d.Time.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.Time.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.Time.Day() }

// IsFuzzy reports whether the day is not exact.
func (d Date) IsFuzzy() bool { return d.Fuzzy.IsFuzzy() }

// DaysInMonth returns the length of the date's month.
func (d Date) DaysInMonth() int {
	return DaysInMonth(d.Time.Year(), d.Time.Month())
}

// SameMonth reports whether both dates fall in the same year and month.
func (d Date) SameMonth(o Date) bool {
	return d.Time.Year() == o.Time.Year() && d.Time.Month() == o.Time.Month()
}

// String renders the date with full month names.
func (d Date) String() string {
	return Format(d, false)
}

// DaysInMonth returns the number of days in the given month, honouring
// leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// midDay is round(daysInMonth/2).
func midDay(daysInMonth int) int {
	return (daysInMonth + 1) / 2
}
