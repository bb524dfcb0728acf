package denote

import (
	"math"
	"strings"
	"time"

	"github.com/mph-llm-experiments/acore"
	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
)

// File represents a lightweight view of a note for list display.
type File struct {
	ID      string     `json:"id" yaml:"id"`
	Title   string     `json:"title" yaml:"title"`
	Tags    []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"`
	ModTime time.Time  `json:"-" yaml:"-"`
	When    fuzzy.Date `json:"when" yaml:"when"`
	HasDate bool       `json:"has_date" yaml:"has_date"`
}

// HasTag checks if the file has a specific tag
func (f *File) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchesSearch checks if the file matches a search query using fuzzy matching
func (f *File) MatchesSearch(query string) bool {
	query = strings.ToLower(query)

	if fuzzyMatch(strings.ToLower(f.Title), query) {
		return true
	}

	for _, tag := range f.Tags {
		if fuzzyMatch(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// MatchesTag checks if the file has a tag matching the query (fuzzy match)
func (f *File) MatchesTag(query string) bool {
	query = strings.ToLower(query)

	for _, tag := range f.Tags {
		if fuzzyMatch(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// fuzzyMatch performs true fuzzy matching - query letters must appear in order but can be non-consecutive
func fuzzyMatch(text, pattern string) bool {
	if pattern == "" {
		return true
	}

	patternIdx := 0
	for _, ch := range text {
		if patternIdx < len(pattern) && ch == rune(pattern[patternIdx]) {
			patternIdx++
		}
	}

	return patternIdx == len(pattern)
}

// NoteMetadata holds the note-specific frontmatter fields. Common fields
// (ID, Title, Type, Tags, Created, Modified) come from embedded
// acore.Entity.
type NoteMetadata struct {
	Date string `yaml:"date,omitempty" json:"date,omitempty"`
}

// Note combines acore.Entity with the note's date, parsed and raw.
type Note struct {
	acore.Entity `yaml:",inline"`
	NoteMetadata `yaml:",inline"`
	When         fuzzy.Date `yaml:"-" json:"when"`
	HasDate      bool       `yaml:"-" json:"has_date"`
	ModTime      time.Time  `yaml:"-" json:"-"`
	Content      string     `yaml:"-" json:"-"`
}

// FileFromNote constructs a File view from a Note.
func FileFromNote(n *Note) File {
	return File{
		ID:      n.ID,
		Title:   n.Title,
		Tags:    n.Tags,
		Path:    n.FilePath,
		ModTime: n.ModTime,
		When:    n.When,
		HasDate: n.HasDate,
	}
}

// File types
const (
	TypeNote = "note"
)

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPast checks if a date is before today. A fuzzy date is only past once
// its whole month is over.
func IsPast(d fuzzy.Date, now time.Time) bool {
	now = now.In(d.Time.Location())
	if d.IsFuzzy() {
		y, m, _ := d.Time.Date()
		ny, nm, _ := now.Date()
		return y < ny || (y == ny && m < nm)
	}
	return dayStart(d.Time).Before(dayStart(now))
}

// DaysUntil returns the number of days from today until the date. A fuzzy
// date in the current month counts as today.
func DaysUntil(d fuzzy.Date, now time.Time) int {
	now = now.In(d.Time.Location())
	if d.IsFuzzy() && d.Time.Year() == now.Year() && d.Time.Month() == now.Month() {
		return 0
	}
	return int(math.Round(dayStart(d.Time).Sub(dayStart(now)).Hours() / 24))
}

// IsSoon checks if a date falls within the next horizonDays days
func IsSoon(d fuzzy.Date, now time.Time, horizonDays int) bool {
	days := DaysUntil(d, now)
	return days >= 0 && days <= horizonDays
}
