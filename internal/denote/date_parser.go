package denote

import (
	"strings"
	"time"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
)

// ParseNoteDate interprets a note's date field. A missing year is taken
// from ref, normally the file's modification time. Empty text reports
// false.
func ParseNoteDate(p *fuzzy.Parser, text string, ref time.Time) (fuzzy.Date, bool) {
	if strings.TrimSpace(text) == "" {
		return fuzzy.Date{}, false
	}
	return p.ParseRelative(text, ref), true
}
