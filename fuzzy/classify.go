package fuzzy

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	reWeekday = regexp.MustCompile(`(sun|mon|tue|wed|thu|fri|sat)`)
	reFuzzy   = regexp.MustCompile(`(early|mid|late)`)
	reYear    = regexp.MustCompile(`\d{4}`)
	reClock   = regexp.MustCompile(`[0-9:]+(am|pm)?`)
	reDay     = regexp.MustCompile(`\d{1,2}(st|nd|rd|th)?`)
	reAmPm    = regexp.MustCompile(`(am|pm)`)
)

var monthPrefixes = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// Fields accumulates what the tokens of a date string say. Zero values
// mean "not stated" for Year, Month and Day. Later tokens of the same kind
// overwrite earlier ones.
type Fields struct {
	Fuzzy   Fuzziness
	Year    int
	Month   time.Month
	Day     int
	Seconds int

	// Timestamp is set when the text was a compact "T" separated
	// date-time rather than a list of words.
	Timestamp bool
}

// HasYear reports whether a year token was seen.
func (f Fields) HasYear() bool { return f.Year != 0 }

// HasMonth reports whether a month token was seen.
func (f Fields) HasMonth() bool { return f.Month != 0 }

// HasDay reports whether a day token was seen.
func (f Fields) HasDay() bool { return f.Day != 0 }

// Classify splits text into tokens and folds them into a Fields. Naive
// timestamps are interpreted in the local time zone.
func Classify(text string) Fields {
	return ClassifyIn(text, time.Local)
}

// ClassifyIn is like Classify but interprets timestamps in loc.
func ClassifyIn(text string, loc *time.Location) Fields {
	if f, ok := classifyTimestamp(text, loc); ok {
		return f
	}
	var f Fields
	for _, token := range Tokens(text) {
		f.Fold(token)
	}
	return f
}

// Tokens lower-cases text, splits it on single spaces and drops weekday
// names.
func Tokens(text string) []string {
	raw := strings.Split(strings.ToLower(text), " ")
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if reWeekday.MatchString(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Fold classifies a single lower-cased token and records it. Tokens that
// match nothing are ignored.
func (f *Fields) Fold(token string) {
	if token == "" {
		return
	}

	if kw := reFuzzy.FindString(token); kw != "" {
		f.Fuzzy, _ = ParseFuzziness(kw)
		// "mid-august," also names the month.
		if strings.Contains(token, "-") {
			for _, part := range strings.Split(token, "-") {
				if part == "" || reFuzzy.MatchString(part) {
					continue
				}
				f.Fold(part)
			}
		}
		return
	}

	if reYear.MatchString(token) {
		f.Year, _ = leadingInt(token)
		return
	}

	if m := monthOf(token); m != 0 {
		f.Month = m
		return
	}

	if (strings.Contains(token, ":") || strings.Contains(token, "am") || strings.Contains(token, "pm")) &&
		reClock.MatchString(token) {
		if secs, ok := clockSeconds(token); ok {
			f.Seconds = secs
		}
		return
	}

	if reDay.MatchString(token) {
		f.Day, _ = leadingInt(token)
	}
}

func monthOf(token string) time.Month {
	for i, prefix := range monthPrefixes {
		if strings.HasPrefix(token, prefix) {
			return time.Month(i + 1)
		}
	}
	return 0
}

// clockSeconds turns "10am", "1pm" or "13:30" into seconds past midnight.
// The minute value is also added as the seconds component.
func clockSeconds(token string) (int, bool) {
	addHours := 0
	if strings.Contains(token, "pm") {
		addHours = 12
	}
	loc := reAmPm.FindStringIndex(token)
	if loc != nil {
		token = token[:loc[0]] + token[loc[1]:]
	}
	parts := strings.Split(token, ":")
	hour, ok := leadingInt(parts[0])
	if !ok {
		return 0, false
	}
	minute := 0
	if len(parts) > 1 {
		minute, _ = leadingInt(parts[1])
	}
	return (hour+addHours)*3600 + minute*60 + minute, true
}

// classifyTimestamp handles strings like "2017-10-04T13:54:02". The
// date comes from a full date-time parse; the time of day keeps hours
// and minutes only.
func classifyTimestamp(text string, loc *time.Location) (Fields, bool) {
	trimmed := strings.TrimSpace(text)
	if strings.Contains(trimmed, " ") || !strings.Contains(trimmed, "T") {
		return Fields{}, false
	}
	t, err := dateparse.ParseIn(trimmed, loc)
	if err != nil {
		return Fields{}, false
	}
	t = t.In(loc)

	clock := trimmed[strings.LastIndex(trimmed, "T")+1:]
	if i := strings.Index(clock, "+"); i >= 0 {
		clock = clock[:i]
	}
	parts := strings.Split(clock, ":")
	seconds := 0
	if hour, ok := leadingInt(parts[0]); ok {
		minute := 0
		if len(parts) > 1 {
			minute, _ = leadingInt(parts[1])
		}
		seconds = hour*3600 + minute*60
	}

	return Fields{
		Year:      t.Year(),
		Month:     t.Month(),
		Day:       t.Day(),
		Seconds:   seconds,
		Timestamp: true,
	}, true
}

// leadingInt parses the integer prefix of s, ignoring any trailing
// characters such as "st" or ",".
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
