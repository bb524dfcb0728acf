package fuzzy

import (
	"log/slog"
	"time"
)

// Parser turns text into Dates. A Parser holds no mutable state and may
// be shared between goroutines.
type Parser struct {
	now    func() time.Time
	loc    *time.Location
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the function used to find the current year when neither
// the text nor a reference date supplies one.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLocation sets the time zone dates are constructed in.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// WithLogger enables debug logging of token classification.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser that defaults to time.Now and time.Local.
func NewParser(opts ...Option) *Parser {
	p := &Parser{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns the time zone the parser builds dates in.
func (p *Parser) Location() *time.Location {
	return p.loc
}

// Parse interprets text, taking a missing year from the parser's clock.
// It never fails: unrecognised text yields January 1st of the current
// year.
func (p *Parser) Parse(text string) Date {
	return p.parse(text, nil)
}

// ParseRelative interprets text, taking a missing year from ref.
func (p *Parser) ParseRelative(text string, ref time.Time) Date {
	return p.parse(text, &ref)
}

func (p *Parser) parse(text string, ref *time.Time) Date {
	fields := ClassifyIn(text, p.loc)
	if p.logger != nil {
		p.logger.Debug("classified date text",
			"text", text,
			"fuzzy", fields.Fuzzy.String(),
			"year", fields.Year,
			"month", int(fields.Month),
			"day", fields.Day,
			"seconds", fields.Seconds,
			"timestamp", fields.Timestamp)
	}
	d := p.Construct(fields, ref)
	d.Original = text
	return d
}

// Construct builds a Date from classified fields. A missing year comes
// from ref, or from the parser's clock when ref is nil. A missing day
// becomes the 1st and, unless an explicit early/mid/late word was seen,
// marks the date Unstated. A missing month is January.
func (p *Parser) Construct(f Fields, ref *time.Time) Date {
	year := f.Year
	if year == 0 {
		if ref != nil {
			year = ref.Year()
		} else {
			year = p.now().In(p.loc).Year()
		}
	}

	fuzz := f.Fuzzy
	day := f.Day
	if day == 0 {
		day = 1
		if fuzz == None {
			fuzz = Unstated
		}
	}

	month := f.Month
	if month == 0 {
		month = time.January
	}

	t := time.Date(year, month, day, 0, 0, f.Seconds, 0, p.loc)
	t = resolveDay(t, fuzz)

	return Date{Time: t, Fuzzy: fuzz}
}

// resolveDay moves t to the day an early/mid/late marker stands for,
// keeping the time of day.
func resolveDay(t time.Time, fuzz Fuzziness) time.Time {
	dim := DaysInMonth(t.Year(), t.Month())
	var day int
	switch fuzz {
	case Early:
		day = 1
	case Mid:
		day = midDay(dim)
	case Late:
		day = dim
	default:
		return t
	}
	return time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

var defaultParser = NewParser()

// Parse interprets text using the current time and the local time zone.
func Parse(text string) Date {
	return defaultParser.Parse(text)
}

// ParseRelative interprets text, taking a missing year from ref.
func ParseRelative(text string, ref time.Time) Date {
	return defaultParser.ParseRelative(text, ref)
}
