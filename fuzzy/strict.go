package fuzzy

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnrecognized is returned in strict mode when no token of the text
	// could be classified.
	ErrUnrecognized = errors.New("no date found")
	// ErrNoMonth is returned in strict mode when the text names no month.
	ErrNoMonth = errors.New("no month found")
)

// Validate reports whether the fields describe a date without relying on
// the January fallback. It is an opt-in check; Parse never calls it.
func (f Fields) Validate() error {
	if f.Timestamp {
		return nil
	}
	if !f.HasYear() && !f.HasMonth() && !f.HasDay() && f.Fuzzy == None && f.Seconds == 0 {
		return ErrUnrecognized
	}
	if !f.HasMonth() {
		return ErrNoMonth
	}
	return nil
}

// ParseStrict is like Parse but rejects text that does not name a month.
// A nil ref takes the missing year from the parser's clock.
func (p *Parser) ParseStrict(text string, ref *time.Time) (Date, error) {
	fields := ClassifyIn(text, p.loc)
	if err := fields.Validate(); err != nil {
		return Date{}, fmt.Errorf("parse %q: %w", text, err)
	}
	d := p.Construct(fields, ref)
	d.Original = text
	return d, nil
}
