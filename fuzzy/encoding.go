package fuzzy

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes None as false, Unstated as true and the named
// markers as their keyword.
func (f Fuzziness) MarshalJSON() ([]byte, error) {
	switch f {
	case None:
		return []byte("false"), nil
	case Unstated:
		return []byte("true"), nil
	}
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts the forms produced by MarshalJSON.
func (f *Fuzziness) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*f = Unstated
		} else {
			*f = None
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fuzziness must be a bool or string: %w", err)
	}
	v, ok := ParseFuzziness(s)
	if !ok {
		return fmt.Errorf("unknown fuzziness %q", s)
	}
	*f = v
	return nil
}

// MarshalYAML uses the same values as MarshalJSON.
func (f Fuzziness) MarshalYAML() (interface{}, error) {
	switch f {
	case None:
		return false, nil
	case Unstated:
		return true, nil
	}
	return f.String(), nil
}

// UnmarshalYAML accepts the forms produced by MarshalYAML.
func (f *Fuzziness) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		if b {
			*f = Unstated
		} else {
			*f = None
		}
		return nil
	}
	v, ok := ParseFuzziness(value.Value)
	if value.Kind != yaml.ScalarNode || !ok {
		return fmt.Errorf("line %d: unknown fuzziness %q", value.Line, value.Value)
	}
	*f = v
	return nil
}

type jsonDate struct {
	Date      string    `json:"date"`
	Fuzzy     Fuzziness `json:"fuzzy"`
	Original  string    `json:"original,omitempty"`
	Formatted string    `json:"formatted,omitempty"`
}

// MarshalJSON encodes the date as an object holding an RFC 3339 time,
// the fuzziness, the original text and the formatted text.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonDate{
		Date:      d.Time.Format(time.RFC3339),
		Fuzzy:     d.Fuzzy,
		Original:  d.Original,
		Formatted: Format(d, false),
	})
}

// UnmarshalJSON decodes the object written by MarshalJSON.
func (d *Date) UnmarshalJSON(data []byte) error {
	var jd jsonDate
	if err := json.Unmarshal(data, &jd); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, jd.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", jd.Date, err)
	}
	*d = Date{Time: t, Fuzzy: jd.Fuzzy, Original: jd.Original}
	return nil
}

// MarshalYAML writes the date as text: the original text with its year
// pinned when known, otherwise the formatted form.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.Original != "" {
		return PinYear(d.Original, d.Year()), nil
	}
	return Format(d, false), nil
}

// UnmarshalYAML parses a scalar with the default parser.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", value.Line)
	}
	*d = Parse(value.Value)
	return nil
}
