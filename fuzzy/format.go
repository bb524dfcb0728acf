package fuzzy

import (
	"strconv"
	"strings"
)

// Format renders d as "[Fuzziness ]Month[ Day], Year", for example
// "March 10, 2015" or "Late November, 2017". Fuzzy dates never show a day
// number. With abbreviate set the month is shortened to three letters.
func Format(d Date, abbreviate bool) string {
	var tokens []string

	if d.Fuzzy.IsNamed() {
		word := d.Fuzzy.String()
		tokens = append(tokens, strings.ToUpper(word[:1])+word[1:])
	}

	month := d.Time.Month().String()
	if abbreviate {
		month = month[:3]
	}
	tokens = append(tokens, month)

	if !d.IsFuzzy() {
		tokens = append(tokens, strconv.Itoa(d.Time.Day()))
	}

	return strings.Join(tokens, " ") + ", " + strconv.Itoa(d.Time.Year())
}

// PinYear appends year to text when the text states none, so that it
// reads back as the same date whatever the reference.
func PinYear(text string, year int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}
	if f := Classify(trimmed); f.HasYear() || f.Timestamp {
		return text
	}
	return strings.TrimRight(trimmed, ",") + ", " + strconv.Itoa(year)
}
