package fuzzy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokens_DropsWeekdays(t *testing.T) {
	assert.Equal(t, []string{"january", "10th", "2017"}, Tokens("Tuesday January 10th 2017"))
	assert.Equal(t, []string{"10", "march"}, Tokens("10 March Sat."))
	assert.Equal(t, []string{"", "may"}, Tokens(" May"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Fields
	}{
		{"January 10, 2017", Fields{Year: 2017, Month: time.January, Day: 10}},
		{"Mid-August, 2018", Fields{Fuzzy: Mid, Year: 2018, Month: time.August}},
		{"late 2019", Fields{Fuzzy: Late, Year: 2019}},
		{"10am Jan", Fields{Month: time.January, Seconds: 36000}},
		{"12:05", Fields{Seconds: 12*3600 + 5*60 + 5}},
		// Later tokens of the same kind win.
		{"2015 2016 march april 3 4", Fields{Year: 2016, Month: time.April, Day: 4}},
		{"early late", Fields{Fuzzy: Late}},
		{"nothing here", Fields{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.input), "Classify(%q)", tt.input)
	}
}

func TestClassify_Timestamp(t *testing.T) {
	got := ClassifyIn("2017-10-04T13:54:02", time.UTC)
	assert.Equal(t, Fields{
		Year:      2017,
		Month:     time.October,
		Day:       4,
		Seconds:   13*3600 + 54*60,
		Timestamp: true,
	}, got)

	got = ClassifyIn("2017-10-04T09:30:00+00:00", time.UTC)
	assert.Equal(t, 4, got.Day)
	assert.Equal(t, 9*3600+30*60, got.Seconds)
	assert.True(t, got.Timestamp)
}

func TestFields_Fold(t *testing.T) {
	var f Fields
	f.Fold("1st")
	f.Fold("feb,")
	f.Fold("")
	f.Fold("gibberish")
	assert.Equal(t, Fields{Month: time.February, Day: 1}, f)
	assert.True(t, f.HasDay())
	assert.True(t, f.HasMonth())
	assert.False(t, f.HasYear())
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"10th", 10, true},
		{"2017,", 2017, true},
		{"05", 5, true},
		{"x5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2017, time.January))
	assert.Equal(t, 28, DaysInMonth(2017, time.February))
	assert.Equal(t, 29, DaysInMonth(2016, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 30, DaysInMonth(2017, time.November))
	assert.Equal(t, 31, DaysInMonth(2017, time.December))
}
