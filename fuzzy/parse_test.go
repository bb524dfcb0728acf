package fuzzy

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed clock: Friday, 2018-06-01 12:00:00 UTC
var testNow = time.Date(2018, time.June, 1, 12, 0, 0, 0, time.UTC)

func testParser() *Parser {
	return NewParser(
		WithClock(func() time.Time { return testNow }),
		WithLocation(time.UTC),
	)
}

func TestParse_BasicFormats(t *testing.T) {
	p := testParser()
	want := time.Date(2017, time.January, 10, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"January 10, 2017",
		"10 January, 2017",
		"10 January 2017",
		"Tuesday January 10th 2017",
		"Jan 10th 2017",
	} {
		t.Run(input, func(t *testing.T) {
			d := p.Parse(input)
			assert.True(t, want.Equal(d.Time), "got %s", d.Time)
			assert.Equal(t, None, d.Fuzzy)
			assert.False(t, d.IsFuzzy())
			assert.Equal(t, time.Tuesday, d.Time.Weekday())
			assert.Equal(t, input, d.Original)
		})
	}
}

func TestParse_AssumesDay(t *testing.T) {
	d := testParser().Parse("Jan 2017")
	assert.Equal(t, Unstated, d.Fuzzy)
	assert.True(t, d.IsFuzzy())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 2017, d.Year())
	assert.Equal(t, time.Sunday, d.Time.Weekday())
}

func TestParse_AssumesYear(t *testing.T) {
	p := testParser()

	d := p.Parse("February 2")
	assert.Equal(t, None, d.Fuzzy)
	assert.Equal(t, 2018, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 2, d.Day())
	assert.Equal(t, time.Friday, d.Time.Weekday())

	d = p.ParseRelative("February 2", time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2015, d.Year())
	assert.Equal(t, time.Monday, d.Time.Weekday())

	// An explicit year beats the reference date.
	d = p.ParseRelative("February 2, 2011", time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2011, d.Year())
}

func TestParse_Times(t *testing.T) {
	p := testParser()
	tests := []struct {
		input string
		want  time.Time
	}{
		{"10am January 1, 2015", time.Date(2015, time.January, 1, 10, 0, 0, 0, time.UTC)},
		{"1pm January 1, 2015", time.Date(2015, time.January, 1, 13, 0, 0, 0, time.UTC)},
		// Minutes are also counted as seconds.
		{"10:30 January 1, 2015", time.Date(2015, time.January, 1, 10, 30, 30, 0, time.UTC)},
		{"January 1, 2015 2:15pm", time.Date(2015, time.January, 1, 14, 15, 15, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := p.Parse(tt.input)
		assert.True(t, tt.want.Equal(got.Time), "Parse(%q) = %s, want %s", tt.input, got.Time, tt.want)
		assert.Equal(t, None, got.Fuzzy)
	}
}

func TestParse_Timestamp(t *testing.T) {
	d := testParser().Parse("2017-10-04T13:54:02")
	want := time.Date(2017, time.October, 4, 13, 54, 0, 0, time.UTC)
	assert.True(t, want.Equal(d.Time), "got %s", d.Time)
	assert.Equal(t, None, d.Fuzzy)
	assert.Equal(t, time.Wednesday, d.Time.Weekday())
	assert.Equal(t, "2017-10-04T13:54:02", d.Original)
}

func TestParse_TimestampFallsBackToTokens(t *testing.T) {
	// Contains a "T" and no spaces but is not a timestamp.
	d := testParser().Parse("Tuesday")
	assert.Equal(t, 2018, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, Unstated, d.Fuzzy)
}

func TestParse_FuzzyDays(t *testing.T) {
	p := testParser()
	tests := []struct {
		input string
		fuzz  Fuzziness
		want  time.Time
	}{
		{"Early March, 2017", Early, time.Date(2017, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"Mid January, 2017", Mid, time.Date(2017, time.January, 16, 0, 0, 0, 0, time.UTC)},
		{"Mid-August, 2018", Mid, time.Date(2018, time.August, 16, 0, 0, 0, 0, time.UTC)},
		{"Late February, 2017", Late, time.Date(2017, time.February, 28, 0, 0, 0, 0, time.UTC)},
		{"Late February, 2016", Late, time.Date(2016, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{"Mid February, 2017", Mid, time.Date(2017, time.February, 14, 0, 0, 0, 0, time.UTC)},
		{"Mid February, 2016", Mid, time.Date(2016, time.February, 15, 0, 0, 0, 0, time.UTC)},
		{"Mid April, 2017", Mid, time.Date(2017, time.April, 15, 0, 0, 0, 0, time.UTC)},
		{"2017, Late November", Late, time.Date(2017, time.November, 30, 0, 0, 0, 0, time.UTC)},
		// The marker overrides a stated day.
		{"Mid January 3rd, 2017", Mid, time.Date(2017, time.January, 16, 0, 0, 0, 0, time.UTC)},
		{"Late January 3rd, 2017", Late, time.Date(2017, time.January, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := p.Parse(tt.input)
			assert.Equal(t, tt.fuzz, got.Fuzzy)
			assert.True(t, got.IsFuzzy())
			assert.True(t, tt.want.Equal(got.Time), "got %s, want %s", got.Time, tt.want)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	p := testParser()
	for _, input := range []string{"", " ", "garbage", "???", "Saturday", "x5"} {
		t.Run(input, func(t *testing.T) {
			var d Date
			require.NotPanics(t, func() { d = p.Parse(input) })
			assert.Equal(t, 2018, d.Year())
			assert.Equal(t, time.January, d.Month())
			assert.Equal(t, 1, d.Day())
			assert.Equal(t, Unstated, d.Fuzzy)
		})
	}
}

func TestParse_DayOverflowRolls(t *testing.T) {
	d := testParser().Parse("January 32 2017")
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, None, d.Fuzzy)
}

func TestParse_DefaultClock(t *testing.T) {
	d := Parse("February 2")
	assert.Equal(t, time.Now().Year(), d.Year())
}

func TestParser_ConcurrentUse(t *testing.T) {
	p := testParser()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := p.Parse("Mid January, 2017")
			assert.Equal(t, 16, d.Day())
		}()
	}
	wg.Wait()
}

func TestConstruct(t *testing.T) {
	p := testParser()
	ref := time.Date(2010, time.May, 5, 0, 0, 0, 0, time.UTC)

	d := p.Construct(Fields{Month: time.May, Fuzzy: Late}, &ref)
	assert.Equal(t, Late, d.Fuzzy)
	assert.Equal(t, 2010, d.Year())
	assert.Equal(t, 31, d.Day())

	d = p.Construct(Fields{}, nil)
	assert.Equal(t, Unstated, d.Fuzzy)
	assert.Equal(t, 2018, d.Year())
	assert.Equal(t, time.January, d.Month())

	d = p.Construct(Fields{Year: 2020, Month: time.March, Day: 4, Seconds: 3600}, nil)
	assert.True(t, time.Date(2020, time.March, 4, 1, 0, 0, 0, time.UTC).Equal(d.Time))
	assert.Empty(t, d.Original)
}

func TestParseStrict(t *testing.T) {
	p := testParser()

	d, err := p.ParseStrict("Mid March", nil)
	require.NoError(t, err)
	assert.Equal(t, 2018, d.Year())
	assert.Equal(t, Mid, d.Fuzzy)

	_, err = p.ParseStrict("garbage", nil)
	require.ErrorIs(t, err, ErrUnrecognized)

	_, err = p.ParseStrict("10th 2017", nil)
	require.ErrorIs(t, err, ErrNoMonth)

	_, err = p.ParseStrict("2017-10-04T13:54:02", nil)
	require.NoError(t, err)
}
