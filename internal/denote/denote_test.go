package denote

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mph-llm-experiments/acore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
)

var testNow = time.Date(2017, time.March, 15, 12, 0, 0, 0, time.UTC)

func testParser() *fuzzy.Parser {
	return fuzzy.NewParser(
		fuzzy.WithClock(func() time.Time { return testNow }),
		fuzzy.WithLocation(time.UTC),
	)
}

func writeNote(t *testing.T, dir, name, content string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	if !mod.IsZero() {
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	return path
}

// noteName returns an acore filename for a note titled title.
func noteName(title string) string {
	return BuildFilename(acore.NewID(), title, TypeNote)
}

func TestParseNoteFile(t *testing.T) {
	dir := t.TempDir()
	mod := time.Date(2016, time.July, 1, 0, 0, 0, 0, time.UTC)
	path := writeNote(t, dir, noteName("Trip"), "---\ntitle: Trip\ntype: note\ndate: Mid March\ntags: [travel]\n---\n\nPack bags.\n", mod)

	note, err := ParseNoteFile(testParser(), path)
	require.NoError(t, err)
	assert.Equal(t, "Trip", note.Title)
	assert.Equal(t, TypeNote, note.Type)
	assert.Equal(t, []string{"travel"}, note.Tags)
	assert.Equal(t, path, note.FilePath)
	assert.Contains(t, note.Content, "Pack bags.")
	require.True(t, note.HasDate)
	// The year comes from the file's modification time.
	assert.Equal(t, 2016, note.When.Year())
	assert.Equal(t, fuzzy.Mid, note.When.Fuzzy)
	assert.Equal(t, 16, note.When.Day())
}

func TestParseNoteFile_LegacyFilename(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "20170110T093000--project-kickoff__work.md", "---\ntype: note\n---\n\nNotes without a title.\n", time.Time{})

	note, err := ParseNoteFile(testParser(), path)
	require.NoError(t, err)
	assert.Equal(t, "20170110T093000", note.ID)
	assert.Equal(t, "project kickoff", note.Title)
	assert.False(t, note.HasDate)
}

func TestScanner_FindAndSort(t *testing.T) {
	dir := t.TempDir()
	writeNote(t, dir, noteName("Twelfth"), "---\ntitle: Twelfth\ntype: note\ndate: March 12, 2017\n---\n", time.Time{})
	writeNote(t, dir, noteName("Sixteenth"), "---\ntitle: Sixteenth\ntype: note\ndate: 16 March, 2017\n---\n", time.Time{})
	writeNote(t, dir, noteName("Middle"), "---\ntitle: Middle\ntype: note\ndate: Mid March, 2017\n---\n", time.Time{})
	writeNote(t, dir, noteName("Someday"), "---\ntitle: Someday\ntype: note\n---\n", time.Time{})
	writeNote(t, dir, noteName("First"), "---\ntitle: First\ntype: note\ndate: 1st March, 2017\n---\n", time.Time{})
	writeNote(t, dir, "readme.txt", "not a note", time.Time{})

	notes, err := NewScanner(dir, testParser()).FindNotes()
	require.NoError(t, err)
	require.Len(t, notes, 5)

	SortNotes(notes, "date", false)
	var titles []string
	for _, n := range notes {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"First", "Twelfth", "Middle", "Sixteenth", "Someday"}, titles)

	SortNotes(notes, "title", false)
	assert.Equal(t, "First", notes[0].Title)
	assert.Equal(t, "Twelfth", notes[4].Title)

	SortNotes(notes, "date", true)
	assert.Equal(t, "Someday", notes[0].Title)

	files, err := NewScanner(dir, testParser()).FindAllFiles()
	require.NoError(t, err)
	SortFiles(files, "date", true)
	assert.Equal(t, "Someday", files[0].Title)
	assert.Equal(t, "First", files[4].Title)
}

func TestScanner_MissingDir(t *testing.T) {
	_, err := NewScanner(filepath.Join(t.TempDir(), "nope"), nil).FindNotes()
	assert.Error(t, err)
}

func TestUpdateNoteDate(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, noteName("Trip"), "---\ntitle: Trip\ntype: note\ndate: March 2017\n---\n\nPack bags.\n", time.Time{})

	require.NoError(t, UpdateNoteDate(path, "Late April, 2017"))

	note, err := ParseNoteFile(testParser(), path)
	require.NoError(t, err)
	assert.Equal(t, "Late April, 2017", note.Date)
	assert.Equal(t, "Trip", note.Title)
	assert.Contains(t, note.Content, "Pack bags.")
	assert.NotEmpty(t, note.Modified)
	assert.Equal(t, 30, note.When.Day())
}

func TestCreateNote(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	path, err := CreateNote(dir, "Conference", "Early June, 2017", []string{"work"})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	note, err := ParseNoteFile(testParser(), path)
	require.NoError(t, err)
	assert.Equal(t, "Conference", note.Title)
	assert.Equal(t, TypeNote, note.Type)
	assert.Equal(t, []string{"note", "work"}, note.Tags)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, fuzzy.Early, note.When.Fuzzy)
	assert.Equal(t, 1, note.When.Day())

	notes, err := NewScanner(dir, testParser()).FindNotes()
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	_, err = CreateNote(dir, "", "", nil)
	assert.Error(t, err)
}

func TestDueHelpers(t *testing.T) {
	p := testParser()

	assert.True(t, IsPast(p.Parse("March 14, 2017"), testNow))
	assert.False(t, IsPast(p.Parse("March 15, 2017"), testNow))
	// Early March is not over until March is.
	assert.False(t, IsPast(p.Parse("Early March, 2017"), testNow))
	assert.True(t, IsPast(p.Parse("Late February, 2017"), testNow))

	assert.Equal(t, 0, DaysUntil(p.Parse("Early March, 2017"), testNow))
	assert.Equal(t, 5, DaysUntil(p.Parse("March 20, 2017"), testNow))
	assert.Equal(t, -1, DaysUntil(p.Parse("March 14, 2017"), testNow))
	assert.Equal(t, 17, DaysUntil(p.Parse("Early April, 2017"), testNow))

	assert.True(t, IsSoon(p.Parse("March 20, 2017"), testNow, 7))
	assert.False(t, IsSoon(p.Parse("Late April, 2017"), testNow, 7))
	assert.True(t, IsSoon(p.Parse("Mid March, 2017"), testNow, 0))
}

func TestFile_MatchesSearch(t *testing.T) {
	f := File{Title: "Project Kickoff", Tags: []string{"work"}}
	assert.True(t, f.MatchesSearch("pkick"))
	assert.True(t, f.MatchesSearch("wrk"))
	assert.False(t, f.MatchesSearch("zzz"))
	assert.True(t, f.MatchesTag("wo"))
	assert.True(t, f.HasTag("work"))
	assert.False(t, f.HasTag("home"))
}
