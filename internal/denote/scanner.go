package denote

import (
	"os"
	"sort"
	"strings"

	"github.com/mph-llm-experiments/acore"
	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
	"github.com/mph-llm-experiments/fuzzydate/internal/logging"
)

// Scanner finds and loads note files
type Scanner struct {
	BaseDir string
	Parser  *fuzzy.Parser
}

// NewScanner creates a new scanner for the given directory
func NewScanner(dir string, p *fuzzy.Parser) *Scanner {
	if p == nil {
		p = fuzzy.NewParser()
	}
	return &Scanner{BaseDir: dir, Parser: p}
}

// FindNotes loads every note file under the base directory. Files that
// fail to parse are logged and skipped.
func (s *Scanner) FindNotes() ([]*Note, error) {
	if _, err := os.Stat(s.BaseDir); err != nil {
		return nil, err
	}

	sc := &acore.Scanner{Dir: s.BaseDir}
	paths, err := sc.FindByType(TypeNote)
	if err != nil {
		return nil, err
	}

	var notes []*Note
	for _, path := range paths {
		note, err := ParseNoteFile(s.Parser, path)
		if err != nil {
			logging.Warn("skipping note", "path", path, "error", err)
			continue
		}
		notes = append(notes, note)
	}
	logging.Debug("scanned notes", "dir", s.BaseDir, "found", len(paths), "loaded", len(notes))
	return notes, nil
}

// FindAllFiles returns File views of every note.
func (s *Scanner) FindAllFiles() ([]File, error) {
	notes, err := s.FindNotes()
	if err != nil {
		return nil, err
	}
	files := make([]File, 0, len(notes))
	for _, n := range notes {
		files = append(files, FileFromNote(n))
	}
	return files, nil
}

// SortNotes sorts notes by "date" (fuzzy-aware), "title" or "modified".
// Undated notes sort after dated ones.
func SortNotes(notes []*Note, sortBy string, reverse bool) {
	switch sortBy {
	case "title":
		sort.SliceStable(notes, func(i, j int) bool {
			return strings.ToLower(notes[i].Title) < strings.ToLower(notes[j].Title)
		})

	case "modified":
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].ModTime.After(notes[j].ModTime)
		})

	case "date":
		fallthrough
	default:
		sort.SliceStable(notes, func(i, j int) bool {
			return lessByDate(notes[i].When, notes[i].HasDate, notes[j].When, notes[j].HasDate)
		})
	}

	if reverse {
		reverseNoteSlice(notes)
	}
}

// SortFiles sorts File views the same way SortNotes sorts notes.
func SortFiles(files []File, sortBy string, reverse bool) {
	switch sortBy {
	case "title":
		sort.SliceStable(files, func(i, j int) bool {
			return strings.ToLower(files[i].Title) < strings.ToLower(files[j].Title)
		})
	case "modified":
		sort.SliceStable(files, func(i, j int) bool {
			return files[i].ModTime.After(files[j].ModTime)
		})
	default:
		sort.SliceStable(files, func(i, j int) bool {
			return lessByDate(files[i].When, files[i].HasDate, files[j].When, files[j].HasDate)
		})
	}

	if reverse {
		for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
			files[i], files[j] = files[j], files[i]
		}
	}
}

func lessByDate(a fuzzy.Date, aOK bool, b fuzzy.Date, bOK bool) bool {
	if aOK != bOK {
		return aOK
	}
	if !aOK {
		return false
	}
	return fuzzy.Less(a, b)
}

func reverseNoteSlice(notes []*Note) {
	for i, j := 0, len(notes)-1; i < j; i, j = i+1, j-1 {
		notes[i], notes[j] = notes[j], notes[i]
	}
}
