package denote

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mph-llm-experiments/acore"
	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
)

var (
	// Legacy Denote filename pattern: 20170110T093000--slug__tags.md
	legacyDenotePattern = regexp.MustCompile(`^(\d{8}T\d{6})-{1,2}([^_]+)(?:__(.+))?\.md$`)
)

// ParseNoteFile reads a note using acore and parses its date field.
func ParseNoteFile(p *fuzzy.Parser, path string) (*Note, error) {
	var note Note
	content, err := acore.ReadFile(path, &note)
	if err != nil {
		return nil, fmt.Errorf("failed to parse note file %s: %w", path, err)
	}
	note.Content = content
	note.FilePath = path

	if info, err := os.Stat(path); err == nil {
		note.ModTime = info.ModTime()
	}

	base := filepath.Base(path)
	if note.ID == "" || note.Title == "" {
		if m := legacyDenotePattern.FindStringSubmatch(base); len(m) > 2 {
			if note.ID == "" {
				note.ID = m[1]
			}
			if note.Title == "" {
				note.Title = titleFromSlug(m[2])
			}
		} else if id, slug, _, err := acore.ParseFilename(base); err == nil {
			if note.ID == "" {
				note.ID = id
			}
			if note.Title == "" {
				note.Title = titleFromSlug(slug)
			}
		}
	}
	if note.Title == "" {
		note.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if note.Type == "" {
		note.Type = TypeNote
	}

	note.When, note.HasDate = ParseNoteDate(p, note.Date, note.ModTime.In(p.Location()))

	return &note, nil
}

func titleFromSlug(slug string) string {
	return strings.ReplaceAll(strings.TrimSpace(slug), "-", " ")
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
