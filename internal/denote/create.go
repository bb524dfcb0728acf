package denote

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mph-llm-experiments/acore"
)

// CreateNote creates a new note file carrying a fuzzy date and returns
// its path.
func CreateNote(directory, title, date string, tags []string) (string, error) {
	if title == "" {
		return "", fmt.Errorf("title cannot be empty")
	}

	id := acore.NewID()
	now := acore.Now()

	if !contains(tags, TypeNote) {
		tags = append([]string{TypeNote}, tags...)
	}

	var note Note
	note.ID = id
	note.Title = title
	note.Type = TypeNote
	note.Tags = tags
	note.Created = now
	note.Modified = now
	note.Date = date

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("failed to create notes directory: %w", err)
	}

	path := filepath.Join(directory, BuildFilename(id, title, TypeNote))
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("note already exists: %s", path)
	}

	if err := acore.WriteFile(acore.NewLocalStore(directory), filepath.Base(path), &note, ""); err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	return path, nil
}

// BuildFilename builds an acore filename from components.
func BuildFilename(id, title, entityType string) string {
	return acore.BuildFilename(id, title, entityType)
}
