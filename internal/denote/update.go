package denote

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mph-llm-experiments/acore"
)

// UpdateNoteDate rewrites the date field of a note through acore, keeping
// the body.
func UpdateNoteDate(path string, date string) error {
	var note Note
	if _, err := acore.ReadFile(path, &note); err != nil {
		return fmt.Errorf("failed to parse note: %w", err)
	}

	if note.Title == "" {
		note.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	note.Date = date
	note.Modified = acore.Now()

	if err := acore.UpdateFrontmatter(acore.NewLocalStore(filepath.Dir(path)), filepath.Base(path), &note); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}
