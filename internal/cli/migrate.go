package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
	"github.com/mph-llm-experiments/fuzzydate/internal/denote"
	"github.com/mph-llm-experiments/fuzzydate/internal/logging"
)

func newMigrateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run data migrations over the notes directory",
	}
	cmd.AddCommand(newNormalizeDatesCmd(app))
	return cmd
}

// newNormalizeDatesCmd rewrites every note date into canonical form,
// pinning a missing year to the one the note resolves to today. Dates
// carrying a time of day keep their text and only gain a year.
func newNormalizeDatesCmd(app *App) *cobra.Command {
	var (
		dryRun bool
		abbrev bool
	)

	cmd := &cobra.Command{
		Use:   "normalize-dates [--dry-run]",
		Short: "Rewrite note dates as \"Mid March, 2017\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := denote.NewScanner(app.cfg.NotesDirectory, app.parser)
			notes, err := scanner.FindNotes()
			if err != nil {
				return fmt.Errorf("failed to find notes: %w", err)
			}

			denote.SortNotes(notes, "date", false)

			out := cmd.OutOrStdout()
			changed, skipped := 0, 0
			for _, note := range notes {
				if !note.HasDate {
					continue
				}

				ref := note.ModTime.In(app.parser.Location())
				d, err := app.parser.ParseStrict(note.Date, &ref)
				if err != nil {
					logging.Warn("skipping unreadable date", "path", note.FilePath, "error", err)
					skipped++
					continue
				}

				normalized := fuzzy.Format(d, app.abbreviate(abbrev))
				if hasClock(d) {
					// The canonical form has no time of day; only pin the year.
					normalized = fuzzy.PinYear(note.Date, d.Year())
				}
				if normalized == note.Date {
					continue
				}

				if !app.Quiet {
					fmt.Fprintf(out, "  %s: %q -> %q\n", note.Title, note.Date, normalized)
				}
				changed++
				if dryRun {
					continue
				}
				if err := denote.UpdateNoteDate(note.FilePath, normalized); err != nil {
					return fmt.Errorf("failed to update %s: %w", note.FilePath, err)
				}
				logging.Info("normalized note date", "path", note.FilePath, "from", note.Date, "to", normalized)
			}

			if !app.Quiet {
				verb := "Updated"
				if dryRun {
					verb = "Would update"
				}
				fmt.Fprintf(out, "%s %d notes (%d skipped)\n", verb, changed, skipped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be changed without making changes")
	cmd.Flags().BoolVar(&abbrev, "abbrev", false, "Abbreviate month names")
	return cmd
}

func hasClock(d fuzzy.Date) bool {
	h, m, sec := d.Time.Clock()
	return h != 0 || m != 0 || sec != 0
}
