package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
	"github.com/mph-llm-experiments/fuzzydate/internal/denote"
)

func newNewCmd(app *App) *cobra.Command {
	var (
		date string
		tags string
	)

	cmd := &cobra.Command{
		Use:   "new <title...>",
		Short: "Create a note carrying a fuzzy date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			var tagList []string
			if tags != "" {
				for _, t := range strings.Split(tags, ",") {
					if t = strings.TrimSpace(t); t != "" {
						tagList = append(tagList, t)
					}
				}
			}

			var when *fuzzy.Date
			stored := date
			if date != "" {
				d, err := app.parseStrict(date)
				if err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
				when = &d
				stored = app.storedDate(date, d)
			}

			path, err := denote.CreateNote(app.cfg.NotesDirectory, title, stored, tagList)
			if err != nil {
				return err
			}

			if app.structured() {
				result := map[string]interface{}{"path": path, "title": title}
				if when != nil {
					result["when"] = newDateOutput(*when, false)
				}
				return writeOut(cmd, app, result)
			}
			if !app.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date of the note (e.g. \"Mid March, 2017\")")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	_ = cmd.RegisterFlagCompletionFunc("tags", completeTags(app))
	return cmd
}

func newRescheduleCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "reschedule <file> --date <text>",
		Short: "Change the date of a note",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeNotes(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return fmt.Errorf("--date is required")
			}
			d, err := app.parseStrict(date)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			if err := denote.UpdateNoteDate(args[0], app.storedDate(date, d)); err != nil {
				return err
			}

			if app.structured() {
				return writeOut(cmd, app, map[string]interface{}{"path": args[0], "when": newDateOutput(d, false)})
			}
			if !app.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Rescheduled %s to %s\n", args[0], fuzzy.Format(d, app.cfg.AbbreviateMonths))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "New date")
	return cmd
}

// storedDate is the text written to a note for date. With a reference
// date set the resolved year is written out, since the note would
// otherwise take its year from the file's modification time.
func (app *App) storedDate(text string, d fuzzy.Date) string {
	if app.ref == nil {
		return text
	}
	return fuzzy.PinYear(text, d.Year())
}
