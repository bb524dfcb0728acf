package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
	"github.com/mph-llm-experiments/fuzzydate/internal/denote"
)

func newTimelineCmd(app *App) *cobra.Command {
	var (
		past    bool
		soon    bool
		undated bool
		search  string
		tag     string
		sortBy  string
		reverse bool
		abbrev  bool
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "List notes ordered by their fuzzy dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := denote.NewScanner(app.cfg.NotesDirectory, app.parser)
			files, err := scanner.FindAllFiles()
			if err != nil {
				return fmt.Errorf("failed to scan directory: %w", err)
			}

			now := app.now()
			var shown []denote.File
			for _, f := range files {
				if !f.HasDate && !undated {
					continue
				}
				if past && (!f.HasDate || !denote.IsPast(f.When, now)) {
					continue
				}
				if soon && (!f.HasDate || !denote.IsSoon(f.When, now, app.cfg.SoonHorizon)) {
					continue
				}
				if search != "" && !f.MatchesSearch(search) {
					continue
				}
				if tag != "" && !f.MatchesTag(tag) {
					continue
				}
				shown = append(shown, f)
			}

			denote.SortFiles(shown, sortBy, reverse)

			if app.structured() {
				type Output struct {
					Notes []denote.File `json:"notes" yaml:"notes"`
					Count int           `json:"count" yaml:"count"`
				}
				return writeOut(cmd, app, Output{Notes: shown, Count: len(shown)})
			}

			out := cmd.OutOrStdout()
			if !app.Quiet {
				fmt.Fprintf(out, "Notes (%d):\n\n", len(shown))
			}

			for _, f := range shown {
				dateStr := "(undated)"
				if f.HasDate {
					dateStr = fuzzy.Format(f.When, app.abbreviate(abbrev))
				}

				title := truncate(f.Title, 50)

				line := fmt.Sprintf("%-22s %-50s %s", dateStr, title, strings.Join(f.Tags, ","))
				line = strings.TrimRight(line, " ")

				switch {
				case !f.HasDate:
					fmt.Fprintln(out, line)
				case denote.IsPast(f.When, now):
					fmt.Fprintln(out, pastColor.Sprint(line))
				case denote.IsSoon(f.When, now, app.cfg.SoonHorizon):
					fmt.Fprintln(out, soonColor.Sprint(line))
				default:
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&past, "past", false, "Show only past dates")
	cmd.Flags().BoolVar(&soon, "soon", false, "Show only dates within the configured horizon")
	cmd.Flags().BoolVar(&undated, "undated", false, "Include notes without a date")
	cmd.Flags().StringVar(&search, "search", "", "Fuzzy match on title and tags")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "date", "Sort by: date, title, modified")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Reverse sort order")
	cmd.Flags().BoolVar(&abbrev, "abbrev", false, "Abbreviate month names")
	_ = cmd.RegisterFlagCompletionFunc("tag", completeTags(app))
	_ = cmd.RegisterFlagCompletionFunc("sort", cobra.FixedCompletions([]string{"date", "title", "modified"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
