package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
)

func newParseCmd(app *App) *cobra.Command {
	var (
		strict bool
		abbrev bool
	)

	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse a loosely written date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			var d fuzzy.Date
			if strict {
				var err error
				if d, err = app.parseStrict(text); err != nil {
					return err
				}
			} else {
				d = app.parse(text)
			}

			if app.structured() {
				return writeOut(cmd, app, newDateOutput(d, app.abbreviate(abbrev)))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, colorFor(d).Sprint(fuzzy.Format(d, app.abbreviate(abbrev))))
			if !app.Quiet {
				fmt.Fprintf(out, "  date:  %s\n", d.Time.Format("Mon Jan 02 2006 15:04:05"))
				fuzz := d.Fuzzy.String()
				if fuzz == "" {
					fuzz = "exact"
				}
				fmt.Fprintf(out, "  fuzzy: %s\n", fuzz)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the text names no month")
	cmd.Flags().BoolVar(&abbrev, "abbrev", false, "Abbreviate the month name")
	return cmd
}

func newFormatCmd(app *App) *cobra.Command {
	var abbrev bool

	cmd := &cobra.Command{
		Use:   "format <text...>",
		Short: "Rewrite a date in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := app.parse(strings.Join(args, " "))
			if app.structured() {
				return writeOut(cmd, app, map[string]string{"formatted": fuzzy.Format(d, app.abbreviate(abbrev))})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), fuzzy.Format(d, app.abbreviate(abbrev)))
			return err
		},
	}

	cmd.Flags().BoolVar(&abbrev, "abbrev", false, "Abbreviate the month name")
	return cmd
}

func newCompareCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two dates, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := app.parse(args[0]), app.parse(args[1])
			result := fuzzy.Compare(a, b)

			if app.structured() {
				return writeOut(cmd, app, struct {
					A      DateOutput `json:"a" yaml:"a"`
					B      DateOutput `json:"b" yaml:"b"`
					Result int        `json:"result" yaml:"result"`
				}{newDateOutput(a, false), newDateOutput(b, false), result})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
	return cmd
}

func newSortCmd(app *App) *cobra.Command {
	var (
		abbrev   bool
		original bool
		reverse  bool
	)

	cmd := &cobra.Command{
		Use:   "sort [text...]",
		Short: "Sort dates given as arguments or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					inputs = append(inputs, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
			}

			var dates []fuzzy.Date
			for _, in := range inputs {
				if strings.TrimSpace(in) == "" {
					continue
				}
				dates = append(dates, app.parse(in))
			}

			fuzzy.Sort(dates)
			if reverse {
				for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
					dates[i], dates[j] = dates[j], dates[i]
				}
			}

			if app.structured() {
				out := make([]DateOutput, len(dates))
				for i, d := range dates {
					out[i] = newDateOutput(d, app.abbreviate(abbrev))
				}
				return writeOut(cmd, app, out)
			}

			w := cmd.OutOrStdout()
			for _, d := range dates {
				if original {
					fmt.Fprintln(w, d.Original)
					continue
				}
				fmt.Fprintln(w, colorFor(d).Sprint(fuzzy.Format(d, app.abbreviate(abbrev))))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&abbrev, "abbrev", false, "Abbreviate month names")
	cmd.Flags().BoolVar(&original, "original", false, "Print the input text instead of the formatted date")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Reverse sort order")
	return cmd
}
