package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
)

// DateOutput is the structured form of a parsed date.
type DateOutput struct {
	Input     string          `json:"input" yaml:"input"`
	Formatted string          `json:"formatted" yaml:"formatted"`
	Date      string          `json:"date" yaml:"date"`
	Fuzzy     fuzzy.Fuzziness `json:"fuzzy" yaml:"fuzzy"`
}

func newDateOutput(d fuzzy.Date, abbreviate bool) DateOutput {
	return DateOutput{
		Input:     d.Original,
		Formatted: fuzzy.Format(d, abbreviate),
		Date:      d.Time.Format(time.RFC3339),
		Fuzzy:     d.Fuzzy,
	}
}

// structured reports whether output should be machine readable.
func (app *App) structured() bool {
	return app.JSON || app.YAML
}

func writeOut(cmd *cobra.Command, app *App, v interface{}) error {
	out := cmd.OutOrStdout()
	if app.YAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

var (
	exactColor = color.New(color.FgGreen)
	fuzzyColor = color.New(color.FgYellow)
	pastColor  = color.New(color.Faint)
	soonColor  = color.New(color.FgCyan, color.Bold)
)

// colorFor picks the color used to print a date by its fuzziness.
func colorFor(d fuzzy.Date) *color.Color {
	if d.IsFuzzy() {
		return fuzzyColor
	}
	return exactColor
}
