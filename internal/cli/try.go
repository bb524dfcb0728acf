package cli

import (
	"github.com/spf13/cobra"

	"github.com/mph-llm-experiments/fuzzydate/internal/tui"
)

func newTryCmd(app *App) *cobra.Command {
	var abbrev bool

	cmd := &cobra.Command{
		Use:   "try",
		Short: "Interactively parse dates and watch them sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(app.parse, app.abbreviate(abbrev))
		},
	}

	cmd.Flags().BoolVar(&abbrev, "abbrev", false, "Start with abbreviated month names")
	return cmd
}
