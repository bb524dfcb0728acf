package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
	"github.com/mph-llm-experiments/fuzzydate/internal/config"
	"github.com/mph-llm-experiments/fuzzydate/internal/logging"
)

// App carries global flags and the state built from them before a
// command runs.
type App struct {
	ConfigPath string
	Dir        string
	Ref        string
	JSON       bool
	YAML       bool
	Quiet      bool
	NoColor    bool
	Verbose    bool

	now    func() time.Time
	cfg    *config.Config
	parser *fuzzy.Parser
	ref    *time.Time
}

// NewRootCmd builds the fuzzydate command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	app := &App{now: now}

	cmd := &cobra.Command{
		Use:          "fuzzydate",
		Short:        "Parse, sort and format loosely written dates",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  fuzzydate parse "Mid January, 2017"
  fuzzydate format --abbrev "2017, Late November"
  fuzzydate compare "1st Feb, 2017" "Early Feb, 2017"
  printf 'March 12\nMid March\n16 March\n' | fuzzydate sort
  fuzzydate timeline --soon
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("FUZZYDATE_CONFIG", ""), "Path to config.toml")
	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Notes directory (overrides config)")
	cmd.PersistentFlags().StringVar(&app.Ref, "ref", "", "Reference date for missing years (YYYY-MM-DD or natural language)")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "Output JSON")
	cmd.PersistentFlags().BoolVar(&app.YAML, "yaml", false, "Output YAML")
	cmd.PersistentFlags().BoolVarP(&app.Quiet, "quiet", "q", false, "Only print results")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log token classification")

	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newFormatCmd(app))
	cmd.AddCommand(newCompareCmd(app))
	cmd.AddCommand(newSortCmd(app))
	cmd.AddCommand(newTimelineCmd(app))
	cmd.AddCommand(newNewCmd(app))
	cmd.AddCommand(newRescheduleCmd(app))
	cmd.AddCommand(newTryCmd(app))
	cmd.AddCommand(newMigrateCmd(app))

	return cmd
}

func (app *App) setup() error {
	if app.JSON && app.YAML {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if app.Dir != "" {
		cfg.NotesDirectory = app.Dir
	}
	app.cfg = cfg

	if app.Verbose {
		logging.InitLogger(os.Stderr, logging.LevelDebug, logging.FormatText)
	}

	loc, err := cfg.LoadLocation()
	if err != nil {
		return err
	}

	opts := []fuzzy.Option{fuzzy.WithClock(app.now), fuzzy.WithLocation(loc)}
	if app.Verbose {
		opts = append(opts, fuzzy.WithLogger(logging.GetLogger()))
	}
	app.parser = fuzzy.NewParser(opts...)

	refText := cfg.ReferenceDate
	if app.Ref != "" {
		refText = app.Ref
	}
	app.ref, err = config.ParseReference(refText, loc)
	if err != nil {
		return err
	}

	if app.NoColor || cfg.NoColor {
		color.NoColor = true
	}
	return nil
}

// parse interprets text against the reference date when one is set.
func (app *App) parse(text string) fuzzy.Date {
	if app.ref != nil {
		return app.parser.ParseRelative(text, *app.ref)
	}
	return app.parser.Parse(text)
}

func (app *App) parseStrict(text string) (fuzzy.Date, error) {
	return app.parser.ParseStrict(text, app.ref)
}

func (app *App) abbreviate(flag bool) bool {
	return flag || app.cfg.AbbreviateMonths
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
