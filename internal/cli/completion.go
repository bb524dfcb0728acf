package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mph-llm-experiments/fuzzydate/internal/denote"
)

// collectTags returns the distinct tags of files in sorted order.
func collectTags(files []denote.File) []string {
	tags := make(map[string]bool)

	for _, file := range files {
		for _, tag := range file.Tags {
			// Every note carries this one
			if tag != denote.TypeNote {
				tags[tag] = true
			}
		}
	}

	var tagList []string
	for tag := range tags {
		tagList = append(tagList, tag)
	}
	sort.Strings(tagList)
	return tagList
}

// completeTags completes tag values from the notes directory. Comma
// separated lists complete their last element.
func completeTags(app *App) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if err := app.setup(); err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		files, err := denote.NewScanner(app.cfg.NotesDirectory, app.parser).FindAllFiles()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		prefix := ""
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			prefix = toComplete[:i+1]
		}

		var out []string
		for _, tag := range collectTags(files) {
			if strings.HasPrefix(prefix+tag, toComplete) {
				out = append(out, prefix+tag)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}

// completeNotes completes note paths for commands taking a note file.
func completeNotes(app *App) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if err := app.setup(); err != nil {
			return nil, cobra.ShellCompDirectiveDefault
		}

		files, err := denote.NewScanner(app.cfg.NotesDirectory, app.parser).FindAllFiles()
		if err != nil {
			return nil, cobra.ShellCompDirectiveDefault
		}

		var out []string
		for _, f := range files {
			if strings.HasPrefix(f.Path, toComplete) {
				out = append(out, f.Path+"\t"+f.Title)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
