package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/justlaunchdoom/jld/internal/cache"
	"github.com/justlaunchdoom/jld/internal/launch"
	"github.com/justlaunchdoom/jld/internal/scanner"
	"github.com/spf13/cobra"
)

// newPwadsCmd builds `jld pwads`
func newPwadsCmd(a *app) *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "pwads",
		Short: "List the PWADs found in the configured directories",
		Long: `List loadable files in the PWAD directories. Selected files are marked
with [x]; files with a readme next to them are marked with +txt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			var files []scanner.PwadFile
			if cached {
				c, err := a.cache()
				if err != nil {
					return err
				}
				result, err := c.Load(cfg.PwadDirectories)
				if errors.Is(err, cache.ErrNotCached) {
					return fmt.Errorf("%w, run 'jld scan' first", err)
				}
				if err != nil {
					return err
				}
				files = result.Files
				// the selection may have changed since the scan
				for i := range files {
					files[i].Selected = slices.Contains(cfg.SelectedPwads, files[i].Path)
				}
			} else {
				files = a.scan(cfg)
			}

			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintln(out, "No PWADs found.")
				return nil
			}
			printFiles(out, files, cfg.GroupPwadsByDirectory)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "Use the last scan instead of reading the directories")
	return cmd
}

// printFiles prints one line per file using display names that tell
// same-named files apart
func printFiles(out io.Writer, files []scanner.PwadFile, grouped bool) {
	names := launch.DisplayNames(scanner.Paths(files))

	line := func(indent string, f scanner.PwadFile) {
		mark := "[ ]"
		if f.Selected {
			mark = "[x]"
		}
		txt := ""
		if f.TxtPath != "" {
			txt = "  +txt"
		}
		fmt.Fprintf(out, "%s%s %s%s\n", indent, mark, names[f.Path], txt)
	}

	if !grouped {
		for _, f := range files {
			line("", f)
		}
		return
	}

	for _, g := range scanner.GroupByDirectory(files) {
		fmt.Fprintf(out, "%s:\n", g.Directory)
		for _, f := range g.Files {
			line("  ", f)
		}
	}
}
