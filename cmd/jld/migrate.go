package main

import (
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"

	"github.com/justlaunchdoom/jld/internal/config"
	"github.com/justlaunchdoom/jld/internal/config/migrate"
	"github.com/justlaunchdoom/jld/internal/logger"
	"github.com/spf13/cobra"
)

// newMigrateCmd builds `jld migrate`
func newMigrateCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade config.json from the single-path layout",
		Long: `Migrate rewrites a config.json written by an older launcher release
into the list-based layout. Every other command does this on load; migrate
shows what changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !a.store.Exists() {
				fmt.Fprintf(out, "No config file at %s\n", a.store.Path())
				return nil
			}

			before, err := a.store.LoadRecord()
			if err != nil {
				return err
			}

			after := migrate.Migrate(before)
			if !migrate.Changed(before, after) {
				fmt.Fprintf(out, "%s is up to date\n", a.store.Path())
				return nil
			}

			printRecordDiff(out, before, after)

			if dryRun {
				fmt.Fprintln(out, "Dry run, nothing written.")
				return nil
			}

			config.ApplyDefaults(after)
			for _, key := range config.Sanitize(after) {
				logger.Warn("config value has the wrong type, using default", "key", key)
			}
			cfg, err := config.Decode(after)
			if err != nil {
				return err
			}
			if err := a.saveConfig(cfg); err != nil {
				return err
			}

			logger.Info("config migrated", "path", a.store.Path())
			fmt.Fprintf(out, "✓ Migrated %s\n", a.store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changes without writing them")
	return cmd
}

// printRecordDiff lists removed, added and changed top-level keys
func printRecordDiff(out io.Writer, before, after migrate.Record) {
	for _, k := range slices.Sorted(maps.Keys(before)) {
		if _, ok := after[k]; !ok {
			fmt.Fprintf(out, "  - %s\n", k)
		}
	}
	for _, k := range slices.Sorted(maps.Keys(after)) {
		old, ok := before[k]
		switch {
		case !ok:
			fmt.Fprintf(out, "  + %s = %v\n", k, after[k])
		case !reflect.DeepEqual(old, after[k]):
			fmt.Fprintf(out, "  ~ %s = %v\n", k, after[k])
		}
	}
}
