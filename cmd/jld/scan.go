package main

import (
	"fmt"

	"github.com/justlaunchdoom/jld/internal/config"
	"github.com/justlaunchdoom/jld/internal/logger"
	"github.com/justlaunchdoom/jld/internal/scanner"
	"github.com/spf13/cobra"
)

// newScanCmd builds `jld scan`
func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan the PWAD directories and cache what was found",
		Long: `Scan every configured PWAD directory for loadable files and cache the
result for 'jld pwads --cached'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(cfg.PwadDirectories) == 0 {
				fmt.Fprintln(out, "No PWAD directories configured. Add one with 'jld dir add <path>'.")
				return nil
			}

			files := a.scan(cfg)

			// Save scan results to cache
			c, err := a.cache()
			if err != nil {
				logger.Warn("failed to initialize cache", "error", err)
			} else if err := c.Save(cfg.PwadDirectories, files); err != nil {
				logger.Warn("failed to save scan results to cache", "error", err)
			} else {
				logger.Debug("scan results cached", "count", len(files), "cache_dir", c.Dir())
			}

			fmt.Fprintf(out, "Found %d files in %d directories\n", len(files), len(cfg.PwadDirectories))
			printFiles(out, files, cfg.GroupPwadsByDirectory)
			return nil
		},
	}
}

// scan lists the configured PWAD directories. Unreadable directories are
// logged and left out.
func (a *app) scan(cfg *config.Config) []scanner.PwadFile {
	logger.Info("scanning pwad directories", "count", len(cfg.PwadDirectories))

	files, err := scanner.ScanDirectories(a.fs, cfg.PwadDirectories, cfg.SelectedPwads,
		func(current, total int, message string) {
			logger.Debug(message, "current", current, "total", total)
		})
	if err != nil {
		logger.Warn("some pwad directories could not be scanned", "error", err)
	}

	logger.Info("scan completed", "files_found", len(files))
	return files
}
