package main

import (
	"fmt"
	"strings"

	"github.com/justlaunchdoom/jld/internal/config"
	"github.com/justlaunchdoom/jld/internal/launch"
	"github.com/justlaunchdoom/jld/internal/logger"
	"github.com/justlaunchdoom/jld/internal/scanner"
	"github.com/spf13/cobra"
)

// newArgsCmd builds `jld args`
func newArgsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "args",
		Short: "Print the file arguments for the selected PWADs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			fileArgs := launch.BuildFileArgs(a.selection(cfg))
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimPrefix(fileArgs, " "))
			return nil
		},
	}
}

// newLaunchCmd builds `jld launch`
func newLaunchCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Start the selected engine with the selected files",
		Long: `Launch assembles the command line from the selected executable, IWAD,
PWADs, engine config file and custom parameters, then starts it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			if cfg.SelectedIWAD == "" {
				return fmt.Errorf("%w: no IWAD, pick one with 'jld iwad select'", config.ErrNoSelection)
			}

			commandLine, err := launch.BuildCommand(launch.Options{
				Executable:   cfg.SelectedExecutable,
				IWAD:         cfg.SelectedIWAD,
				Files:        a.selection(cfg),
				ConfigFile:   cfg.SelectedConfig,
				CustomParams: cfg.CustomParams,
			})
			if err != nil {
				return fmt.Errorf("%w, pick one with 'jld exe select'", err)
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, commandLine)
				return nil
			}

			logger.Info("launching", "command", commandLine)
			if err := a.executor.Start(cmd.Context(), commandLine); err != nil {
				return err
			}
			fmt.Fprintf(out, "Launched: %s\n", commandLine)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the command instead of running it")
	return cmd
}

// selection returns the selected PWADs in load order, dropping the ones
// that are no longer in any PWAD directory
func (a *app) selection(cfg *config.Config) []string {
	if len(cfg.SelectedPwads) == 0 {
		return nil
	}
	sel := scanner.Selection(a.scan(cfg), cfg.SelectedPwads)
	if dropped := len(cfg.SelectedPwads) - len(sel); dropped > 0 {
		logger.Warn("selected pwads not found, skipping", "count", dropped)
	}
	return sel
}
