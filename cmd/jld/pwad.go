package main

import (
	"fmt"

	"github.com/justlaunchdoom/jld/internal/config"
	"github.com/justlaunchdoom/jld/internal/scanner"
	"github.com/spf13/cobra"
)

// newPwadCmd builds `jld pwad select|deselect|clear`
func newPwadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwad",
		Short: "Choose which PWADs are loaded",
		Long: `Select PWADs by path or file name. Files are loaded in the order they
were selected.`,
	}

	selectCmd := &cobra.Command{
		Use:   "select <path|name>...",
		Short: "Add files to the load order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			found := scanner.Paths(a.scan(cfg))
			out := cmd.OutOrStdout()
			for _, q := range args {
				path, err := config.Resolve(found, q)
				if err != nil {
					return err
				}
				if cfg.SelectPwad(path) {
					fmt.Fprintf(out, "Selected %s\n", path)
				}
			}
			return a.saveConfig(cfg)
		},
	}

	deselectCmd := &cobra.Command{
		Use:   "deselect <path|name>...",
		Short: "Remove files from the load order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, q := range args {
				path, err := config.Resolve(cfg.SelectedPwads, q)
				if err != nil {
					return err
				}
				cfg.DeselectPwad(path)
				fmt.Fprintf(out, "Deselected %s\n", path)
			}
			return a.saveConfig(cfg)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Deselect every file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			cfg.ClearPwadSelection()
			if err := a.saveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Selection cleared")
			return nil
		},
	}

	cmd.AddCommand(selectCmd, deselectCmd, clearCmd)
	return cmd
}
