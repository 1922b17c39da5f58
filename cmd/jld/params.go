package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newParamsCmd builds `jld params [set <params>...]`
func newParamsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show or set extra engine parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.CustomParams)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set [params]...",
		Short: "Set the parameters appended to every launch; no arguments clears them",
		Example: `  jld params set -- -skill 4 -warp 1
  jld params set "-fast -nomonsters"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			cfg.SetCustomParams(strings.Join(args, " "))
			if err := a.saveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Custom parameters: %s\n", cfg.CustomParams)
			return nil
		},
	}

	cmd.AddCommand(setCmd)
	return cmd
}
