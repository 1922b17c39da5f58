package main

import (
	"fmt"

	"github.com/justlaunchdoom/jld/internal/config"
	"github.com/justlaunchdoom/jld/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newDirCmd builds `jld dir add|remove|list`
func newDirCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Manage the directories scanned for PWADs",
	}

	addCmd := &cobra.Command{
		Use:   "add <directory>",
		Short: "Add a PWAD directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			dir := absPath(args[0])
			if ok, _ := afero.IsDir(a.fs, dir); !ok {
				logger.Warn("not a directory", "path", dir)
			}

			added, err := cfg.AddPwadDirectory(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !added {
				fmt.Fprintf(out, "%s is already listed\n", dir)
				return nil
			}
			if err := a.saveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(out, "Added %s\n", dir)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <directory|name>",
		Short: "Remove a PWAD directory and deselect its files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			dir, err := config.Resolve(cfg.PwadDirectories, args[0])
			if err != nil {
				return err
			}
			cfg.RemovePwadDirectory(dir)
			if err := a.saveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", dir)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List PWAD directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			printList(cmd, cfg.PwadDirectories, "")
			return nil
		},
	}

	cmd.AddCommand(addCmd, removeCmd, listCmd)
	return cmd
}
