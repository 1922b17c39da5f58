package main

import (
	"fmt"

	"github.com/justlaunchdoom/jld/internal/config"
	"github.com/justlaunchdoom/jld/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// pathList describes one of the selectable path lists in the config
type pathList struct {
	use   string
	noun  string
	short string
	// allowNone lets `select` run without an argument to clear the selection
	allowNone bool

	entries  func(*config.Config) []string
	selected func(*config.Config) string
	add      func(*config.Config, string) (bool, error)
	remove   func(*config.Config, string) bool
	choose   func(*config.Config, string) error
}

var executableList = pathList{
	use:      "exe",
	noun:     "executable",
	short:    "Manage Doom engine executables",
	entries:  func(c *config.Config) []string { return c.DoomExecutables },
	selected: func(c *config.Config) string { return c.SelectedExecutable },
	add:      (*config.Config).AddExecutable,
	remove:   (*config.Config).RemoveExecutable,
	choose:   (*config.Config).SelectExecutable,
}

var iwadList = pathList{
	use:      "iwad",
	noun:     "IWAD",
	short:    "Manage IWADs",
	entries:  func(c *config.Config) []string { return c.IWADs },
	selected: func(c *config.Config) string { return c.SelectedIWAD },
	add:      (*config.Config).AddIWAD,
	remove:   (*config.Config).RemoveIWAD,
	choose:   (*config.Config).SelectIWAD,
}

var configFileList = pathList{
	use:       "cfgfile",
	noun:      "engine config file",
	short:     "Manage engine config files passed with -config",
	allowNone: true,
	entries:   func(c *config.Config) []string { return c.ConfigFiles },
	selected:  func(c *config.Config) string { return c.SelectedConfig },
	add:       (*config.Config).AddConfigFile,
	remove:    (*config.Config).RemoveConfigFile,
	choose:    (*config.Config).SelectConfigFile,
}

// newListCmd builds `jld <list> add|remove|select|list`
func newListCmd(a *app, l pathList) *cobra.Command {
	cmd := &cobra.Command{
		Use:   l.use,
		Short: l.short,
	}

	addCmd := &cobra.Command{
		Use:   "add <path>",
		Short: fmt.Sprintf("Add an %s", l.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			path := absPath(args[0])
			if ok, _ := afero.Exists(a.fs, path); !ok {
				logger.Warn("path does not exist", "path", path)
			}

			added, err := l.add(cfg, path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !added {
				fmt.Fprintf(out, "%s is already listed\n", path)
				return nil
			}
			if err := a.saveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(out, "Added %s\n", path)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <path|name>",
		Short: fmt.Sprintf("Remove an %s", l.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			path, err := config.Resolve(l.entries(cfg), args[0])
			if err != nil {
				return err
			}
			l.remove(cfg, path)
			if err := a.saveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", path)
			return nil
		},
	}

	selectArgs := cobra.ExactArgs(1)
	if l.allowNone {
		selectArgs = cobra.RangeArgs(0, 1)
	}
	selectCmd := &cobra.Command{
		Use:   "select <path|name>",
		Short: fmt.Sprintf("Select the %s to launch with", l.noun),
		Args:  selectArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				if path, err = config.Resolve(l.entries(cfg), args[0]); err != nil {
					return err
				}
			}
			if err := l.choose(cfg, path); err != nil {
				return err
			}
			if err := a.saveConfig(cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintf(out, "No %s selected\n", l.noun)
				return nil
			}
			fmt.Fprintf(out, "Selected %s\n", path)
			return nil
		},
	}
	if l.allowNone {
		selectCmd.Long = fmt.Sprintf("Select the %s to launch with. Without an argument the selection is cleared.", l.noun)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss, marking the selected one", l.noun),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			printList(cmd, l.entries(cfg), l.selected(cfg))
			return nil
		},
	}

	cmd.AddCommand(addCmd, removeCmd, selectCmd, listCmd)
	return cmd
}

func printList(cmd *cobra.Command, entries []string, selected string) {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "(none)")
		return
	}
	for _, e := range entries {
		mark := " "
		if e == selected {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %s\n", mark, e)
	}
}
