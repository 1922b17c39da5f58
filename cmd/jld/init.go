package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/justlaunchdoom/jld/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newInitCmd builds `jld init`
func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the launcher config and jld settings",
		Long: `Initialize jld by creating config.json and settings.yml.
This command will prompt for a Doom executable and an IWAD; leave either
empty to add them later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd.OutOrStdout(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files without asking")
	return cmd
}

// runInit handles the interactive initialization process
func (a *app) runInit(out io.Writer, force bool) error {
	reader := bufio.NewReader(a.stdin)

	if a.store.Exists() && !force {
		fmt.Fprintf(out, "Config file already exists at %s\n", a.store.Path())
		fmt.Fprint(out, "Overwrite? (y/N): ")
		overwriteInput, _ := reader.ReadString('\n')
		overwriteInput = strings.TrimSpace(strings.ToLower(overwriteInput))
		if overwriteInput != "y" && overwriteInput != "yes" {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Defaults()

	exe := prompt(out, reader, "Doom executable path", "")
	if exe != "" {
		if _, err := cfg.AddExecutable(absPath(exe)); err != nil {
			return err
		}
	}

	iwad := prompt(out, reader, "IWAD path", "")
	if iwad != "" {
		if _, err := cfg.AddIWAD(absPath(iwad)); err != nil {
			return err
		}
	}

	if err := a.saveConfig(cfg); err != nil {
		return err
	}

	settingsPath, err := a.writeSettings(force)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n✓ Configuration file created successfully at %s\n", a.store.Path())
	if settingsPath != "" {
		fmt.Fprintf(out, "  Settings: %s\n", settingsPath)
	}
	if exe != "" {
		fmt.Fprintf(out, "  Executable: %s\n", cfg.SelectedExecutable)
	}
	if iwad != "" {
		fmt.Fprintf(out, "  IWAD: %s\n", cfg.SelectedIWAD)
	}
	return nil
}

// writeSettings writes the current settings to settings.yml unless one is
// already there. It returns the path written, or "" if nothing was.
func (a *app) writeSettings(force bool) (string, error) {
	dir, err := a.dir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, config.SettingsFile)

	if exists, _ := afero.Exists(a.fs, path); exists && !force {
		return "", nil
	}

	if err := a.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create settings directory: %w", err)
	}

	yamlData, err := yaml.Marshal(&a.settings)
	if err != nil {
		return "", fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := afero.WriteFile(a.fs, path, yamlData, 0o644); err != nil {
		return "", fmt.Errorf("failed to write settings file: %w", err)
	}
	return path, nil
}

func prompt(out io.Writer, reader *bufio.Reader, label, def string) string {
	fmt.Fprintf(out, "%s [%s]: ", label, def)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return def
	}
	return input
}

// absPath expands ~ and makes path absolute. Paths are stored the way a
// file picker would return them.
func absPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(homeDir, path[2:])
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
