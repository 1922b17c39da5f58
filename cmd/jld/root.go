package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/justlaunchdoom/jld/internal/cache"
	"github.com/justlaunchdoom/jld/internal/config"
	"github.com/justlaunchdoom/jld/internal/launch"
	"github.com/justlaunchdoom/jld/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every command needs. Tests swap the filesystem and the
// executor.
type app struct {
	fs       afero.Fs
	executor launch.Executor
	stdin    io.Reader
	logs     chan<- string // receives a copy of every log record when set

	// appDir and cacheDir default to the per-user locations when empty
	appDir   string
	cacheDir string

	v        *viper.Viper
	settings config.Settings
	store    *config.Store
}

func newApp() *app {
	return &app{
		fs:       afero.NewOsFs(),
		executor: launch.ShellExecutor{},
		stdin:    os.Stdin,
		v:        viper.New(),
	}
}

// newRootCmd builds `jld` and all of its subcommands
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jld",
		Short: "Just Launch Doom: pick an engine, an IWAD and some PWADs, then play",
		Long: `jld manages Doom source port executables, IWADs and PWAD folders,
and launches the selected engine with the chosen files loaded.

Selections are stored in the same config.json the desktop launcher uses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	// Global/persistent flags available to ALL subcommands
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config.json (default is the launcher's config)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.Bool("log-file", false, "Also write logs to the log file")

	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.json", flags.Lookup("log-json"))
	_ = a.v.BindPFlag("logging.to_file", flags.Lookup("log-file"))

	rootCmd.AddCommand(
		newInitCmd(a),
		newMigrateCmd(a),
		newScanCmd(a),
		newPwadsCmd(a),
		newArgsCmd(a),
		newLaunchCmd(a),
		newListCmd(a, executableList),
		newListCmd(a, iwadList),
		newListCmd(a, configFileList),
		newDirCmd(a),
		newPwadCmd(a),
		newParamsCmd(a),
	)
	rootCmd.SetHelpCommand(newHelpCmd(rootCmd))

	return rootCmd
}

// Execute is called by main.main()
func Execute() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup resolves settings (flag > env > settings.yml > default), starts the
// logger and opens the config store.
func (a *app) setup() error {
	dir, err := a.dir()
	if err != nil {
		return err
	}

	a.v.SetFs(a.fs)
	a.v.SetConfigFile(filepath.Join(dir, config.SettingsFile))
	a.v.SetEnvPrefix("JLD")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	defaults := config.DefaultSettings()
	a.v.SetDefault("logging.level", defaults.Logging.Level)

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read settings: %w", err)
		}
	}

	a.settings = defaults
	if err := a.v.Unmarshal(&a.settings); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := a.settings.Validate(); err != nil {
		return err
	}

	if err := logger.Init(a.settings.Logging.Level, a.settings.Logging.JSON, a.settings.Logging.ToFile); err != nil {
		return err
	}
	if a.logs != nil {
		logger.Capture(a.logs)
	}

	path := a.settings.Config
	if path == "" {
		path = filepath.Join(dir, config.ConfigFile)
	}
	a.store = config.NewStore(a.fs, path)

	logger.Debug("settings loaded",
		"config", path,
		"level", a.settings.Logging.Level,
		"to_file", a.settings.Logging.ToFile,
		"json", a.settings.Logging.JSON)
	return nil
}

func (a *app) dir() (string, error) {
	if a.appDir != "" {
		return a.appDir, nil
	}
	return config.AppDir()
}

func (a *app) cache() (*cache.Cache, error) {
	if a.cacheDir != "" {
		return cache.NewAt(a.fs, a.cacheDir)
	}
	return cache.New(a.fs)
}

// loadConfig reads config.json, persisting any migration straight away
func (a *app) loadConfig() (*config.Config, error) {
	cfg, migrated, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	if migrated {
		logger.Info("config migrated", "path", a.store.Path(), "version", cfg.Version)
	}
	return cfg, nil
}

func (a *app) saveConfig(cfg *config.Config) error {
	if err := a.store.Save(cfg); err != nil {
		return err
	}
	logger.Debug("config saved", "path", a.store.Path())
	return nil
}
