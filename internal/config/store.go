package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/justlaunchdoom/jld/internal/config/migrate"
	"github.com/justlaunchdoom/jld/internal/logger"
	"github.com/spf13/afero"
)

const (
	// AppName is the directory name shared with earlier launcher releases
	AppName = "just_launch_doom"

	ConfigFile   = "config.json"
	SettingsFile = "settings.yml"
)

// ErrMalformed is returned when the config file is not a JSON object
var ErrMalformed = errors.New("malformed config file")

// AppDir returns the per-user application directory. The locations match
// earlier releases so existing config files are picked up.
func AppDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", errors.New("APPDATA is not set")
		}
		return filepath.Join(appData, AppName), nil
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(homeDir, "Library", "Application Support", AppName), nil
	default:
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(homeDir, "."+AppName), nil
	}
}

// DefaultPath returns the default location of config.json
func DefaultPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Store reads and writes the config record
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store for the config file at path
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the config file location
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the config file is present
func (s *Store) Exists() bool {
	ok, err := afero.Exists(s.fs, s.path)
	return err == nil && ok
}

// LoadRecord reads the config file as an untyped record, without migrating
// it.
func (s *Store) LoadRecord() (migrate.Record, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rec migrate.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, s.path, err)
	}
	if rec == nil {
		// a file containing just "null"
		rec = migrate.Record{}
	}
	return rec, nil
}

// Load reads, migrates and decodes the config file. A missing file is
// created with defaults. Values of the wrong type are replaced by their
// defaults rather than failing the load. If migration, defaulting or that
// reset changed the record it is saved straight away, and migrated is true.
func (s *Store) Load() (cfg *Config, migrated bool, err error) {
	if !s.Exists() {
		cfg = Defaults()
		if err := s.Save(cfg); err != nil {
			return nil, false, err
		}
		return cfg, false, nil
	}

	raw, err := s.LoadRecord()
	if err != nil {
		return nil, false, err
	}

	rec := migrate.Migrate(raw)
	ApplyDefaults(rec)
	for _, key := range Sanitize(rec) {
		logger.Warn("config value has the wrong type, using default", "key", key, "path", s.path)
	}

	cfg, err = Decode(rec)
	if err != nil {
		return nil, false, err
	}

	if cfg.Version > migrate.SchemaVersion {
		logger.Warn("config was written by a newer version", "version", cfg.Version, "supported", migrate.SchemaVersion)
	}

	if migrate.Changed(raw, rec) {
		if err := s.Save(cfg); err != nil {
			return nil, false, err
		}
		return cfg, true, nil
	}
	return cfg, false, nil
}

// Save writes cfg to disk, replacing the previous file atomically
func (s *Store) Save(cfg *Config) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// Marshal renders cfg the way it is stored on disk: a JSON object with
// sorted keys and four-space indentation.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Encode(cfg)); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
