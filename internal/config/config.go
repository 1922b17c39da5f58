package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/justlaunchdoom/jld/internal/config/migrate"
)

// Config is the launcher state persisted between runs
type Config struct {
	Version               int      `mapstructure:"config_version"`
	Resolution            []int    `mapstructure:"resolution"`
	DoomExecutables       []string `mapstructure:"doom_executables"`
	SelectedExecutable    string   `mapstructure:"selected_executable"`
	IWADs                 []string `mapstructure:"iwads"`
	SelectedIWAD          string   `mapstructure:"selected_iwad"`
	PwadDirectories       []string `mapstructure:"pwad_directories"`
	SelectedPwads         []string `mapstructure:"selected_pwads"`
	ConfigFiles           []string `mapstructure:"config_files"`
	SelectedConfig        string   `mapstructure:"selected_config"`
	CustomParams          string   `mapstructure:"custom_params"`
	Theme                 string   `mapstructure:"theme"`
	FontSize              float64  `mapstructure:"font_size"`
	SDLRenderer           string   `mapstructure:"sdl_renderer"`
	GroupPwadsByDirectory bool     `mapstructure:"group_pwads_by_directory"`

	// Extra holds keys this version does not know about. They are written
	// back untouched.
	Extra map[string]any `mapstructure:",remain"`
}

// Defaults returns the record written when no config file exists yet
func Defaults() *Config {
	return &Config{
		Version:               migrate.SchemaVersion,
		Resolution:            []int{DefaultWidth, DefaultHeight},
		DoomExecutables:       []string{},
		IWADs:                 []string{},
		PwadDirectories:       []string{},
		SelectedPwads:         []string{},
		ConfigFiles:           []string{},
		Theme:                 "fire",
		FontSize:              1.0,
		SDLRenderer:           "auto",
		GroupPwadsByDirectory: true,
	}
}

// ApplyDefaults fills keys that are missing or null in rec with the values
// from Defaults. Keys already present are left alone.
func ApplyDefaults(rec migrate.Record) {
	for k, v := range Encode(Defaults()) {
		if cur, ok := rec[k]; !ok || cur == nil {
			rec[k] = v
		}
	}
}

// Decode converts an untyped record into a Config. Scalars are converted
// loosely (a number where a string is expected becomes its text), but a
// structurally wrong value such as an object in place of a list is an error.
func Decode(rec migrate.Record) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(rec); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	ensureLists(&cfg)
	cfg.Resolution = normalizeResolution(cfg.Resolution)
	return &cfg, nil
}

// Encode converts cfg back into an untyped record ready to be written
func Encode(cfg *Config) migrate.Record {
	rec := make(migrate.Record, len(cfg.Extra)+15)
	for k, v := range cfg.Extra {
		rec[k] = v
	}

	rec[migrate.KeyVersion] = cfg.Version
	rec["resolution"] = orEmptyInts(cfg.Resolution)
	rec[migrate.KeyDoomExecutables] = orEmpty(cfg.DoomExecutables)
	rec[migrate.KeySelectedExecutable] = cfg.SelectedExecutable
	rec[migrate.KeyIWADs] = orEmpty(cfg.IWADs)
	rec[migrate.KeySelectedIWAD] = cfg.SelectedIWAD
	rec[migrate.KeyPwadDirectories] = orEmpty(cfg.PwadDirectories)
	rec[migrate.KeySelectedPwads] = orEmpty(cfg.SelectedPwads)
	rec["config_files"] = orEmpty(cfg.ConfigFiles)
	rec["selected_config"] = cfg.SelectedConfig
	rec["custom_params"] = cfg.CustomParams
	rec["theme"] = cfg.Theme
	rec["font_size"] = cfg.FontSize
	rec["sdl_renderer"] = cfg.SDLRenderer
	rec["group_pwads_by_directory"] = cfg.GroupPwadsByDirectory
	return rec
}

// Width returns the stored window width
func (c *Config) Width() int {
	return normalizeResolution(c.Resolution)[0]
}

// Height returns the stored window height
func (c *Config) Height() int {
	return normalizeResolution(c.Resolution)[1]
}

// SetResolution stores a window size, falling back to defaults for
// dimensions below the minimum.
func (c *Config) SetResolution(width, height int) {
	ApplyWindowSizeDefaults(&width, &height)
	c.Resolution = []int{width, height}
}

func ensureLists(cfg *Config) {
	cfg.DoomExecutables = orEmpty(cfg.DoomExecutables)
	cfg.IWADs = orEmpty(cfg.IWADs)
	cfg.PwadDirectories = orEmpty(cfg.PwadDirectories)
	cfg.SelectedPwads = orEmpty(cfg.SelectedPwads)
	cfg.ConfigFiles = orEmpty(cfg.ConfigFiles)
}

func normalizeResolution(res []int) []int {
	if len(res) != 2 {
		return []int{DefaultWidth, DefaultHeight}
	}
	w, h := res[0], res[1]
	ApplyWindowSizeDefaults(&w, &h)
	return []int{w, h}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func orEmptyInts(list []int) []int {
	if list == nil {
		return []int{}
	}
	return list
}
