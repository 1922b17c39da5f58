package config

import (
	"testing"

	"github.com/justlaunchdoom/jld/internal/config/migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	rec := migrate.Record{
		"config_version":           2.0,
		"resolution":               []any{1366.0, 768.0},
		"doom_executables":         []any{"/usr/bin/gzdoom", "/usr/bin/dsda-doom"},
		"selected_executable":      "/usr/bin/gzdoom",
		"iwads":                    []any{"/doom/doom2.wad"},
		"selected_iwad":            "/doom/doom2.wad",
		"pwad_directories":         []any{"/doom/pwads"},
		"selected_pwads":           []any{"/doom/pwads/sigil.wad"},
		"config_files":             []any{},
		"selected_config":          "",
		"custom_params":            "-skill 4",
		"theme":                    "dark",
		"font_size":                1.5,
		"sdl_renderer":             "opengl",
		"group_pwads_by_directory": false,
	}

	cfg, err := Decode(rec)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Version)
	assert.Equal(t, []int{1366, 768}, cfg.Resolution)
	assert.Equal(t, []string{"/usr/bin/gzdoom", "/usr/bin/dsda-doom"}, cfg.DoomExecutables)
	assert.Equal(t, "/usr/bin/gzdoom", cfg.SelectedExecutable)
	assert.Equal(t, []string{"/doom/doom2.wad"}, cfg.IWADs)
	assert.Equal(t, "/doom/doom2.wad", cfg.SelectedIWAD)
	assert.Equal(t, []string{"/doom/pwads"}, cfg.PwadDirectories)
	assert.Equal(t, []string{"/doom/pwads/sigil.wad"}, cfg.SelectedPwads)
	assert.Equal(t, []string{}, cfg.ConfigFiles)
	assert.Equal(t, "-skill 4", cfg.CustomParams)
	assert.Equal(t, "dark", cfg.Theme)
	assert.InDelta(t, 1.5, cfg.FontSize, 0.0001)
	assert.Equal(t, "opengl", cfg.SDLRenderer)
	assert.False(t, cfg.GroupPwadsByDirectory)
	assert.Empty(t, cfg.Extra)
}

func TestDecode_KeepsUnknownKeys(t *testing.T) {
	t.Parallel()

	rec := migrate.Record{
		"theme":          "fire",
		"favourite_map":  "MAP07",
		"window_pos":     []any{10.0, 20.0},
		"future_setting": map[string]any{"enabled": true},
	}

	cfg, err := Decode(rec)
	require.NoError(t, err)

	assert.Equal(t, "MAP07", cfg.Extra["favourite_map"])
	assert.Equal(t, []any{10.0, 20.0}, cfg.Extra["window_pos"])

	out := Encode(cfg)
	assert.Equal(t, "MAP07", out["favourite_map"])
	assert.Equal(t, map[string]any{"enabled": true}, out["future_setting"])
	assert.Equal(t, "fire", out["theme"])
}

func TestDecode_LooseScalars(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(migrate.Record{
		"custom_params": 42.0,
		"font_size":     "2",
	})
	require.NoError(t, err)

	assert.Equal(t, "42", cfg.CustomParams)
	assert.InDelta(t, 2.0, cfg.FontSize, 0.0001)
}

func TestDecode_WrongShapeIsAnError(t *testing.T) {
	t.Parallel()

	_, err := Decode(migrate.Record{
		"iwads": map[string]any{"doom": "/doom.wad"},
	})
	require.Error(t, err)
}

func TestDecode_BadResolutionFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  any
		want []int
	}{
		{"too small", []any{100.0, 50.0}, []int{800, 600}},
		{"wrong length", []any{1024.0}, []int{800, 600}},
		{"missing", nil, []int{800, 600}},
		{"valid", []any{1280.0, 720.0}, []int{1280, 720}},
		{"narrow only", []any{300.0, 720.0}, []int{800, 720}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Decode(migrate.Record{"resolution": tt.res})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Resolution)
			assert.Equal(t, tt.want[0], cfg.Width())
			assert.Equal(t, tt.want[1], cfg.Height())
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	rec := migrate.Record{
		"theme":        "dark",
		"sdl_renderer": nil,
	}
	ApplyDefaults(rec)

	assert.Equal(t, "dark", rec["theme"])
	assert.Equal(t, "auto", rec["sdl_renderer"])
	assert.Equal(t, true, rec["group_pwads_by_directory"])
	assert.Equal(t, []int{800, 600}, rec["resolution"])
	assert.Equal(t, []string{}, rec["config_files"])
	assert.Equal(t, "", rec["custom_params"])
}

func TestApplyDefaults_KeepsFalse(t *testing.T) {
	t.Parallel()

	rec := migrate.Record{"group_pwads_by_directory": false}
	ApplyDefaults(rec)

	assert.Equal(t, false, rec["group_pwads_by_directory"])
}

func TestEncode_NoNullLists(t *testing.T) {
	t.Parallel()

	rec := Encode(&Config{})

	for _, k := range []string{"doom_executables", "iwads", "pwad_directories", "selected_pwads", "config_files"} {
		assert.Equal(t, []string{}, rec[k], k)
	}
}

func TestSetResolution(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.SetResolution(1920, 1080)
	assert.Equal(t, []int{1920, 1080}, cfg.Resolution)

	cfg.SetResolution(100, 50)
	assert.Equal(t, []int{800, 600}, cfg.Resolution)
}

func TestValidateWindowSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width, height int
		want          bool
	}{
		{800, 600, true},
		{1920, 1080, true},
		{400, 300, true},
		{4096, 4096, true},
		{399, 300, false},
		{400, 299, false},
		{4097, 4096, false},
		{4096, 4097, false},
		{0, 0, false},
		{-100, -100, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateWindowSize(tt.width, tt.height), "%dx%d", tt.width, tt.height)
	}
}

func TestApplyWindowSizeDefaults(t *testing.T) {
	t.Parallel()

	width, height := 100, 50
	ApplyWindowSizeDefaults(&width, &height)
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)

	width, height = 1024, 768
	ApplyWindowSizeDefaults(&width, &height)
	assert.Equal(t, 1024, width)
	assert.Equal(t, 768, height)
}
