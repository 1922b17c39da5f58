package launch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFileArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{
			name:  "empty selection",
			paths: nil,
			want:  "",
		},
		{
			name:  "single wad",
			paths: []string{"maps.wad"},
			want:  ` -file "maps.wad"`,
		},
		{
			name:  "wads only",
			paths: []string{"maps.wad", "textures.pk3"},
			want:  ` -file "maps.wad" "textures.pk3"`,
		},
		{
			name:  "patches only",
			paths: []string{"patch.deh", "another.bex", "heretic.hhe"},
			want:  ` -deh "patch.deh" "another.bex" "heretic.hhe"`,
		},
		{
			name:  "edf only",
			paths: []string{"root.edf"},
			want:  ` -edf "root.edf"`,
		},
		{
			name:  "mixed, wad first",
			paths: []string{"maps.wad", "patch.deh", "textures.pk3", "root.edf", "another.bex"},
			want:  ` -file "maps.wad" "textures.pk3" -deh "patch.deh" "another.bex" -edf "root.edf"`,
		},
		{
			name:  "patch selected before archive",
			paths: []string{"bloodcolor.deh", "cblood.pk3"},
			want:  ` -deh "bloodcolor.deh" -file "cblood.pk3"`,
		},
		{
			name:  "edf first",
			paths: []string{"root.edf", "maps.wad", "fix.deh"},
			want:  ` -edf "root.edf" -file "maps.wad" -deh "fix.deh"`,
		},
		{
			name:  "paths with spaces stay quoted",
			paths: []string{"/home/me/My Wads/scythe 2.wad"},
			want:  ` -file "/home/me/My Wads/scythe 2.wad"`,
		},
		{
			name:  "unknown extension goes under file",
			paths: []string{"readme.txt"},
			want:  ` -file "readme.txt"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BuildFileArgs(tt.paths))
		})
	}
}

func TestBuildFileArgs_GroupOrder(t *testing.T) {
	t.Parallel()

	result := BuildFileArgs([]string{"maps.wad", "patch.deh", "textures.pk3", "root.edf", "another.bex"})

	filePos := strings.Index(result, "-file")
	dehPos := strings.Index(result, "-deh")
	edfPos := strings.Index(result, "-edf")
	require.NotEqual(t, -1, filePos)
	require.NotEqual(t, -1, dehPos)
	require.NotEqual(t, -1, edfPos)
	assert.Less(t, filePos, dehPos)
	assert.Less(t, dehPos, edfPos)

	assert.Contains(t, result, `-file "maps.wad" "textures.pk3"`)
	assert.Contains(t, result, `-deh "patch.deh" "another.bex"`)
	assert.Contains(t, result, `-edf "root.edf"`)
}

func TestBuildFileArgs_FlagsAppearOnce(t *testing.T) {
	t.Parallel()

	result := BuildFileArgs([]string{"a.wad", "b.deh", "c.wad", "d.deh", "e.wad"})

	assert.Equal(t, 1, strings.Count(result, "-file"))
	assert.Equal(t, 1, strings.Count(result, "-deh"))
	assert.NotContains(t, result, "-edf")
}

func TestBuildCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "executable only",
			opts: Options{Executable: "/usr/bin/gzdoom"},
			want: `"/usr/bin/gzdoom"`,
		},
		{
			name: "executable and iwad",
			opts: Options{Executable: "/usr/bin/gzdoom", IWAD: "/doom/doom2.wad"},
			want: `"/usr/bin/gzdoom" -iwad "/doom/doom2.wad"`,
		},
		{
			name: "everything",
			opts: Options{
				Executable:   `C:\Games\dsda-doom.exe`,
				IWAD:         `C:\Games\DOOM2.WAD`,
				Files:        []string{`C:\Wads\sunlust.wad`, `C:\Wads\fix.deh`},
				ConfigFile:   `C:\Games\dsda.cfg`,
				CustomParams: "  -skill 4 -warp 01  ",
			},
			want: `"C:\Games\dsda-doom.exe" -iwad "C:\Games\DOOM2.WAD"` +
				` -file "C:\Wads\sunlust.wad" -deh "C:\Wads\fix.deh"` +
				` -config "C:\Games\dsda.cfg" -skill 4 -warp 01`,
		},
		{
			name: "blank params are dropped",
			opts: Options{Executable: "chocolate-doom", CustomParams: "   "},
			want: `"chocolate-doom"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := BuildCommand(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildCommand_NoExecutable(t *testing.T) {
	t.Parallel()

	_, err := BuildCommand(Options{IWAD: "/doom/doom.wad"})
	require.ErrorIs(t, err, ErrNoExecutable)
}
