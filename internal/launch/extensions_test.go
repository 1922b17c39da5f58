package launch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		exts []string
		want bool
	}{
		{"wad", "test.wad", WADExtensions, true},
		{"pk3", "test.pk3", WADExtensions, true},
		{"lmp", "test.lmp", WADExtensions, true},
		{"deh is not wad", "test.deh", WADExtensions, false},
		{"bex is not wad", "test.bex", WADExtensions, false},
		{"edf is not wad", "test.edf", WADExtensions, false},
		{"deh", "patch.deh", DEHExtensions, true},
		{"bex", "patch.bex", DEHExtensions, true},
		{"hhe", "patch.hhe", DEHExtensions, true},
		{"wad is not deh", "test.wad", DEHExtensions, false},
		{"edf", "root.edf", EDFExtensions, true},
		{"deh is not edf", "test.deh", EDFExtensions, false},
		{"upper case wad", "TEST.WAD", WADExtensions, true},
		{"upper case deh", "PATCH.DEH", DEHExtensions, true},
		{"mixed case bex", "Patch.BEX", DEHExtensions, true},
		{"upper case edf", "ROOT.EDF", EDFExtensions, true},
		{"no extension", "README", WADExtensions, false},
		{"empty path", "", WADExtensions, false},
		{"extension only in directory", "/maps.wad/readme.txt", WADExtensions, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HasExtension(tt.path, tt.exts))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Flag
	}{
		{"maps.wad", FlagFile},
		{"TEST.WAD", FlagFile},
		{"textures.pk3", FlagFile},
		{"music.mus", FlagFile},
		{"demo.lmp", FlagFile},
		{"unknown.zip", FlagFile},
		{"noext", FlagFile},
		{"patch.deh", FlagDeh},
		{"Patch.BEX", FlagDeh},
		{"heretic.hhe", FlagDeh},
		{"root.edf", FlagEdf},
		{"/games/doom/ROOT.EDF", FlagEdf},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestExtensionSetsAreDisjoint(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	sets := map[string][]string{
		"wad": WADExtensions,
		"deh": DEHExtensions,
		"edf": EDFExtensions,
	}
	for set, exts := range sets {
		for _, ext := range exts {
			other, dup := seen[ext]
			assert.False(t, dup, "%s is in both %s and %s", ext, set, other)
			seen[ext] = set
		}
	}
}

func TestIsLoadable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsLoadable("/doom/sigil.wad"))
	assert.True(t, IsLoadable("/doom/dehacked.BEX"))
	assert.True(t, IsLoadable("/eternity/root.edf"))
	assert.False(t, IsLoadable("/doom/sigil.txt"))
	assert.False(t, IsLoadable("/doom/screenshot.png"))
}
