package launch

import "strings"

// Flag is the command-line flag a content file is passed under
type Flag string

const (
	FlagFile Flag = "-file"
	FlagDeh  Flag = "-deh"
	FlagEdf  Flag = "-edf"
)

var (
	// WADExtensions are content archives passed with -file
	WADExtensions = []string{
		".wad", ".iwad", ".pwad", ".kpf", ".pk3", ".pk4", ".pk7",
		".pke", ".lmp", ".mus", ".doom",
	}
	// DEHExtensions are behaviour patches passed with -deh
	DEHExtensions = []string{".deh", ".bex", ".hhe"}
	// EDFExtensions are extended definition files passed with -edf
	EDFExtensions = []string{".edf"}
)

// HasExtension reports whether path ends with one of exts, ignoring case.
// exts must be lower case.
func HasExtension(path string, exts []string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Classify returns the flag a path is launched with. DEH-like extensions are
// checked first, then EDF; anything else goes under -file.
func Classify(path string) Flag {
	switch {
	case HasExtension(path, DEHExtensions):
		return FlagDeh
	case HasExtension(path, EDFExtensions):
		return FlagEdf
	default:
		return FlagFile
	}
}

// IsLoadable reports whether path has an extension the engine can load
func IsLoadable(path string) bool {
	return HasExtension(path, WADExtensions) ||
		HasExtension(path, DEHExtensions) ||
		HasExtension(path, EDFExtensions)
}
