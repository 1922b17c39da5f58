package launch

import (
	"errors"
	"strings"
)

// ErrNoExecutable is returned when a command is built without an engine
var ErrNoExecutable = errors.New("no executable selected")

// BuildFileArgs returns the content-file part of a launch command for the
// given paths, e.g. ` -file "maps.wad" "tex.pk3" -deh "fix.deh"`.
//
// Paths keep their relative order inside a flag group, and the groups are
// emitted in the order their first member appears in paths. The result
// starts with a space so it can be appended to a command directly. An empty
// list yields an empty string.
func BuildFileArgs(paths []string) string {
	var order []Flag
	groups := make(map[Flag][]string)

	for _, p := range paths {
		flag := Classify(p)
		if _, seen := groups[flag]; !seen {
			order = append(order, flag)
		}
		groups[flag] = append(groups[flag], p)
	}

	var b strings.Builder
	for _, flag := range order {
		b.WriteString(" ")
		b.WriteString(string(flag))
		for _, p := range groups[flag] {
			b.WriteString(" ")
			b.WriteString(quote(p))
		}
	}
	return b.String()
}

// Options describes everything that goes into a launch command
type Options struct {
	Executable   string
	IWAD         string
	Files        []string
	ConfigFile   string
	CustomParams string
}

// BuildCommand assembles the full command line for opts:
//
//	"<exe>" -iwad "<iwad>" <file args> -config "<cfg>" <custom params>
//
// Empty optional parts are left out.
func BuildCommand(opts Options) (string, error) {
	if opts.Executable == "" {
		return "", ErrNoExecutable
	}

	var b strings.Builder
	b.WriteString(quote(opts.Executable))

	if opts.IWAD != "" {
		b.WriteString(" -iwad ")
		b.WriteString(quote(opts.IWAD))
	}

	b.WriteString(BuildFileArgs(opts.Files))

	if opts.ConfigFile != "" {
		b.WriteString(" -config ")
		b.WriteString(quote(opts.ConfigFile))
	}

	if params := strings.TrimSpace(opts.CustomParams); params != "" {
		b.WriteString(" ")
		b.WriteString(params)
	}

	return b.String(), nil
}

func quote(s string) string {
	return `"` + s + `"`
}
