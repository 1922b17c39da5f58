package launch

import (
	"fmt"
	"sort"
	"strings"
)

// BaseName returns the last element of path. Both / and \ count as
// separators so records written on another OS still label correctly.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// DisplayNames maps every path to a human readable label. A file name used
// by a single path is its own label; file names shared by several paths get
// a " (n)" suffix numbered in the lexical order of the full paths.
func DisplayNames(paths []string) map[string]string {
	byName := make(map[string][]string)
	for _, p := range paths {
		name := BaseName(p)
		byName[name] = append(byName[name], p)
	}

	names := make(map[string]string, len(paths))
	for name, group := range byName {
		group = dedupe(group)
		if len(group) == 1 {
			names[group[0]] = name
			continue
		}
		sort.Strings(group)
		for i, p := range group {
			names[p] = fmt.Sprintf("%s (%d)", name, i+1)
		}
	}
	return names
}

// dedupe drops repeated paths so the same file listed twice does not get two
// numbers for one map key
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
