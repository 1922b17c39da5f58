// Package migrate upgrades persisted launcher records to the current schema.
//
// It works on the untyped JSON form of the record so that files written by
// any earlier version, including ones with keys of the wrong type, can be
// read. Every pass is total: odd values are treated as having nothing to
// migrate, never as an error.
package migrate

import "reflect"

// SchemaVersion is the record layout produced by Migrate
const SchemaVersion = 2

// Record is a configuration record as decoded from JSON
type Record = map[string]any

const (
	KeyVersion            = "config_version"
	KeyDoomExecutables    = "doom_executables"
	KeySelectedExecutable = "selected_executable"
	KeyIWADs              = "iwads"
	KeySelectedIWAD       = "selected_iwad"
	KeyPwadDirectories    = "pwad_directories"
	KeySelectedPwads      = "selected_pwads"

	// retired keys
	KeyLegacyGZDoomFilepath = "gzdoom_filepath"
	KeyLegacyIWADFilepath   = "iwad_filepath"
	KeyLegacyIWADPath       = "iwad_path"
	KeyLegacyPwadPath       = "pwad_path"
)

// LegacyKeys lists every key Migrate removes
var LegacyKeys = []string{
	KeyLegacyGZDoomFilepath,
	KeyLegacyIWADFilepath,
	KeyLegacyIWADPath,
	KeyLegacyPwadPath,
}

// Pass is a single in-place migration step
type Pass func(rec Record)

// Passes are applied in order by Migrate
var Passes = []Pass{
	Executables,
	IWADs,
	PwadDirectories,
}

// Migrate returns a copy of rec upgraded to SchemaVersion, or left at its
// stored version when that is newer. rec itself is not
// modified. A nil rec is treated as empty.
func Migrate(rec Record) Record {
	out := clone(rec)
	for _, pass := range Passes {
		pass(out)
	}
	// stored as float64 so a record read back from JSON compares equal.
	// A record from a newer release keeps its version.
	if v, ok := out[KeyVersion].(float64); !ok || v <= SchemaVersion {
		out[KeyVersion] = float64(SchemaVersion)
	}
	return out
}

// Changed reports whether two records differ
func Changed(before, after Record) bool {
	return !reflect.DeepEqual(before, after)
}

// Executables folds the single gzdoom_filepath of old records into the
// doom_executables list.
func Executables(rec Record) {
	rec[KeyDoomExecutables] = normalizeList(rec[KeyDoomExecutables])

	legacy, present := rec[KeyLegacyGZDoomFilepath]
	if !present {
		return
	}
	delete(rec, KeyLegacyGZDoomFilepath)

	if path, ok := legacy.(string); ok && path != "" {
		rec[KeyDoomExecutables] = appendUnique(rec[KeyDoomExecutables].([]any), path)
	}
}

// IWADs folds iwad_filepath into the iwads list and makes it the selected
// IWAD, replacing any earlier selection. iwad_path is dropped unmigrated.
func IWADs(rec Record) {
	rec[KeyIWADs] = normalizeList(rec[KeyIWADs])
	if rec[KeySelectedIWAD] == nil {
		rec[KeySelectedIWAD] = ""
	}

	if legacy, present := rec[KeyLegacyIWADFilepath]; present {
		delete(rec, KeyLegacyIWADFilepath)

		if path, ok := legacy.(string); ok && path != "" {
			rec[KeyIWADs] = appendUnique(rec[KeyIWADs].([]any), path)
			rec[KeySelectedIWAD] = path
		}
	}

	delete(rec, KeyLegacyIWADPath)
}

// PwadDirectories drops the single pwad_path of old records. Directory
// scanning replaced it and its value is not carried over.
func PwadDirectories(rec Record) {
	delete(rec, KeyLegacyPwadPath)
}

// normalizeList coerces a plural key's value to a list. Existing lists are
// kept as they are, including non-string elements.
func normalizeList(v any) []any {
	switch v := v.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case string:
		if v == "" {
			return []any{}
		}
		return []any{v}
	default:
		return []any{}
	}
}

func appendUnique(list []any, path string) []any {
	for _, v := range list {
		if s, ok := v.(string); ok && s == path {
			return list
		}
	}
	return append(list, path)
}

// clone copies rec deeply enough that passes can append to its lists
// without touching the caller's slices.
func clone(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		if list, ok := v.([]any); ok {
			cp := make([]any, len(list))
			copy(cp, list)
			v = cp
		}
		out[k] = v
	}
	return out
}
