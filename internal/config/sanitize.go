package config

import (
	"slices"
	"strconv"

	"github.com/justlaunchdoom/jld/internal/config/migrate"
)

// listKeys hold path lists. Elements that are not strings are dropped.
var listKeys = []string{
	migrate.KeyDoomExecutables,
	migrate.KeyIWADs,
	migrate.KeyPwadDirectories,
	migrate.KeySelectedPwads,
	"config_files",
}

type kind int

const (
	kindString kind = iota
	kindFloat
	kindInt
	kindBool
	kindInts
	kindList
)

var keyKinds = map[string]kind{
	migrate.KeyVersion:            kindInt,
	"resolution":                  kindInts,
	migrate.KeySelectedExecutable: kindString,
	migrate.KeySelectedIWAD:       kindString,
	"selected_config":             kindString,
	"custom_params":               kindString,
	"theme":                       kindString,
	"sdl_renderer":                kindString,
	"font_size":                   kindFloat,
	"group_pwads_by_directory":    kindBool,
}

func init() {
	for _, k := range listKeys {
		keyKinds[k] = kindList
	}
}

// Sanitize makes rec decodable. Known keys whose value cannot be converted
// to the field type are reset to their default, and non-string elements are
// removed from path lists. It returns the keys that were reset, sorted.
// Unknown keys are left alone.
func Sanitize(rec migrate.Record) []string {
	defaults := Encode(Defaults())

	var reset []string
	for key, k := range keyKinds {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		if k == kindList {
			switch list := v.(type) {
			case []string:
				continue
			case []any:
				rec[key] = stringsOnly(list)
				continue
			}
		} else if convertible(k, v) {
			continue
		}
		rec[key] = defaults[key]
		reset = append(reset, key)
	}

	slices.Sort(reset)
	return reset
}

// convertible mirrors the weak conversions Decode accepts
func convertible(k kind, v any) bool {
	switch k {
	case kindString:
		switch v.(type) {
		case string, float64, int, bool:
			return true
		}
	case kindFloat:
		switch v := v.(type) {
		case float64, int, bool:
			return true
		case string:
			_, err := strconv.ParseFloat(v, 64)
			return err == nil || v == ""
		}
	case kindInt:
		switch v := v.(type) {
		case float64, int, bool:
			return true
		case string:
			_, err := strconv.ParseInt(v, 0, 0)
			return err == nil || v == ""
		}
	case kindBool:
		switch v := v.(type) {
		case bool, float64, int:
			return true
		case string:
			_, err := strconv.ParseBool(v)
			return err == nil || v == ""
		}
	case kindInts:
		switch v := v.(type) {
		case []int:
			return true
		case []any:
			for _, e := range v {
				switch e.(type) {
				case float64, int:
				default:
					return false
				}
			}
			return true
		}
	}
	return false
}

func stringsOnly(list []any) []any {
	out := make([]any, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
