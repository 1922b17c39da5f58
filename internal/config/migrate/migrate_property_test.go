package migrate

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

// jsonValue draws values of the kinds a JSON decoder produces
func jsonValue() *rapid.Generator[any] {
	path := rapid.SampledFrom([]string{"", "/doom.wad", "/doom2.wad", "/usr/bin/gzdoom", "/a/b"})
	return rapid.OneOf(
		rapid.Just[any](nil),
		rapid.Map(path, func(s string) any { return s }),
		rapid.Map(rapid.Bool(), func(b bool) any { return b }),
		rapid.Map(rapid.Float64Range(-10, 10), func(f float64) any { return f }),
		rapid.Map(rapid.SliceOfN(path, 0, 4), func(ss []string) any {
			out := make([]any, len(ss))
			for i, s := range ss {
				out[i] = s
			}
			return out
		}),
	)
}

func recordGen() *rapid.Generator[Record] {
	keys := []string{
		KeyDoomExecutables, KeySelectedExecutable, KeyIWADs, KeySelectedIWAD,
		KeyPwadDirectories, KeySelectedPwads, KeyVersion,
		KeyLegacyGZDoomFilepath, KeyLegacyIWADFilepath, KeyLegacyIWADPath, KeyLegacyPwadPath,
		"theme", "custom_params",
	}
	return rapid.Custom(func(t *rapid.T) Record {
		rec := Record{}
		for _, k := range keys {
			if rapid.Bool().Draw(t, "has_"+k) {
				rec[k] = jsonValue().Draw(t, k)
			}
		}
		return rec
	})
}

// TestPropertyMigrateIdempotent verifies migrating twice equals migrating once.
func TestPropertyMigrateIdempotent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		rec := recordGen().Draw(t, "record")

		once := Migrate(rec)
		twice := Migrate(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("not idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
		}
	})
}

// TestPropertyMigrateRemovesLegacyKeys verifies no retired key survives.
func TestPropertyMigrateRemovesLegacyKeys(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		rec := recordGen().Draw(t, "record")

		got := Migrate(rec)
		for _, k := range LegacyKeys {
			if _, ok := got[k]; ok {
				t.Fatalf("legacy key %q survived migration: %#v", k, got)
			}
		}
	})
}

// TestPropertyMigrateNoDuplicatesAdded verifies migration never introduces
// a duplicate into a list that had none.
func TestPropertyMigrateNoDuplicatesAdded(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		rec := recordGen().Draw(t, "record")

		got := Migrate(rec)
		for _, k := range []string{KeyDoomExecutables, KeyIWADs} {
			before := countDuplicates(normalizeList(rec[k]))
			after := countDuplicates(got[k].([]any))
			if after > before {
				t.Fatalf("%s gained duplicates: %#v -> %#v", k, rec[k], got[k])
			}
		}
	})
}

// TestPropertyMigrateKeepsExistingEntries verifies entries already in the
// plural lists are preserved in order.
func TestPropertyMigrateKeepsExistingEntries(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		rec := recordGen().Draw(t, "record")

		got := Migrate(rec)
		for _, k := range []string{KeyDoomExecutables, KeyIWADs} {
			before := normalizeList(rec[k])
			after := got[k].([]any)
			if len(after) < len(before) || !reflect.DeepEqual(before, after[:len(before)]) {
				t.Fatalf("%s lost entries: %#v -> %#v", k, rec[k], got[k])
			}
		}
	})
}

func countDuplicates(list []any) int {
	seen := map[string]bool{}
	dups := 0
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if seen[s] {
			dups++
		}
		seen[s] = true
	}
	return dups
}
