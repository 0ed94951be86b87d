// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package matcher

// Lookup resolves a macro name to its raw JSON text, reporting whether the
// name is bound at all (spec.md §4.3). Callers supply their own Lookup —
// the CLI passes an environment-variable-backed one (see internal/config),
// tests commonly use a plain map, and a nil Lookup makes every macro fail
// as not found.
type Lookup func(name string) (raw string, ok bool)

// MapLookup adapts a plain map to Lookup, for tests and small embedders.
func MapLookup(m map[string]string) Lookup {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func matchMacro(loc Location, name string, value any, lookup Lookup, progress Progress) Result {
	if lookup == nil {
		return Fail(loc, progress, "macro %q not found", name)
	}
	raw, ok := lookup(name)
	if !ok {
		return Fail(loc, progress, "macro %q not found", name)
	}
	decoded, err := DecodeJSON([]byte(raw))
	if err != nil {
		return Fail(loc, progress, "macro %q parse failure: %s", name, err)
	}
	if !jsonEqual(decoded, value) {
		return Fail(loc, progress, "value does not equal macro %q", name)
	}
	return Success()
}
