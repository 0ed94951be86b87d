// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package matcher

import (
	"regexp"
	"sync"
)

// regexCache compiles each String term's regex source exactly once and
// reuses it across every match call against that pattern tree, the same
// compile-once-cache-by-source shape used for glob patterns elsewhere in
// this stack. A package-level sync.Map is safe for the concurrent match
// calls spec.md §5 allows on disjoint inputs.
var regexCache sync.Map // map[string]*regexp.Regexp

// fullmatch reports whether s matches pat over its entire length — the
// String term semantics of spec.md §4.3, analogous to Python's
// re.fullmatch. The pattern is anchored with \A...\z regardless of any (?m)
// flag the pattern source itself sets.
func fullmatch(pat, s string) (bool, error) {
	re, err := compiledRegex(pat)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

func compiledRegex(pat string) (*regexp.Regexp, error) {
	if v, ok := regexCache.Load(pat); ok {
		return v.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(`\A(?:` + pat + `)\z`)
	if err != nil {
		return nil, err
	}
	actual, _ := regexCache.LoadOrStore(pat, re)
	return actual.(*regexp.Regexp), nil
}
