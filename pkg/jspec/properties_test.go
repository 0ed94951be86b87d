// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package jspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspec-lang/jspec/pkg/jspec"
)

// TestProperty_RoundTrip checks parse(render(p)) == p for a representative
// sample of well-formed patterns (spec.md §8 "Round-trip I").
func TestProperty_RoundTrip(t *testing.T) {
	docs := []string{
		`null`, `true`, `false`, `42`, `-3`, `3.5`, `"\d+"`, `*`,
		`object`, `array`, `string`, `bool`, `int >= 0`, `real < 5.2`,
		`!3`, `<ENV>`, `(1 | 3 ^ 4)`,
		`{"id": int >= 0, ...}`, `[1, (2 | 3)x2-?, 4]`,
		`{("k\d": int)x?-3}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			p1, err := jspec.Parse(doc)
			require.NoError(t, err)

			p2, err := jspec.Parse(jspec.Render(p1))
			require.NoError(t, err)

			assert.Equal(t, jspec.Render(p1), jspec.Render(p2))
		})
	}
}

// TestProperty_PrettyIdempotence checks prettyRender(prettyRender(t)) ==
// prettyRender(t) (spec.md §8 "Pretty idempotence").
func TestProperty_PrettyIdempotence(t *testing.T) {
	docs := []string{
		`{"a": 1, "b": [1, 2, 3]}`,
		"{\n  // a comment\n  \"a\": 1\n}",
		`[1, [2, 3], {"x": *}]`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			once, err := jspec.PrettyRender(doc, "  ")
			require.NoError(t, err)
			twice, err := jspec.PrettyRender(once, "  ")
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

// TestProperty_PrettyPreservesSemantics checks check(parse(prettyRender(t)),
// j) == check(parse(t), j) (spec.md §8 "Pretty preserves semantics").
func TestProperty_PrettyPreservesSemantics(t *testing.T) {
	doc := `{"id": int >= 0, "tags": [string, ...]}`
	value, err := jspec.DecodeJSON([]byte(`{"id": 3, "tags": ["a", "b", "c"]}`))
	require.NoError(t, err)

	plain, err := jspec.Parse(doc)
	require.NoError(t, err)
	plainResult, err := jspec.Check(plain, value, nil)
	require.NoError(t, err)

	pretty, err := jspec.PrettyRender(doc, "\t")
	require.NoError(t, err)
	prettyPat, err := jspec.Parse(pretty)
	require.NoError(t, err)
	prettyResult, err := jspec.Check(prettyPat, value, nil)
	require.NoError(t, err)

	assert.Equal(t, plainResult.Ok, prettyResult.Ok)
}

// TestProperty_NegationInvolution checks that match(Negation(Negation(t)), j)
// agrees with match(t, j) for non-placeholder, non-macro terms (spec.md §8
// "Negation involution").
func TestProperty_NegationInvolution(t *testing.T) {
	cases := []struct {
		term  string
		value string
	}{
		{"3", "3"},
		{"3", "4"},
		{`"abc"`, `"abc"`},
		{`"abc"`, `"xyz"`},
		{"[1, 2]", "[1, 2]"},
		{"[1, 2]", "[1, 3]"},
	}
	for _, tc := range cases {
		t.Run(tc.term+"/"+tc.value, func(t *testing.T) {
			base, err := jspec.Parse(tc.term)
			require.NoError(t, err)
			doubleNeg, err := jspec.Parse("!!" + tc.term)
			require.NoError(t, err)

			value, err := jspec.DecodeJSON([]byte(tc.value))
			require.NoError(t, err)

			baseResult, err := jspec.Check(base, value, nil)
			require.NoError(t, err)
			negResult, err := jspec.Check(doubleNeg, value, nil)
			require.NoError(t, err)

			assert.Equal(t, baseResult.Ok, negResult.Ok)
		})
	}
}

// TestProperty_WildcardTotality checks match(Wildcard, j) succeeds for
// every JSON j (spec.md §8 "Wildcard totality").
func TestProperty_WildcardTotality(t *testing.T) {
	pat, err := jspec.Parse("*")
	require.NoError(t, err)

	for _, raw := range []string{"null", "true", "false", "0", "-1.5", `""`, "[]", "{}", `{"a": [1, null, "x"]}`} {
		value, err := jspec.DecodeJSON([]byte(raw))
		require.NoError(t, err)
		result, err := jspec.Check(pat, value, nil)
		require.NoError(t, err)
		assert.True(t, result.Ok, raw)
	}
}

// TestProperty_CaptureBounds checks that a successful match of an array
// capture with multiplicity (m, M) consumes k elements with m <= k <= M
// (spec.md §8 "Capture bounds"), by construction: for each (m, M, k) below
// the surrounding literal pins exactly k elements to the capture, so the
// match's success or failure directly reports whether k fell in range.
func TestProperty_CaptureBounds(t *testing.T) {
	cases := []struct {
		mult   string
		k      int
		wantOk bool
	}{
		{"x2-4", 1, false},
		{"x2-4", 2, true},
		{"x2-4", 4, true},
		{"x2-4", 5, false},
		{"x?-2", 0, true},
		{"x?-2", 3, false},
	}
	for _, tc := range cases {
		doc := `[(0)` + tc.mult + `, 9]`
		pat, err := jspec.Parse(doc)
		require.NoError(t, err)

		arr := "[9]"
		if tc.k > 0 {
			zeros := ""
			for i := 0; i < tc.k; i++ {
				zeros += "0, "
			}
			arr = "[" + zeros + "9]"
		}
		value, err := jspec.DecodeJSON([]byte(arr))
		require.NoError(t, err)

		result, err := jspec.Check(pat, value, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.wantOk, result.Ok, "mult=%s k=%d: %s", tc.mult, tc.k, result.String())
	}
}

// TestProperty_EllipsisEquivalence checks that "..." inside an array is
// semantically equivalent to "(*)x?", and inside an object to
// "(string:*)x?" (spec.md §8 "Ellipsis equivalence").
func TestProperty_EllipsisEquivalence(t *testing.T) {
	arrDocs := []string{`[1, ..., 2]`, `[1, (*)x?, 2]`}
	arrValues := []string{`[1, 2]`, `[1, "x", null, 2]`}
	for _, doc := range arrDocs {
		pat, err := jspec.Parse(doc)
		require.NoError(t, err)
		for _, raw := range arrValues {
			value, err := jspec.DecodeJSON([]byte(raw))
			require.NoError(t, err)
			result, err := jspec.Check(pat, value, nil)
			require.NoError(t, err)
			assert.True(t, result.Ok, "%s vs %s: %s", doc, raw, result.String())
		}
	}

	objDocs := []string{`{"a": 1, ...}`, `{"a": 1, (string: *)x?}`}
	objValues := []string{`{"a": 1}`, `{"a": 1, "b": "x", "c": null}`}
	for _, doc := range objDocs {
		pat, err := jspec.Parse(doc)
		require.NoError(t, err)
		for _, raw := range objValues {
			value, err := jspec.DecodeJSON([]byte(raw))
			require.NoError(t, err)
			result, err := jspec.Check(pat, value, nil)
			require.NoError(t, err)
			assert.True(t, result.Ok, "%s vs %s: %s", doc, raw, result.String())
		}
	}
}
