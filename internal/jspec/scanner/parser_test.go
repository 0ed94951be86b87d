// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspec-lang/jspec/internal/jspec/term"
)

func mustParse(t *testing.T, doc string) term.Pattern {
	t.Helper()
	p, err := Parse(doc)
	require.Nil(t, err, "parse error: %v", err)
	return p
}

func TestParse_Literals(t *testing.T) {
	assert.Equal(t, "null", mustParse(t, "null").Render())
	assert.Equal(t, "true", mustParse(t, "true").Render())
	assert.Equal(t, "false", mustParse(t, "false").Render())
	assert.Equal(t, "42", mustParse(t, "42").Render())
	assert.Equal(t, "-3", mustParse(t, "-3").Render())
	assert.Equal(t, "3.5", mustParse(t, "3.5").Render())
	assert.Equal(t, "3.0", mustParse(t, "3e0").Render())
	assert.Equal(t, `"\d+"`, mustParse(t, `"\d+"`).Render())
	assert.Equal(t, "*", mustParse(t, "*").Render())
}

func TestParse_Placeholders(t *testing.T) {
	assert.Equal(t, "object", mustParse(t, "object").Render())
	assert.Equal(t, "array", mustParse(t, "array").Render())
	assert.Equal(t, "string", mustParse(t, "string").Render())
	assert.Equal(t, "bool", mustParse(t, "bool").Render())
	assert.Equal(t, "int", mustParse(t, "int").Render())
	assert.Equal(t, "int >= 0", mustParse(t, "int >= 0").Render())
	assert.Equal(t, "real < 5.2", mustParse(t, "real < 5.2").Render())
	assert.Equal(t, "number > 6", mustParse(t, "number > 6").Render())
}

func TestParse_NegationAndMacro(t *testing.T) {
	assert.Equal(t, "!3", mustParse(t, "!3").Render())
	assert.Equal(t, "<ENV_NAME>", mustParse(t, "<ENV_NAME>").Render())
}

func TestParse_Conditional(t *testing.T) {
	assert.Equal(t, "(1 | 3 ^ 4)", mustParse(t, "(1 | 3 ^ 4)").Render())
	assert.Equal(t, "(1)", mustParse(t, "(1)").Render())
}

func TestParse_ObjectAndArray(t *testing.T) {
	assert.Equal(t, `{"id": int >= 0, ...}`, mustParse(t, `{"id": int >= 0, ...}`).Render())
	assert.Equal(t, "[1, (2 | 3)x2-?, 4]", mustParse(t, "[1, (2 | 3)x2-?, 4]").Render())
	assert.Equal(t, "{}", mustParse(t, "{}").Render())
	assert.Equal(t, "[]", mustParse(t, "[]").Render())
}

func TestParse_ArrayCaptureGroupVsConditionalAmbiguity(t *testing.T) {
	// "(1 | 2)" alone is a Conditional Term; with a trailing Mult it is an
	// array capture group instead (spec.md §4.2.2 ArrEntry).
	pat := mustParse(t, "[(1 | 2)]")
	assert.Equal(t, "[(1 | 2)]", pat.Render())

	pat2 := mustParse(t, "[(1 | 2)x2]")
	assert.Equal(t, "[(1 | 2)x2]", pat2.Render())
}

func TestParse_Comments(t *testing.T) {
	doc := `{
		// a leading comment
		"id": int, /* inline */ "name": string
	}`
	p, err := Parse(doc)
	require.Nil(t, err)
	assert.Equal(t, `{"id": int, "name": string}`, p.Render())
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		`{`,
		`[`,
		`"unterminated`,
		`<unterminated`,
		`/* unterminated`,
		`{"a" int}`,
		`[1 2]`,
		`()`,
		`(())`,
		`[x2]`,
		`{"a": int, "a": real}`,
		`[(1)x2, (1)x2]`,
		`@`,
	}
	for _, c := range cases {
		_, err := Parse(c)
		assert.NotNil(t, err, "expected scan error for %q", c)
	}
}

func TestParse_DuplicateCaptureGroupEllipsisEquivalence(t *testing.T) {
	_, err := Parse(`[..., (*)x?]`)
	assert.NotNil(t, err, "... and (*)x? hash identically and must be rejected as duplicates")
}

func TestParse_MultiplierMinExceedsMax(t *testing.T) {
	_, err := Parse(`[(1)x5-2]`)
	assert.NotNil(t, err)
}
