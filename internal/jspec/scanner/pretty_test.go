// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyRender_RejectsBadIndent(t *testing.T) {
	_, err := PrettyRender(`{"a": 1}`, "-")
	require.Error(t, err)
	var ie *IndentError
	assert.ErrorAs(t, err, &ie)
}

func TestPrettyRender_BasicObject(t *testing.T) {
	out, err := PrettyRender(`{"a": 1, "b": 2}`, "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", out)
}

func TestPrettyRender_EmptyContainersStayInline(t *testing.T) {
	out, err := PrettyRender(`{"a": {}, "b": []}`, "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {},\n  \"b\": []\n}", out)
}

func TestPrettyRender_PreservesComments(t *testing.T) {
	doc := "{\n  // keep me\n  \"a\": 1\n}"
	out, err := PrettyRender(doc, "  ")
	require.NoError(t, err)
	assert.Contains(t, out, "// keep me")
	assert.Contains(t, out, `"a": 1`)
}

func TestPrettyRender_Idempotent(t *testing.T) {
	doc := `{"a": 1, "b": [1, 2, 3]}`
	once, err := PrettyRender(doc, "  ")
	require.NoError(t, err)
	twice, err := PrettyRender(once, "  ")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestPrettyRender_NestedArray(t *testing.T) {
	out, err := PrettyRender(`[1, [2, 3], 4]`, "  ")
	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  [\n    2,\n    3\n  ],\n  4\n]", out)
}
