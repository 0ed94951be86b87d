// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package jspec_test

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspec-lang/jspec/pkg/jspec"
)

func TestParse_RoundTrip(t *testing.T) {
	pat, err := jspec.Parse(`{"id": int >= 0, "name": string, ...}`)
	require.NoError(t, err)
	assert.Equal(t, `{"id": int >= 0, "name": string, ...}`, jspec.Render(pat))
}

func TestParse_ScanErrorIsOopsCoded(t *testing.T) {
	_, err := jspec.Parse(`{"a"`)
	require.Error(t, err)
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok)
	assert.Equal(t, "scan_error", oopsErr.Code())
	assert.Contains(t, oopsErr.Context(), "line")
}

func TestPrettyRender_RejectsBadIndent(t *testing.T) {
	_, err := jspec.PrettyRender(`{"a": 1}`, "-")
	require.Error(t, err)
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok)
	assert.Equal(t, "indent_error", oopsErr.Code())
}

func TestCheck_MatchAndFailure(t *testing.T) {
	pat, err := jspec.Parse(`{"id": int >= 0}`)
	require.NoError(t, err)

	value, err := jspec.DecodeJSON([]byte(`{"id": 1}`))
	require.NoError(t, err)
	result, err := jspec.Check(pat, value, nil)
	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, "match", result.String())

	bad, err := jspec.DecodeJSON([]byte(`{"id": -1}`))
	require.NoError(t, err)
	result, err = jspec.Check(pat, bad, nil)
	require.NoError(t, err)
	assert.False(t, result.Ok)
	assert.Contains(t, result.String(), "At location")
}

func TestCheck_MacroLookup(t *testing.T) {
	pat, err := jspec.Parse(`<HOST>`)
	require.NoError(t, err)

	value, err := jspec.DecodeJSON([]byte(`"localhost"`))
	require.NoError(t, err)

	result, err := jspec.Check(pat, value, jspec.MapLookup(map[string]string{"HOST": `"localhost"`}))
	require.NoError(t, err)
	assert.True(t, result.Ok)
}
