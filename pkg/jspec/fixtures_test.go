// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package jspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspec-lang/jspec/internal/jspec/testfixtures"
	"github.com/jspec-lang/jspec/pkg/jspec"
)

func TestFixtures_DocumentMatchesCandidate(t *testing.T) {
	pat, err := jspec.Parse(testfixtures.Document)
	require.NoError(t, err)

	value, err := jspec.DecodeJSON([]byte(testfixtures.Candidate))
	require.NoError(t, err)

	lookup := jspec.MapLookup(testfixtures.MacroLookup)
	result, err := jspec.Check(pat, value, lookup)
	require.NoError(t, err)
	assert.True(t, result.Ok, result.String())
}

func TestFixtures_SeedSuite(t *testing.T) {
	for _, tc := range testfixtures.SeedSuite {
		t.Run(tc.Name, func(t *testing.T) {
			pat, err := jspec.Parse(tc.Pattern)
			require.NoError(t, err)

			value, err := jspec.DecodeJSON([]byte(tc.JSON))
			require.NoError(t, err)

			result, err := jspec.Check(pat, value, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.WantOk, result.Ok, result.String())
			if tc.WantMessage != "" {
				assert.Contains(t, result.Message, tc.WantMessage)
			}
		})
	}
}
