// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvLookup_PrefixAndMissing(t *testing.T) {
	t.Setenv("JSPEC_HOST", `"localhost"`)

	lookup := EnvLookup("JSPEC_")
	raw, ok := lookup("HOST")
	assert.True(t, ok)
	assert.Equal(t, `"localhost"`, raw)

	_, ok = lookup("MISSING")
	assert.False(t, ok)
}

func TestEnvLookup_EmptyPrefix(t *testing.T) {
	t.Setenv("HOST", `"localhost"`)

	lookup := EnvLookup("")
	raw, ok := lookup("HOST")
	assert.True(t, ok)
	assert.Equal(t, `"localhost"`, raw)
}
