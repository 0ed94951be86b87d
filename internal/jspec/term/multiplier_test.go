// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplier_String(t *testing.T) {
	assert.Equal(t, "", One.String())
	assert.Equal(t, "x?", Unbounded.String())
	assert.Equal(t, "x3", Multiplier{Min: 3, Max: 3}.String())
	assert.Equal(t, "x2-5", Multiplier{Min: 2, Max: 5}.String())
	assert.Equal(t, "x2-?", Multiplier{Min: 2, Max: Infinity}.String())
	assert.Equal(t, "x?-3", Multiplier{Min: 0, Max: 3}.String())
}

func TestMultiplier_Reduced(t *testing.T) {
	assert.Equal(t, Multiplier{Min: 1, Max: 4}, Multiplier{Min: 2, Max: 5}.Reduced())
	assert.Equal(t, Multiplier{Min: 0, Max: 0}, Multiplier{Min: 0, Max: 1}.Reduced())
	assert.Equal(t, Multiplier{Min: 0, Max: 0}, Multiplier{Min: 0, Max: 0}.Reduced())
	assert.Equal(t, Unbounded, Unbounded.Reduced())
}

func TestMultiplier_SatisfiedExhausted(t *testing.T) {
	assert.True(t, One.Reduced().Satisfied()) // (0,0) satisfied
	assert.True(t, One.Reduced().Exhausted())
	assert.False(t, One.Satisfied())
	assert.False(t, One.Exhausted())
	assert.True(t, Unbounded.Satisfied())
	assert.False(t, Unbounded.Exhausted())
}
