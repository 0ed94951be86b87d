// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package term

import (
	"math"
	"strconv"
)

// Infinity is the sentinel used for an unbounded Multiplier.Max.
const Infinity = math.MaxInt64

// Multiplier is the (min, max) occurrence range attached to a capture
// group. An unmarked group defaults to Multiplier{1, 1}.
type Multiplier struct {
	Min int64
	Max int64
}

// One is the default multiplier for a group with no "xN-M" suffix.
var One = Multiplier{Min: 1, Max: 1}

// Unbounded is the (0, ∞) multiplier of "...", and of an explicit "x?".
var Unbounded = Multiplier{Min: 0, Max: Infinity}

// Reduced decrements both bounds by one, floored at zero; ∞ is preserved.
// Unbounded is a fixed point of Reduced, which is what makes the two
// ellipsis groups satisfied-forever/never-exhausted (spec.md §4.1).
func (m Multiplier) Reduced() Multiplier {
	min := m.Min
	if min > 0 {
		min--
	}
	max := m.Max
	if max != Infinity && max > 0 {
		max--
	}
	return Multiplier{Min: min, Max: max}
}

// Satisfied reports whether the group has already consumed enough to be a
// valid (possibly zero-length) match.
func (m Multiplier) Satisfied() bool {
	return m.Min == 0
}

// Exhausted reports whether the group cannot absorb another element/pair.
func (m Multiplier) Exhausted() bool {
	return m.Max == 0
}

// Equal reports exact bound equality.
func (m Multiplier) Equal(other Multiplier) bool {
	return m.Min == other.Min && m.Max == other.Max
}

// String renders the "xN-M" suffix form, or "" for the default (1,1).
// Forms: "x?" for (0,∞); "xN" for (N,N); "xN-M" for (N,M); "xN-?" for
// (N,∞); "x?-M" for (0,M).
func (m Multiplier) String() string {
	if m == One {
		return ""
	}
	if m == Unbounded {
		return "x?"
	}
	minStr := "?"
	if m.Min != 0 {
		minStr = strconv.FormatInt(m.Min, 10)
	}
	if m.Min == m.Max {
		return "x" + minStr
	}
	maxStr := "?"
	if m.Max != Infinity {
		maxStr = strconv.FormatInt(m.Max, 10)
	}
	return "x" + minStr + "-" + maxStr
}
