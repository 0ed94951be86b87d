// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package term

import (
	"strconv"
	"strings"
)

// Number is a JSPEC numeric literal: either an integer or a real, tracked
// separately because the two render and compare differently (an IntBound of
// "< 5" is a different term than one of "< 5.0", even though both predicates
// behave identically against a JSON value at match time).
type Number struct {
	IsReal bool
	Int    int64
	Real   float64
}

// NewIntNumber builds an integer Number.
func NewIntNumber(v int64) Number {
	return Number{IsReal: false, Int: v}
}

// NewRealNumber builds a real Number.
func NewRealNumber(v float64) Number {
	return Number{IsReal: true, Real: v}
}

// Float returns the numeric value as a float64, regardless of kind.
func (n Number) Float() float64 {
	if n.IsReal {
		return n.Real
	}
	return float64(n.Int)
}

// Equal reports structural equality: same kind, same value.
func (n Number) Equal(other Number) bool {
	if n.IsReal != other.IsReal {
		return false
	}
	if n.IsReal {
		return n.Real == other.Real
	}
	return n.Int == other.Int
}

// String renders the canonical form. Reals always carry a decimal point so
// that re-scanning the rendered text recovers a real, not an int (the
// scanner distinguishes the two purely by the presence of a fraction or
// exponent, per spec.md §4.2.1).
func (n Number) String() string {
	if !n.IsReal {
		return strconv.FormatInt(n.Int, 10)
	}
	s := strconv.FormatFloat(n.Real, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
