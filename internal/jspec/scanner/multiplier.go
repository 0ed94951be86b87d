// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jspec-lang/jspec/internal/jspec/term"
)

// parseMultiplierText decodes the raw text of a Mult token ("x2", "x2-5",
// "x?-3", "x2-?", "x?") into a term.Multiplier. raw always starts with "x".
// A bare "x?" (no second bound) is the (0,∞) shorthand — the same value
// "..." desugars to — since term.Multiplier.String only ever renders that
// exact text for Unbounded; any other single-bound form ("xN") is the exact
// count (N,N).
func parseMultiplierText(raw string) (term.Multiplier, error) {
	body := strings.TrimPrefix(raw, "x")
	if body == "?" {
		return term.Unbounded, nil
	}

	lo, hi, hasHi := strings.Cut(body, "-")
	min, err := parseBound(lo, 0)
	if err != nil {
		return term.Multiplier{}, err
	}
	if !hasHi {
		return term.Multiplier{Min: min, Max: min}, nil
	}
	max, err := parseBound(hi, term.Infinity)
	if err != nil {
		return term.Multiplier{}, err
	}
	return term.Multiplier{Min: min, Max: max}, nil
}

// parseBound decodes one side of a Mult bound; "?" means questionMarkValue
// (0 on the min side, term.Infinity on the max side).
func parseBound(s string, questionMarkValue int64) (int64, error) {
	if s == "?" {
		return questionMarkValue, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid multiplier bound %q", s)
	}
	return v, nil
}
