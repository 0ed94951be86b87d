// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

// Package jspec is the public entry point for parsing, rendering and
// matching JSPEC patterns: a thin, oops-wrapped boundary over
// internal/jspec/scanner and internal/jspec/matcher (spec.md §6.2).
package jspec

import (
	"github.com/samber/oops"

	"github.com/jspec-lang/jspec/internal/jspec/matcher"
	"github.com/jspec-lang/jspec/internal/jspec/scanner"
	"github.com/jspec-lang/jspec/internal/jspec/term"
)

// Pattern is a parsed JSPEC document, ready to Render or Check against a
// candidate JSON value.
type Pattern = term.Pattern

// Lookup resolves a macro name to raw JSON text, which Check decodes and
// compares with the candidate value. It is
// the caller's responsibility to supply one; a nil Lookup makes every Macro
// term fail to match.
type Lookup = matcher.Lookup

// MapLookup adapts a plain map into a Lookup.
func MapLookup(m map[string]string) Lookup {
	return matcher.MapLookup(m)
}

// Parse scans and parses a JSPEC document into a Pattern. On a lexical or
// syntactic defect it returns an oops error coded "scan_error" carrying
// line/column/offset context, exactly as internal/jspec/scanner.ScanError
// reports it (spec.md §4.2.2).
func Parse(doc string) (Pattern, error) {
	pat, scanErr := scanner.Parse(doc)
	if scanErr != nil {
		return Pattern{}, oops.
			Code("scan_error").
			With("line", scanErr.Line).
			With("column", scanErr.Column).
			With("offset", scanErr.ByteOffset).
			Wrap(scanErr)
	}
	return pat, nil
}

// Render returns the canonical, comment-free textual rendering of p.
func Render(p Pattern) string {
	return p.Render()
}

// PrettyRender re-renders a JSPEC document with comments preserved and
// structural indentation applied (spec.md §4.2.3). indent must contain only
// spaces and tabs, or an oops error coded "indent_error" is returned.
func PrettyRender(doc string, indent string) (string, error) {
	out, err := scanner.PrettyRender(doc, indent)
	if err != nil {
		if ie, ok := err.(*scanner.IndentError); ok {
			return "", oops.
				Code("indent_error").
				With("indent", ie.Indent).
				Wrap(ie)
		}
		if se, ok := err.(*scanner.ScanError); ok {
			return "", oops.
				Code("scan_error").
				With("line", se.Line).
				With("column", se.Column).
				With("offset", se.ByteOffset).
				Wrap(se)
		}
		return "", oops.Wrapf(err, "pretty-rendering JSPEC document")
	}
	return out, nil
}

// CheckResult is the outcome of Check: either a match, or a failure carrying
// the location and reason the candidate was rejected at (spec.md §3.2, §7).
// It is data, not an exception — a CheckResult with Ok false is a normal,
// expected return value, never wrapped in an error.
type CheckResult struct {
	Ok       bool
	Location string
	Message  string
}

// String renders a one-line diagnostic: "match", or
// "At location <loc> - <message>".
func (r CheckResult) String() string {
	if r.Ok {
		return "match"
	}
	return "At location " + r.Location + " - " + r.Message
}

// Check matches a decoded JSON value against pattern, resolving any Macro
// terms via lookup. It returns an error only for a malformed pattern tree
// (InvalidPattern, a programmer error — never for an ordinary non-match,
// which is reported as a CheckResult with Ok false).
func Check(pattern Pattern, value any, lookup Lookup) (CheckResult, error) {
	r, invalid := matcher.Match(pattern.Root, value, lookup)
	if invalid != nil {
		return CheckResult{}, oops.
			Code("invalid_pattern").
			With("term_kind", invalid.Kind).
			Wrap(invalid)
	}
	return CheckResult{Ok: r.Ok, Location: r.Location, Message: r.Message}, nil
}

// DecodeJSON decodes raw JSON text the way Check requires: JSON numbers are
// kept as json.Number so the matcher can distinguish Int terms from Real
// terms (spec.md §4.3).
func DecodeJSON(raw []byte) (any, error) {
	v, err := matcher.DecodeJSON(raw)
	if err != nil {
		return nil, oops.Wrapf(err, "decoding JSON candidate")
	}
	return v, nil
}
