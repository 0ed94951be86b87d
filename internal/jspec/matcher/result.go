// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package matcher

import "fmt"

// Progress measures how far a failed match got before giving up, used only
// to rank competing failures during container backtracking (spec.md §4.5.1).
type Progress struct {
	TermsConsumed    int
	ElementsConsumed int
}

// Better reports whether p represents more progress than other: greater
// lexicographic (TermsConsumed, ElementsConsumed) pair wins.
func (p Progress) Better(other Progress) bool {
	if p.TermsConsumed != other.TermsConsumed {
		return p.TermsConsumed > other.TermsConsumed
	}
	return p.ElementsConsumed > other.ElementsConsumed
}

// Add returns the element-wise sum of two Progress values, used when a
// partial match's progress is combined with the progress of its recursive
// continuation.
func (p Progress) Add(other Progress) Progress {
	return Progress{
		TermsConsumed:    p.TermsConsumed + other.TermsConsumed,
		ElementsConsumed: p.ElementsConsumed + other.ElementsConsumed,
	}
}

// Result is the outcome of a single match attempt: either Ok, or a Fail
// carrying a location, a human-readable message, and the progress made
// before failing (spec.md §3.2).
type Result struct {
	Ok       bool
	Location string
	Message  string
	Progress Progress

	// DepthExceeded marks a failure produced by the recursion-depth guard
	// (spec.md §5) rather than an ordinary mismatch.
	DepthExceeded bool
}

// Success builds the Ok result.
func Success() Result {
	return Result{Ok: true}
}

// Fail builds a failing Result at loc with the given message and progress.
func Fail(loc Location, progress Progress, format string, args ...any) Result {
	return Result{
		Ok:       false,
		Location: loc.String(),
		Message:  fmt.Sprintf(format, args...),
		Progress: progress,
	}
}

// DepthExceededResult builds the distinct depth-guard failure (spec.md §5).
func DepthExceededResult(loc Location) Result {
	return Result{
		Ok:            false,
		Location:      loc.String(),
		Message:       "maximum nesting depth exceeded",
		DepthExceeded: true,
	}
}

// String renders a one-line diagnostic, used by pkg/jspec.Check and by the
// CLI's check subcommand: "At location <loc> - <message>" (matches the
// original implementation's check() diagnostic format).
func (r Result) String() string {
	if r.Ok {
		return "match"
	}
	return fmt.Sprintf("At location %s - %s", r.Location, r.Message)
}

// InvalidPattern reports a pattern-tree term of an unsupported variant — a
// programmer error in the caller's tree construction, not a data mismatch,
// so it is never conflated with a Fail Result (spec.md §4.3).
type InvalidPattern struct {
	Kind string
}

func (e *InvalidPattern) Error() string {
	return fmt.Sprintf("invalid pattern: unsupported term kind %q", e.Kind)
}
