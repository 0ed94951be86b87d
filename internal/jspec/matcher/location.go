// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

// Package matcher implements the JSPEC matching engine: term dispatch
// (spec.md §4.3), logical evaluation of alternating sequences (§4.4), and
// the backtracking container algorithms for objects and arrays (§4.5).
package matcher

import (
	"strconv"
	"strings"
)

// Location is a JSON-pointer-like breadcrumb identifying where, within the
// candidate document, a match or failure occurred (spec.md §3.2), e.g.
// "$.a[3].b".
type Location struct {
	segments []string
}

// Root is the breadcrumb for the document's top-level value.
func Root() Location {
	return Location{segments: []string{"$"}}
}

// Key returns the breadcrumb extended with an object field access.
func (l Location) Key(name string) Location {
	next := append(append([]string{}, l.segments...), "."+name)
	return Location{segments: next}
}

// Index returns the breadcrumb extended with an array element access.
func (l Location) Index(i int) Location {
	next := append(append([]string{}, l.segments...), "["+strconv.Itoa(i)+"]")
	return Location{segments: next}
}

func (l Location) String() string {
	var sb strings.Builder
	for _, s := range l.segments {
		sb.WriteString(s)
	}
	return sb.String()
}
