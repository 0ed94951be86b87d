// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package scanner

// Comment is a single line or block comment captured between two tokens,
// kept verbatim (including its delimiters) for the pretty-printer.
type Comment struct {
	Text string
}
