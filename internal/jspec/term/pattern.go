// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package term

// Pattern wraps a single root Term — the result of scanning a JSPEC
// document (spec.md §3.1).
type Pattern struct {
	Root Term
}

func NewPattern(root Term) Pattern {
	return Pattern{Root: root}
}

// Render returns the canonical, comment-free textual rendering.
func (p Pattern) Render() string {
	return p.Root.Render()
}

// Equal is structural equality of the root terms.
func (p Pattern) Equal(other Pattern) bool {
	return Equal(p.Root, other.Root)
}
