// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package term

import "strings"

// ObjectPair is a single key/value entry of an ObjectTerm or the body of an
// ObjectCaptureGroup. Key is always a String or StringAny term.
type ObjectPair struct {
	Key   Term
	Value Term
}

func (p ObjectPair) Render() string {
	return p.Key.Render() + ": " + p.Value.Render()
}

func (p ObjectPair) Equal(other ObjectPair) bool {
	return Equal(p.Key, other.Key) && Equal(p.Value, other.Value)
}

// ArrayCaptureGroup matches a variable number of consecutive array elements.
// Operands/Ops form the same alternating logical sequence as a Conditional.
// hashKey is the canonical rendering computed as if IsEllipsis were false;
// it is what participates in duplicate-group detection and set membership
// (spec.md §9 "Hashing of captures"), so that "..." and the equivalent
// "(*)x?" hash identically and are recognized as the same group.
type ArrayCaptureGroup struct {
	Operands   []Term
	Ops        []LogOp
	Multiplier Multiplier
	IsEllipsis bool

	display string
	hashKey string
}

// NewArrayCaptureGroup builds a non-ellipsis array capture group.
func NewArrayCaptureGroup(operands []Term, ops []LogOp, mult Multiplier) ArrayCaptureGroup {
	key := renderAlternatingTerms(operands, ops) + mult.String()
	return ArrayCaptureGroup{Operands: operands, Ops: ops, Multiplier: mult, display: key, hashKey: key}
}

// NewArrayEllipsis builds the "..." sugar group: ⟨wildcard⟩ with
// multiplicity (0,∞), per spec.md §3.1.
func NewArrayEllipsis() ArrayCaptureGroup {
	g := NewArrayCaptureGroup([]Term{NewWildcard()}, nil, Unbounded)
	g.IsEllipsis = true
	g.display = "..."
	return g
}

func (g ArrayCaptureGroup) Render() string { return g.display }
func (g ArrayCaptureGroup) HashKey() string { return g.hashKey }

func (g ArrayCaptureGroup) Equal(other ArrayCaptureGroup) bool {
	if !g.Multiplier.Equal(other.Multiplier) {
		return false
	}
	return equalAlternating(g.Operands, g.Ops, other.Operands, other.Ops)
}

// Reduced returns a new group with both multiplier bounds decremented,
// leaving Operands/Ops (and thus IsEllipsis's semantic content) untouched.
// The original is never mutated (spec.md §5).
func (g ArrayCaptureGroup) Reduced() ArrayCaptureGroup {
	ng := g
	ng.Multiplier = g.Multiplier.Reduced()
	return ng
}

func (g ArrayCaptureGroup) Satisfied() bool { return g.Multiplier.Satisfied() }
func (g ArrayCaptureGroup) Exhausted() bool { return g.Multiplier.Exhausted() }

// ObjectCaptureGroup matches a variable number of unordered object entries.
type ObjectCaptureGroup struct {
	Operands   []ObjectPair
	Ops        []LogOp
	Multiplier Multiplier
	IsEllipsis bool

	display string
	hashKey string
}

// NewObjectCaptureGroup builds a non-ellipsis object capture group.
func NewObjectCaptureGroup(operands []ObjectPair, ops []LogOp, mult Multiplier) ObjectCaptureGroup {
	key := renderAlternatingPairs(operands, ops) + mult.String()
	return ObjectCaptureGroup{Operands: operands, Ops: ops, Multiplier: mult, display: key, hashKey: key}
}

// NewObjectEllipsis builds the "..." sugar group: ⟨StringAny : Wildcard⟩
// with multiplicity (0,∞), per spec.md §3.1.
func NewObjectEllipsis() ObjectCaptureGroup {
	pair := ObjectPair{Key: NewStringAny(), Value: NewWildcard()}
	g := NewObjectCaptureGroup([]ObjectPair{pair}, nil, Unbounded)
	g.IsEllipsis = true
	g.display = "..."
	return g
}

func (g ObjectCaptureGroup) Render() string  { return g.display }
func (g ObjectCaptureGroup) HashKey() string { return g.hashKey }

func (g ObjectCaptureGroup) Equal(other ObjectCaptureGroup) bool {
	if !g.Multiplier.Equal(other.Multiplier) {
		return false
	}
	if len(g.Operands) != len(other.Operands) || len(g.Ops) != len(other.Ops) {
		return false
	}
	for i := range g.Operands {
		if !g.Operands[i].Equal(other.Operands[i]) {
			return false
		}
	}
	for i := range g.Ops {
		if g.Ops[i] != other.Ops[i] {
			return false
		}
	}
	return true
}

func (g ObjectCaptureGroup) Reduced() ObjectCaptureGroup {
	ng := g
	ng.Multiplier = g.Multiplier.Reduced()
	return ng
}

func (g ObjectCaptureGroup) Satisfied() bool { return g.Multiplier.Satisfied() }
func (g ObjectCaptureGroup) Exhausted() bool { return g.Multiplier.Exhausted() }

// ArrayElement is either a plain Term or an ArrayCaptureGroup.
type ArrayElement struct {
	Group *ArrayCaptureGroup // nil => plain Term
	Term  Term
}

func NewArrayElementTerm(t Term) ArrayElement {
	return ArrayElement{Term: t}
}

func NewArrayElementGroup(g ArrayCaptureGroup) ArrayElement {
	return ArrayElement{Group: &g}
}

func (e ArrayElement) IsGroup() bool { return e.Group != nil }

func (e ArrayElement) Render() string {
	if e.Group != nil {
		return e.Group.Render()
	}
	return e.Term.Render()
}

func (e ArrayElement) Equal(other ArrayElement) bool {
	if e.IsGroup() != other.IsGroup() {
		return false
	}
	if e.IsGroup() {
		return e.Group.Equal(*other.Group)
	}
	return Equal(e.Term, other.Term)
}

// ObjectEntry is either a simple ObjectPair or an ObjectCaptureGroup.
type ObjectEntry struct {
	Group *ObjectCaptureGroup // nil => plain Pair
	Pair  ObjectPair
}

func NewObjectEntryPair(p ObjectPair) ObjectEntry {
	return ObjectEntry{Pair: p}
}

func NewObjectEntryGroup(g ObjectCaptureGroup) ObjectEntry {
	return ObjectEntry{Group: &g}
}

func (e ObjectEntry) IsGroup() bool { return e.Group != nil }

func (e ObjectEntry) Render() string {
	if e.Group != nil {
		return e.Group.Render()
	}
	return e.Pair.Render()
}

func (e ObjectEntry) Equal(other ObjectEntry) bool {
	if e.IsGroup() != other.IsGroup() {
		return false
	}
	if e.IsGroup() {
		return e.Group.Equal(*other.Group)
	}
	return e.Pair.Equal(other.Pair)
}

func renderAlternatingTerms(operands []Term, ops []LogOp) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, t := range operands {
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(ops[i-1].String())
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Render())
	}
	sb.WriteByte(')')
	return sb.String()
}

func renderAlternatingPairs(operands []ObjectPair, ops []LogOp) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range operands {
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(ops[i-1].String())
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Render())
	}
	sb.WriteByte(')')
	return sb.String()
}
