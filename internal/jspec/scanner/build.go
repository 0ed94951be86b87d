// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package scanner

import (
	"strconv"
	"strings"

	"github.com/jspec-lang/jspec/internal/jspec/term"
)

// buildTerm converts a successfully parsed rawTerm into a term.Term. The
// grammar guarantees exactly one field is populated.
func buildTerm(rt *rawTerm, doc string) (term.Term, *ScanError) {
	switch {
	case rt.Object != nil:
		return buildObject(rt.Object, doc)
	case rt.Array != nil:
		return buildArray(rt.Array, doc)
	case rt.Str != nil:
		return term.NewString(trimQuotes(*rt.Str)), nil
	case rt.True:
		return term.NewBool(true), nil
	case rt.False:
		return term.NewBool(false), nil
	case rt.Null:
		return term.NewNull(), nil
	case rt.Wild:
		return term.NewWildcard(), nil
	case rt.Not != nil:
		inner, err := buildTerm(rt.Not.Inner, doc)
		if err != nil {
			return term.Term{}, err
		}
		return term.NewNegation(inner), nil
	case rt.Macro != nil:
		return term.NewMacro(trimMacro(*rt.Macro)), nil
	case rt.Cond != nil:
		return buildConditional(rt.Cond, doc)
	case rt.ObjAny:
		return term.NewObjectAny(), nil
	case rt.ArrAny:
		return term.NewArrayAny(), nil
	case rt.StrAny:
		return term.NewStringAny(), nil
	case rt.BoolAny:
		return term.NewBoolAny(), nil
	case rt.IntT != nil:
		b, err := buildBound(rt.IntT.Bound)
		if err != nil {
			return term.Term{}, err
		}
		return term.NewIntBound(b), nil
	case rt.RealT != nil:
		b, err := buildBound(rt.RealT.Bound)
		if err != nil {
			return term.Term{}, err
		}
		return term.NewRealBound(b), nil
	case rt.NumT != nil:
		b, err := buildBound(rt.NumT.Bound)
		if err != nil {
			return term.Term{}, err
		}
		return term.NewNumberBound(b), nil
	case rt.Num != nil:
		return numberTermFromText(*rt.Num), nil
	}
	return term.Term{}, newScanError(doc, rt.Pos.Offset, "expected a term")
}

func buildBound(rb *rawBound) (*term.Bound, *ScanError) {
	if rb == nil {
		return nil, nil
	}
	var op term.Ineq
	switch rb.Op {
	case "<=":
		op = term.Le
	case ">=":
		op = term.Ge
	case "<":
		op = term.Lt
	case ">":
		op = term.Gt
	}
	return &term.Bound{Op: op, N: numberFromText(rb.N)}, nil
}

func numberTermFromText(raw string) term.Term {
	if isRealText(raw) {
		v, _ := strconv.ParseFloat(raw, 64)
		return term.NewReal(v)
	}
	v, _ := strconv.ParseInt(raw, 10, 64)
	return term.NewInt(v)
}

func numberFromText(raw string) term.Number {
	if isRealText(raw) {
		v, _ := strconv.ParseFloat(raw, 64)
		return term.NewRealNumber(v)
	}
	v, _ := strconv.ParseInt(raw, 10, 64)
	return term.NewIntNumber(v)
}

func isRealText(raw string) bool {
	for _, c := range raw {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}

func logOpFromText(s string, doc string, offset int) (term.LogOp, *ScanError) {
	switch s {
	case "&":
		return term.And, nil
	case "|":
		return term.Or, nil
	case "^":
		return term.Xor, nil
	}
	return 0, newScanError(doc, offset, "invalid logical operator %q", s)
}

func buildConditional(rc *rawConditional, doc string) (term.Term, *ScanError) {
	first, err := buildTerm(rc.First, doc)
	if err != nil {
		return term.Term{}, err
	}
	operands := append(make([]term.Term, 0, 1+len(rc.Rest)), first)
	ops := make([]term.LogOp, 0, len(rc.Ops))
	for i, opText := range rc.Ops {
		op, err := logOpFromText(opText, doc, rc.Pos.Offset)
		if err != nil {
			return term.Term{}, err
		}
		ops = append(ops, op)
		t, err := buildTerm(rc.Rest[i], doc)
		if err != nil {
			return term.Term{}, err
		}
		operands = append(operands, t)
	}
	return term.NewConditional(operands, ops), nil
}

func buildObject(ro *rawObject, doc string) (term.Term, *ScanError) {
	entries := make([]term.ObjectEntry, 0, len(ro.Entries))
	seenKeys := map[string]bool{}
	seenGroups := map[string]bool{}
	for _, re := range ro.Entries {
		entry, err := buildObjectEntry(re, doc)
		if err != nil {
			return term.Term{}, err
		}
		if entry.IsGroup() {
			key := entry.Group.HashKey()
			if seenGroups[key] {
				return term.Term{}, newScanError(doc, re.Pos.Offset, "duplicate capture group %q in object", key)
			}
			seenGroups[key] = true
		} else {
			key := entry.Pair.Key.Render()
			if seenKeys[key] {
				return term.Term{}, newScanError(doc, re.Pos.Offset, "repeated key %s in object", key)
			}
			seenKeys[key] = true
		}
		entries = append(entries, entry)
	}
	return term.NewObject(entries), nil
}

func buildObjectEntry(re *rawObjectEntry, doc string) (term.ObjectEntry, *ScanError) {
	switch {
	case re.Ellipsis:
		return term.NewObjectEntryGroup(term.NewObjectEllipsis()), nil
	case re.Group != nil:
		g, err := buildObjectGroup(re.Group, doc)
		if err != nil {
			return term.ObjectEntry{}, err
		}
		return term.NewObjectEntryGroup(g), nil
	case re.Pair != nil:
		p, err := buildObjectPair(re.Pair, doc)
		if err != nil {
			return term.ObjectEntry{}, err
		}
		return term.NewObjectEntryPair(p), nil
	}
	return term.ObjectEntry{}, newScanError(doc, re.Pos.Offset, "expected an object entry")
}

func buildObjectPair(rp *rawObjectPair, doc string) (term.ObjectPair, *ScanError) {
	var key term.Term
	if rp.KeyStr != nil {
		key = term.NewString(trimQuotes(*rp.KeyStr))
	} else {
		key = term.NewStringAny()
	}
	val, err := buildTerm(rp.Value, doc)
	if err != nil {
		return term.ObjectPair{}, err
	}
	return term.ObjectPair{Key: key, Value: val}, nil
}

func buildObjectGroup(rg *rawObjectGroup, doc string) (term.ObjectCaptureGroup, *ScanError) {
	first, err := buildObjectPair(rg.First, doc)
	if err != nil {
		return term.ObjectCaptureGroup{}, err
	}
	pairs := append(make([]term.ObjectPair, 0, 1+len(rg.Rest)), first)
	ops := make([]term.LogOp, 0, len(rg.Ops))
	for i, opText := range rg.Ops {
		op, err := logOpFromText(opText, doc, rg.Pos.Offset)
		if err != nil {
			return term.ObjectCaptureGroup{}, err
		}
		ops = append(ops, op)
		p, err := buildObjectPair(rg.Rest[i], doc)
		if err != nil {
			return term.ObjectCaptureGroup{}, err
		}
		pairs = append(pairs, p)
	}
	mult, serr := buildMultiplier(rg.Mult, doc, rg.Pos.Offset)
	if serr != nil {
		return term.ObjectCaptureGroup{}, serr
	}
	return term.NewObjectCaptureGroup(pairs, ops, mult), nil
}

func buildArray(ra *rawArray, doc string) (term.Term, *ScanError) {
	elements := make([]term.ArrayElement, 0, len(ra.Entries))
	seenGroups := map[string]bool{}
	for _, re := range ra.Entries {
		el, err := buildArrayEntry(re, doc)
		if err != nil {
			return term.Term{}, err
		}
		if el.IsGroup() {
			key := el.Group.HashKey()
			if seenGroups[key] {
				return term.Term{}, newScanError(doc, re.Pos.Offset, "duplicate capture group %q in array", key)
			}
			seenGroups[key] = true
		}
		elements = append(elements, el)
	}
	return term.NewArray(elements), nil
}

func buildArrayEntry(re *rawArrayEntry, doc string) (term.ArrayElement, *ScanError) {
	switch {
	case re.Ellipsis:
		return term.NewArrayElementGroup(term.NewArrayEllipsis()), nil
	case re.Group != nil:
		g, err := buildArrayGroup(re.Group, doc)
		if err != nil {
			return term.ArrayElement{}, err
		}
		return term.NewArrayElementGroup(g), nil
	case re.Plain != nil:
		t, err := buildTerm(re.Plain, doc)
		if err != nil {
			return term.ArrayElement{}, err
		}
		return term.NewArrayElementTerm(t), nil
	}
	return term.ArrayElement{}, newScanError(doc, re.Pos.Offset, "expected an array entry")
}

func buildArrayGroup(rg *rawArrayGroup, doc string) (term.ArrayCaptureGroup, *ScanError) {
	first, err := buildTerm(rg.First, doc)
	if err != nil {
		return term.ArrayCaptureGroup{}, err
	}
	operands := append(make([]term.Term, 0, 1+len(rg.Rest)), first)
	ops := make([]term.LogOp, 0, len(rg.Ops))
	for i, opText := range rg.Ops {
		op, err := logOpFromText(opText, doc, rg.Pos.Offset)
		if err != nil {
			return term.ArrayCaptureGroup{}, err
		}
		ops = append(ops, op)
		t, err := buildTerm(rg.Rest[i], doc)
		if err != nil {
			return term.ArrayCaptureGroup{}, err
		}
		operands = append(operands, t)
	}
	mult, serr := decodeMultiplier(rg.Mult, doc, rg.Pos.Offset)
	if serr != nil {
		return term.ArrayCaptureGroup{}, serr
	}
	return term.NewArrayCaptureGroup(operands, ops, mult), nil
}

// buildMultiplier decodes an optional Mult token (object capture groups
// default to term.One when absent).
func buildMultiplier(raw *string, doc string, offset int) (term.Multiplier, *ScanError) {
	if raw == nil {
		return term.One, nil
	}
	return decodeMultiplier(*raw, doc, offset)
}

func decodeMultiplier(raw string, doc string, offset int) (term.Multiplier, *ScanError) {
	m, err := parseMultiplierText(raw)
	if err != nil {
		return term.Multiplier{}, newScanError(doc, offset, "%s", err.Error())
	}
	if m.Min > m.Max {
		return term.Multiplier{}, newScanError(doc, offset, "capture multiplier min exceeds max")
	}
	return m, nil
}

func trimQuotes(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}

func trimMacro(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
}
