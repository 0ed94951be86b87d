// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package matcher

import (
	"encoding/json"

	"github.com/jspec-lang/jspec/internal/jspec/term"
)

// maxDepth bounds recursion to guard against stack exhaustion on
// maliciously deep pattern or candidate nesting (spec.md §5).
const maxDepth = 1000

// Match runs a pattern against a decoded JSON value, returning Ok or a
// ranked Fail. lookup resolves macro references; pass nil if the pattern
// contains none. InvalidPattern is returned (never as a Fail Result) if the
// tree contains a term of an unsupported variant.
func Match(t term.Term, value any, lookup Lookup) (Result, *InvalidPattern) {
	return matchTerm(Root(), t, value, lookup, 0)
}

func matchTerm(loc Location, t term.Term, value any, lookup Lookup, depth int) (Result, *InvalidPattern) {
	if depth > maxDepth {
		return DepthExceededResult(loc), nil
	}

	switch t.Kind {
	case term.KindNull:
		if value == nil {
			return Success(), nil
		}
		return Fail(loc, Progress{}, "expected null"), nil

	case term.KindBool:
		b, ok := value.(bool)
		if !ok || b != t.BoolValue() {
			return Fail(loc, Progress{}, "expected bool %v", t.BoolValue()), nil
		}
		return Success(), nil

	case term.KindInt:
		n, ok := value.(json.Number)
		if !ok {
			return Fail(loc, Progress{}, "expected int, got %T", value), nil
		}
		v, isInt := asInt(n)
		if !isInt || v != t.Int {
			return Fail(loc, Progress{}, "expected int %d, got %s", t.Int, n), nil
		}
		return Success(), nil

	case term.KindReal:
		n, ok := value.(json.Number)
		if !ok || !isRealNumber(n) {
			return Fail(loc, Progress{}, "expected real, got %v", value), nil
		}
		v, _ := asFloat(n)
		if v != t.Real {
			return Fail(loc, Progress{}, "expected real %v, got %s", t.Real, n), nil
		}
		return Success(), nil

	case term.KindString:
		s, ok := value.(string)
		if !ok {
			return Fail(loc, Progress{}, "expected string, got %T", value), nil
		}
		matched, err := fullmatch(t.Str, s)
		if err != nil {
			return Fail(loc, Progress{}, "invalid string pattern %q: %s", t.Str, err), nil
		}
		if !matched {
			return Fail(loc, Progress{}, "string %q does not match pattern %q", s, t.Str), nil
		}
		return Success(), nil

	case term.KindWildcard:
		return Success(), nil

	case term.KindObjectAny:
		if _, ok := value.(map[string]any); !ok {
			return Fail(loc, Progress{}, "expected object, got %T", value), nil
		}
		return Success(), nil

	case term.KindArrayAny:
		if _, ok := value.([]any); !ok {
			return Fail(loc, Progress{}, "expected array, got %T", value), nil
		}
		return Success(), nil

	case term.KindStringAny:
		if _, ok := value.(string); !ok {
			return Fail(loc, Progress{}, "expected string, got %T", value), nil
		}
		return Success(), nil

	case term.KindBoolAny:
		if _, ok := value.(bool); !ok {
			return Fail(loc, Progress{}, "expected bool, got %T", value), nil
		}
		return Success(), nil

	case term.KindIntBound:
		n, ok := value.(json.Number)
		if !ok {
			return Fail(loc, Progress{}, "expected int, got %T", value), nil
		}
		v, isInt := asInt(n)
		if !isInt {
			return Fail(loc, Progress{}, "expected int, got %s", n), nil
		}
		return checkBound(loc, t.Bound, float64(v)), nil

	case term.KindRealBound:
		n, ok := value.(json.Number)
		if !ok || !isRealNumber(n) {
			return Fail(loc, Progress{}, "expected real, got %v", value), nil
		}
		v, _ := asFloat(n)
		return checkBound(loc, t.Bound, v), nil

	case term.KindNumberBound:
		n, ok := value.(json.Number)
		if !ok {
			return Fail(loc, Progress{}, "expected number, got %T", value), nil
		}
		v, _ := asFloat(n)
		return checkBound(loc, t.Bound, v), nil

	case term.KindNegation:
		inner, ip := matchTerm(loc, *t.Inner, value, lookup, depth+1)
		if ip != nil {
			return Result{}, ip
		}
		if inner.Ok {
			return Fail(loc, Progress{}, "negated term %s unexpectedly matched", t.Inner.Render()), nil
		}
		return Success(), nil

	case term.KindMacro:
		return matchMacro(loc, t.Str, value, lookup, Progress{}), nil

	case term.KindConditional:
		return matchConditional(loc, t, value, lookup, depth)

	case term.KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return Fail(loc, Progress{}, "expected object, got %T", value), nil
		}
		return matchObject(loc, t.Object.Entries, obj, lookup, depth+1)

	case term.KindArray:
		arr, ok := value.([]any)
		if !ok {
			return Fail(loc, Progress{}, "expected array, got %T", value), nil
		}
		return matchArray(loc, t.Array.Elements, arr, lookup, depth+1)

	default:
		return Result{}, &InvalidPattern{Kind: t.Kind.String()}
	}
}

func checkBound(loc Location, b *term.Bound, v float64) Result {
	if b == nil {
		return Success()
	}
	if !b.Op.Satisfies(v, b.N.Float()) {
		return Fail(loc, Progress{}, "value %v does not satisfy %s %s", v, b.Op.String(), b.N.String())
	}
	return Success()
}

// matchConditional folds each operand's independent match result per
// spec.md §4.4; no short-circuiting, since every operand's result also
// feeds the failure message.
func matchConditional(loc Location, t term.Term, value any, lookup Lookup, depth int) (Result, *InvalidPattern) {
	bools := make([]bool, len(t.Operands))
	for i, op := range t.Operands {
		r, ip := matchTerm(loc, op, value, lookup, depth+1)
		if ip != nil {
			return Result{}, ip
		}
		bools[i] = r.Ok
	}
	if term.FoldBools(bools, t.Ops) {
		return Success(), nil
	}
	return Fail(loc, Progress{}, "value does not satisfy %s", t.Render()), nil
}
