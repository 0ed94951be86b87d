// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package matcher

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jspec-lang/jspec/internal/jspec/term"
)

// objPair is one key/value entry of a candidate JSON object, in the
// deterministic (sorted-key) iteration order matchObject uses so that a
// fixed pattern and value always explore branches in the same order.
type objPair struct {
	Key   string
	Value any
}

func matchObject(loc Location, entries []term.ObjectEntry, obj map[string]any, lookup Lookup, depth int) (Result, *InvalidPattern) {
	if depth > maxDepth {
		return DepthExceededResult(loc), nil
	}
	return objectSearch(loc, entries, sortedPairs(obj), lookup, depth)
}

func sortedPairs(obj map[string]any) []objPair {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]objPair, len(keys))
	for i, k := range keys {
		pairs[i] = objPair{Key: k, Value: obj[k]}
	}
	return pairs
}

// objectSearch implements the recursive depth-first search with pruning
// over (T, E) described in spec.md §4.5.1.
func objectSearch(loc Location, T []term.ObjectEntry, E []objPair, lookup Lookup, depth int) (Result, *InvalidPattern) {
	if depth > maxDepth {
		return DepthExceededResult(loc), nil
	}

	if len(E) == 0 {
		for _, t := range T {
			if t.IsGroup() {
				if !t.Group.Satisfied() {
					return Fail(loc, Progress{}, "unsatisfied capture group %s", t.Group.Render()), nil
				}
				continue
			}
			return Fail(loc, Progress{}, "missing required key %s", t.Pair.Key.Render()), nil
		}
		return Success(), nil
	}

	if len(T) == 0 {
		return Fail(loc, Progress{}, "unmatched object pair(s) remain: %s", renderUnmatchedPairs(E)), nil
	}

	allExhausted := true
	for _, t := range T {
		if !t.IsGroup() || !t.Group.Exhausted() {
			allExhausted = false
			break
		}
	}
	if allExhausted {
		return Fail(loc, Progress{}, "no remaining pattern entry can absorb %d unmatched pair(s)", len(E)), nil
	}

	var attempts []Result
	for ei, e := range E {
		for ti, t := range T {
			if !t.IsGroup() {
				r, ip := tryObjectPair(loc, T, E, ti, ei, t.Pair, lookup, depth)
				if ip != nil {
					return Result{}, ip
				}
				if r.Ok {
					return Success(), nil
				}
				attempts = append(attempts, r)
				continue
			}
			if t.Group.Exhausted() {
				continue
			}
			r, ip := tryObjectGroup(loc, T, E, ti, ei, t.Group, lookup, depth)
			if ip != nil {
				return Result{}, ip
			}
			if r.Ok {
				return Success(), nil
			}
			attempts = append(attempts, r)
		}
	}
	if len(attempts) == 0 {
		return Fail(loc, Progress{}, "no assignment of pattern entries to object pairs succeeds"), nil
	}
	return bestFailure(loc, attempts, E), nil
}

// bestFailure ranks competing failed attempts by Progress (spec.md §4.5.1):
// the greater (terms_consumed, elements_consumed) pair wins. If the top two
// candidates tie in progress AND disagree on why they failed, neither one's
// message is privileged over the other: the result instead lists E's
// still-unmatched pairs verbatim in canonical order. A tie with matching
// messages (the common case: several orderings bottom out at the same
// leftover pairs) just returns that shared message.
func bestFailure(loc Location, attempts []Result, E []objPair) Result {
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].Progress.Better(attempts[j].Progress)
	})
	if len(attempts) > 1 && attempts[0].Progress == attempts[1].Progress && attempts[0].Message != attempts[1].Message {
		return Fail(loc, attempts[0].Progress, "unmatched object pair(s) remain: %s", renderUnmatchedPairs(E))
	}
	return attempts[0]
}

// renderUnmatchedPairs renders E's pairs as "key": value, joined in the
// canonical (already key-sorted) order E carries.
func renderUnmatchedPairs(E []objPair) string {
	parts := make([]string, len(E))
	for i, e := range E {
		parts[i] = fmt.Sprintf("%s: %s", strconv.Quote(e.Key), renderJSONValue(e.Value))
	}
	return strings.Join(parts, ", ")
}

func renderJSONValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return strconv.Quote(val)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func tryObjectPair(loc Location, T []term.ObjectEntry, E []objPair, ti, ei int, pair term.ObjectPair, lookup Lookup, depth int) (Result, *InvalidPattern) {
	e := E[ei]
	keyRes, ip := matchTerm(loc, pair.Key, e.Key, lookup, depth+1)
	if ip != nil {
		return Result{}, ip
	}
	if !keyRes.Ok {
		return keyRes, nil
	}
	childLoc := loc.Key(e.Key)
	valRes, ip := matchTerm(childLoc, pair.Value, e.Value, lookup, depth+1)
	if ip != nil {
		return Result{}, ip
	}
	if !valRes.Ok {
		return valRes, nil
	}
	sub, ip := objectSearch(loc, removeObjEntry(T, ti), removeObjPair(E, ei), lookup, depth+1)
	if ip != nil {
		return Result{}, ip
	}
	if sub.Ok {
		return Success(), nil
	}
	sub.Progress = sub.Progress.Add(Progress{TermsConsumed: 1, ElementsConsumed: 1})
	return sub, nil
}

func tryObjectGroup(loc Location, T []term.ObjectEntry, E []objPair, ti, ei int, g *term.ObjectCaptureGroup, lookup Lookup, depth int) (Result, *InvalidPattern) {
	e := E[ei]
	accepted, bodyRes, ip := evalCaptureBodyObject(loc, e, g, lookup, depth)
	if ip != nil {
		return Result{}, ip
	}
	if !accepted {
		return bodyRes, nil
	}
	reduced := g.Reduced()
	newT := replaceObjGroup(T, ti, reduced)
	sub, ip := objectSearch(loc, newT, removeObjPair(E, ei), lookup, depth+1)
	if ip != nil {
		return Result{}, ip
	}
	if sub.Ok {
		return Success(), nil
	}
	sub.Progress = sub.Progress.Add(Progress{ElementsConsumed: 1})
	return sub, nil
}

// evalCaptureBodyObject evaluates an object capture group's alternating
// body against one candidate pair, per spec.md §4.5.3.
func evalCaptureBodyObject(loc Location, e objPair, g *term.ObjectCaptureGroup, lookup Lookup, depth int) (bool, Result, *InvalidPattern) {
	bools := make([]bool, len(g.Operands))
	for i, pair := range g.Operands {
		keyRes, ip := matchTerm(loc, pair.Key, e.Key, lookup, depth+1)
		if ip != nil {
			return false, Result{}, ip
		}
		ok := keyRes.Ok
		if ok {
			valRes, ip2 := matchTerm(loc.Key(e.Key), pair.Value, e.Value, lookup, depth+1)
			if ip2 != nil {
				return false, Result{}, ip2
			}
			ok = valRes.Ok
		}
		bools[i] = ok
	}
	if term.FoldBools(bools, g.Ops) {
		return true, Success(), nil
	}
	return false, Fail(loc.Key(e.Key), Progress{}, "%q: %v failed to match %s", e.Key, e.Value, g.Render()), nil
}

func removeObjEntry(T []term.ObjectEntry, idx int) []term.ObjectEntry {
	out := make([]term.ObjectEntry, 0, len(T)-1)
	for i, t := range T {
		if i != idx {
			out = append(out, t)
		}
	}
	return out
}

func removeObjPair(E []objPair, idx int) []objPair {
	out := make([]objPair, 0, len(E)-1)
	for i, e := range E {
		if i != idx {
			out = append(out, e)
		}
	}
	return out
}

func replaceObjGroup(T []term.ObjectEntry, idx int, g term.ObjectCaptureGroup) []term.ObjectEntry {
	out := make([]term.ObjectEntry, len(T))
	copy(out, T)
	out[idx] = term.NewObjectEntryGroup(g)
	return out
}
