// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package matcher

import (
	"github.com/jspec-lang/jspec/internal/jspec/term"
)

func matchArray(loc Location, elements []term.ArrayElement, arr []any, lookup Lookup, depth int) (Result, *InvalidPattern) {
	if depth > maxDepth {
		return DepthExceededResult(loc), nil
	}
	return arrayTraverse(loc, elements, arr, 0, lookup, depth)
}

// arrayTraverse implements traverse(T_suffix, E_suffix) from spec.md §4.5.2.
// eIndex is the absolute index, in the original candidate array, of E[0].
func arrayTraverse(loc Location, T []term.ArrayElement, E []any, eIndex int, lookup Lookup, depth int) (Result, *InvalidPattern) {
	if depth > maxDepth {
		return DepthExceededResult(loc), nil
	}

	if len(E) == 0 {
		for _, t := range T {
			if !t.IsGroup() || !t.Group.Satisfied() {
				return Fail(loc, Progress{}, "unsatisfied pattern element %s", t.Render()), nil
			}
		}
		return Success(), nil
	}
	if len(T) == 0 {
		return Fail(loc, Progress{}, "exhausted pattern array with %d element(s) remaining", len(E)), nil
	}

	h, v := T[0], E[0]
	childLoc := loc.Index(eIndex)

	if !h.IsGroup() {
		r, ip := matchTerm(childLoc, h.Term, v, lookup, depth+1)
		if ip != nil {
			return Result{}, ip
		}
		if !r.Ok {
			return r, nil
		}
		sub, ip := arrayTraverse(loc, T[1:], E[1:], eIndex+1, lookup, depth+1)
		if ip != nil {
			return Result{}, ip
		}
		if sub.Ok {
			return Success(), nil
		}
		sub.Progress = sub.Progress.Add(Progress{TermsConsumed: 1, ElementsConsumed: 1})
		return sub, nil
	}

	g := h.Group
	if g.Exhausted() {
		return arrayTraverse(loc, T[1:], E, eIndex, lookup, depth+1)
	}

	if g.Satisfied() {
		return arraySatisfiedBranches(loc, T, E, eIndex, g, lookup, depth)
	}

	// unsatisfied: the group must absorb this element.
	accepted, bodyRes, ip := evalCaptureBodyArray(childLoc, v, g, lookup, depth+1)
	if ip != nil {
		return Result{}, ip
	}
	if !accepted {
		return Fail(childLoc, bodyRes.Progress, "exhausted JSON array, no JSON element left to match '%s'", g.Render()), nil
	}
	newT := prependReduced(g, T)
	sub, ip := arrayTraverse(loc, newT, E[1:], eIndex+1, lookup, depth+1)
	if ip != nil {
		return Result{}, ip
	}
	if sub.Ok {
		return Success(), nil
	}
	sub.Progress = sub.Progress.Add(Progress{ElementsConsumed: 1})
	return sub, nil
}

// arraySatisfiedBranches tries the three branches of spec.md §4.5.2 rule 5
// for a capture group that has already met its minimum: (a) absorb and
// advance both sides, (b) absorb and keep the (reduced) group in place for
// another try, (c) skip the group entirely. The first success wins;
// otherwise the highest-ranked failure among the three is reported.
func arraySatisfiedBranches(loc Location, T []term.ArrayElement, E []any, eIndex int, g *term.ArrayCaptureGroup, lookup Lookup, depth int) (Result, *InvalidPattern) {
	childLoc := loc.Index(eIndex)
	v := E[0]

	accepted, bodyRes, ip := evalCaptureBodyArray(childLoc, v, g, lookup, depth+1)
	if ip != nil {
		return Result{}, ip
	}

	var results []Result

	if accepted {
		// (a) consume the group and the element.
		subA, ip := arrayTraverse(loc, T[1:], E[1:], eIndex+1, lookup, depth+1)
		if ip != nil {
			return Result{}, ip
		}
		if subA.Ok {
			return Success(), nil
		}
		subA.Progress = subA.Progress.Add(Progress{ElementsConsumed: 1})
		results = append(results, subA)

		// (b) consume the element, keep the (reduced) group for more.
		newT := prependReduced(g, T)
		subB, ip := arrayTraverse(loc, newT, E[1:], eIndex+1, lookup, depth+1)
		if ip != nil {
			return Result{}, ip
		}
		if subB.Ok {
			return Success(), nil
		}
		subB.Progress = subB.Progress.Add(Progress{ElementsConsumed: 1})
		results = append(results, subB)
	} else {
		results = append(results, bodyRes)
	}

	// (c) skip the group, leave the element for a later pattern entry.
	subC, ip := arrayTraverse(loc, T[1:], E, eIndex, lookup, depth+1)
	if ip != nil {
		return Result{}, ip
	}
	if subC.Ok {
		return Success(), nil
	}
	results = append(results, subC)

	best := results[0]
	for _, r := range results[1:] {
		if r.Progress.Better(best.Progress) {
			best = r
		}
	}
	return best, nil
}

func prependReduced(g *term.ArrayCaptureGroup, T []term.ArrayElement) []term.ArrayElement {
	reduced := g.Reduced()
	out := make([]term.ArrayElement, 0, len(T))
	out = append(out, term.NewArrayElementGroup(reduced))
	out = append(out, T[1:]...)
	return out
}

// evalCaptureBodyArray evaluates an array capture group's alternating body
// against one candidate element, per spec.md §4.5.3.
func evalCaptureBodyArray(loc Location, v any, g *term.ArrayCaptureGroup, lookup Lookup, depth int) (bool, Result, *InvalidPattern) {
	bools := make([]bool, len(g.Operands))
	for i, op := range g.Operands {
		r, ip := matchTerm(loc, op, v, lookup, depth+1)
		if ip != nil {
			return false, Result{}, ip
		}
		bools[i] = r.Ok
	}
	if term.FoldBools(bools, g.Ops) {
		return true, Success(), nil
	}
	return false, Fail(loc, Progress{}, "element %v failed to match %s", v, g.Render()), nil
}
