// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

// Package testfixtures provides shared sample JSPEC documents and matching
// JSON candidates for pkg/jspec's fixture and seed-suite tests
// (SPEC_FULL.md §C.3).
package testfixtures

// Document is a single document exercising most of the grammar in one
// shot: every literal kind, every placeholder, negation, a macro reference,
// a conditional, array and object capture groups at every multiplier shape,
// both ellipsis forms, and every inequality operator on int/real/number.
const Document = `{
	"object": {"hello": "world"},
	"array": [[], {}, 5],
	"string": "\w\d",
	"int": 3,
	"real": 10.01,
	"bool": true,
	"null": null,
	"wildcard": *,
	"negation": !4,
	"macro": <ENV_1>,
	"conditional": (1 | 2 ^ 3),
	"placeholders": [object, array, string, bool, int, real, number],
	"array_capture": [
		1,
		"a",
		(1 | 7),
		(2 | 3)x?,
		(6 | 5)x4,
		(5 | 7)x2-?,
		(8 | 0)x?-3,
		(2 | 4)x?-?,
		(1 | 8)x6-7
	],
	"array_ellipsis": [3, 4, ...],
	"object_capture": {
		"red": "brick",
		"blue": "sky",
		("a": 1 | "zz": 8),
		("c\d": 3 | "zz": 8)x4,
		("d\d": 4 | "zz": 8)x2-?,
		("e\d": 5 | "zz": 8)x?-3,
		("g\d": 7 | "zz": 8)x6-7
	},
	"object_ellipsis": {"red": "brick", "blue": "sky", ...},
	"inequalities": [
		int < 5, int > 6, int <= 5, int >= 6,
		real < 5.2, real > 6.2, real <= 5.2, real >= 6.2,
		number < 5, number > 6, number <= 5, number >= 6
	]
}`

// Candidate is a JSON document that satisfies Document, given MacroLookup's
// binding for ENV_1.
const Candidate = `{
	"object": {"hello": "world"},
	"array": [[], {}, 5],
	"string": "w1",
	"int": 3,
	"real": 10.01,
	"bool": true,
	"null": null,
	"wildcard": "anything",
	"negation": 5,
	"macro": "staging",
	"conditional": 2,
	"placeholders": [{}, [], "s", false, 1, 1.5, 2],
	"array_capture": [1, "a", 7, 6, 6, 6, 6, 5, 5, 1, 1, 1, 1, 1, 1],
	"array_ellipsis": [3, 4, 99, 100],
	"object_capture": {
		"red": "brick", "blue": "sky",
		"a": 1,
		"c1": 3, "c2": 3, "c3": 3, "c4": 3,
		"d1": 4, "d2": 4,
		"e1": 5,
		"g1": 7, "g2": 7, "g3": 7, "g4": 7, "g5": 7, "g6": 7
	},
	"object_ellipsis": {"red": "brick", "blue": "sky", "extra": 1},
	"inequalities": [4, 7, 5, 6, 5.1, 6.3, 5.2, 6.2, 4, 7, 5, 6]
}`

// MacroLookup resolves the single macro Document references.
var MacroLookup = map[string]string{
	"ENV_1": `"staging"`,
}

// SeedCase is one row of spec.md §8's concrete seed suite. WantMessage, when
// non-empty, is a substring the failure's message must contain — spec.md §8
// documents the exact wording for some failing rows, not just pass/fail.
type SeedCase struct {
	Name        string
	Pattern     string
	JSON        string
	WantOk      bool
	WantMessage string
}

// SeedSuite is the table of concrete end-to-end scenarios from spec.md §8.
var SeedSuite = []SeedCase{
	{
		Name:    "array capture absorbs a run of alternatives",
		Pattern: `[1,(2|3)x2-?,4]`,
		JSON:    `[1,2,3,3,2,4]`,
		WantOk:  true,
	},
	{
		Name:        "array capture cannot satisfy its minimum before the next literal",
		Pattern:     `[1,(2|3)x2-?,4]`,
		JSON:        `[1,2,4]`,
		WantOk:      false,
		WantMessage: `exhausted JSON array, no JSON element left to match '(2 | 3)x2-?'`,
	},
	{
		Name:    "object ellipsis allows unlisted keys",
		Pattern: `{"id":int>=0,"name":string,...}`,
		JSON:    `{"id":7,"name":"x","extra":null}`,
		WantOk:  true,
	},
	{
		Name:        "no ellipsis rejects an unlisted key",
		Pattern:     `{"id":int>=0,"name":string}`,
		JSON:        `{"id":7,"name":"x","extra":null}`,
		WantOk:      false,
		WantMessage: `"extra": null`,
	},
	{
		Name:    "negated disjunction excludes both alternatives",
		Pattern: `!(int|real)`,
		JSON:    `3.14`,
		WantOk:  false,
	},
	{
		Name:    "conditional AND of two bounds",
		Pattern: `(int<5&int>0)`,
		JSON:    `3`,
		WantOk:  true,
	},
	{
		Name:    "bounded capture exhausts before the fourth pair",
		Pattern: `{("k\d":int)x?-3}`,
		JSON:    `{"k1":1,"k2":2,"k3":3,"k4":4}`,
		WantOk:  false,
	},
	{
		Name:    "regex alternation fullmatch",
		Pattern: `"rege(x(es)?|xps?)"`,
		JSON:    `"regexps"`,
		WantOk:  true,
	},
}
