// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package matcher

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// DecodeJSON parses raw JSON into the matcher's internal value
// representation: nil, bool, string, json.Number (decoded with UseNumber
// so Int and Real can still be told apart, the same distinction the
// pattern model keeps — spec.md §4.3), []any, or map[string]any.
func DecodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// isRealNumber reports whether a json.Number's literal text denotes a real
// (has a fraction or exponent) rather than an integer, mirroring the
// scanner's own Int/Real classification (scanner/parser.go isRealText).
func isRealNumber(n json.Number) bool {
	s := string(n)
	return strings.ContainsAny(s, ".eE")
}

func asInt(n json.Number) (int64, bool) {
	if isRealNumber(n) {
		return 0, false
	}
	v, err := strconv.ParseInt(string(n), 10, 64)
	return v, err == nil
}

func asFloat(n json.Number) (float64, bool) {
	v, err := n.Float64()
	return v, err == nil
}

// jsonEqual reports structural equality of two decoded JSON values, used
// for Macro term matching (spec.md §4.3): the macro's decoded value must
// equal the candidate value exactly, including Int/Real distinction.
func jsonEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		if !ok {
			return false
		}
		if isRealNumber(av) != isRealNumber(bv) {
			return false
		}
		if isRealNumber(av) {
			af, _ := asFloat(av)
			bf, _ := asFloat(bv)
			return af == bf
		}
		ai, _ := asInt(av)
		bi, _ := asInt(bv)
		return ai == bi
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !jsonEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, vv := range av {
			bvv, ok := bv[k]
			if !ok || !jsonEqual(vv, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
