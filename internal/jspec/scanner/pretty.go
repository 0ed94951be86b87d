// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package scanner

import (
	"strings"
)

// IndentError reports an indent string that is not made up solely of
// spaces and tabs (spec.md §4.2.3, rule 3).
type IndentError struct {
	Indent string
}

func (e *IndentError) Error() string {
	return "indent string must contain only spaces and tabs, got " + quoteIndent(e.Indent)
}

func quoteIndent(s string) string {
	return "\"" + strings.ReplaceAll(strings.ReplaceAll(s, "\t", `\t`), " ", `\s`) + "\""
}

// PrettyRender re-renders doc with comments preserved at their original
// whitespace gap and with structural indentation applied, per spec.md
// §4.2.3. It fails with the same *ScanError Parse would on malformed input.
//
// Implementation follows the strategy in §4.2.3: a first scan of the
// original document records, for each whitespace gap (in the order the
// parser's lexer skips over them), the comments it contained; a second scan
// — of the canonical rendering of the parsed tree, driven by the very same
// recursive-descent code path — visits the structurally identical sequence
// of gaps and reinserts the recorded comments at matching positions. A
// single combined walk of the canonical text then injects newline and
// indent around bracket and comma positions, since both passes need the
// same left-to-right walk over the same string.
func PrettyRender(doc string, indent string) (string, error) {
	if err := validateIndent(indent); err != nil {
		return "", err
	}

	pattern, origTrivia, err := parseWithTrivia(doc)
	if err != nil {
		return "", err
	}

	canonical := pattern.Render()
	_, canonTrivia, cerr := parseWithTrivia(canonical)
	if cerr != nil {
		// The canonical rendering of a successfully parsed tree is always
		// itself valid JSPEC; this would indicate a Render/Parse mismatch
		// bug, not a user-facing input error.
		return "", cerr
	}

	return reformat(canonical, origTrivia, canonTrivia, indent), nil
}

func validateIndent(indent string) error {
	for _, c := range indent {
		if c != ' ' && c != '\t' {
			return &IndentError{Indent: indent}
		}
	}
	return nil
}

var openToClose = map[byte]byte{'{': '}', '[': ']'}

// reformat walks canonical left to right, splicing in comments recorded at
// each trivia gap and injecting indentation at container/entry boundaries.
func reformat(canonical string, origTrivia, canonTrivia []triviaGap, indent string) string {
	var out strings.Builder
	depth := 0
	gapIdx := 0
	pos := 0
	n := len(canonical)

	newline := func() {
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(strings.Repeat(indent, depth))
	}

	atLineStart := func() bool {
		s := out.String()
		lead := strings.Repeat(indent, depth)
		return s == lead || strings.HasSuffix(s, "\n"+lead)
	}

	// Each comment gets a line of its own, so a "//" comment never swallows
	// the token that follows it.
	flushGapsUpTo := func(offset int) {
		for gapIdx < len(canonTrivia) && canonTrivia[gapIdx].Offset <= offset {
			if gapIdx < len(origTrivia) {
				for _, c := range origTrivia[gapIdx].Comments {
					if !atLineStart() {
						newline()
					}
					out.WriteString(c.Text)
					newline()
				}
			}
			gapIdx++
		}
	}

	// indentedAt[i] tracks whether the i-th currently open container
	// inserted a newline when opened (false for an empty "{}"/"[]").
	var indentedAt []bool

	for pos < n {
		flushGapsUpTo(pos)
		if pos >= n {
			break
		}
		c := canonical[pos]
		switch {
		case c == '"':
			end := indexByteFrom(canonical, pos+1, '"')
			out.WriteString(canonical[pos : end+1])
			pos = end + 1
		case c == '<':
			end := indexByteFrom(canonical, pos+1, '>')
			out.WriteString(canonical[pos : end+1])
			pos = end + 1
		case c == '{' || c == '[':
			out.WriteByte(c)
			pos++
			closer := openToClose[c]
			empty := pos < n && canonical[pos] == closer
			if empty {
				indentedAt = append(indentedAt, false)
			} else {
				depth++
				newline()
				indentedAt = append(indentedAt, true)
			}
		case c == '}' || c == ']':
			was := true
			if len(indentedAt) > 0 {
				was = indentedAt[len(indentedAt)-1]
				indentedAt = indentedAt[:len(indentedAt)-1]
			}
			if was {
				depth--
				newline()
			}
			out.WriteByte(c)
			pos++
		case c == ',':
			out.WriteByte(',')
			pos++
			// Render() always follows a structural "," with exactly one
			// space ("a, b"); that space is being replaced by the
			// newline+indent below, so swallow it rather than copy it too.
			if pos < n && canonical[pos] == ' ' {
				pos++
			}
			newline()
		default:
			out.WriteByte(c)
			pos++
		}
	}
	flushGapsUpTo(n)
	return out.String()
}

func indexByteFrom(s string, from int, b byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return len(s) - 1
}
