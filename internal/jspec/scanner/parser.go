// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

// Package scanner implements the JSPEC lexical surface: a participle-based
// grammar (spec.md §4.2.1-4.2.2) that turns document bytes into a
// term.Pattern, plus the comment-preserving pretty-printer (spec.md
// §4.2.3).
package scanner

import (
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/jspec-lang/jspec/internal/jspec/term"
)

// Parse scans a JSPEC document and builds its pattern tree, per the
// grammar in spec.md §4.2.2.
func Parse(doc string) (term.Pattern, *ScanError) {
	raw, err := docParser.ParseString("", doc)
	if err != nil {
		return term.Pattern{}, parseErrorToScanError(doc, err)
	}
	root, serr := buildTerm(raw.Root, doc)
	if serr != nil {
		return term.Pattern{}, serr
	}
	return term.NewPattern(root), nil
}

// parseErrorToScanError converts a participle lex/parse failure into a
// *ScanError, preserving the offset participle recorded so pkg/jspec's
// line/column reporting is unchanged.
func parseErrorToScanError(doc string, err error) *ScanError {
	if perr, ok := asParticipleError(err); ok {
		return newScanError(doc, perr.Position().Offset, "%s", perr.Message())
	}
	return newScanError(doc, 0, "%s", err.Error())
}

func asParticipleError(err error) (participle.Error, bool) {
	for err != nil {
		if pe, ok := err.(participle.Error); ok {
			return pe, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}

// triviaGap is one whitespace/comment gap between two adjacent real tokens
// of a JSPEC document (or document start/EOF), recorded in left-to-right
// token order so the pretty-printer can re-align an original document's
// gaps against its own canonical re-render's gaps index for index
// (spec.md §4.2.3).
type triviaGap struct {
	Offset   int
	Comments []Comment
}

// parseWithTrivia parses doc and also returns its ordered trivia gaps, for
// the pretty-printer (pretty.go, spec.md §4.2.3).
func parseWithTrivia(doc string) (term.Pattern, []triviaGap, *ScanError) {
	pat, err := Parse(doc)
	if err != nil {
		return term.Pattern{}, nil, err
	}
	gaps, err := scanTrivia(doc)
	if err != nil {
		return term.Pattern{}, nil, err
	}
	return pat, gaps, nil
}

// scanTrivia walks doc's raw token stream — via the same jspecLexer the
// grammar parser uses, bypassing the grammar entirely — and returns one
// triviaGap per boundary between two real (non-trivia) tokens, carrying
// whatever comments were skipped over to reach it. This is a lexical
// bookkeeping pass, not a second grammar, so it stays a plain loop over the
// token stream rather than a parser of its own.
func scanTrivia(doc string) ([]triviaGap, *ScanError) {
	lx, err := jspecLexer.Lex("", strings.NewReader(doc))
	if err != nil {
		return nil, newScanError(doc, 0, "%s", err.Error())
	}
	symbols := jspecLexer.Symbols()
	whitespace := symbols["Whitespace"]
	lineComment := symbols["LineComment"]
	blockComment := symbols["BlockComment"]

	var gaps []triviaGap
	var pending []Comment
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, newScanError(doc, 0, "%s", err.Error())
		}
		if tok.EOF() {
			gaps = append(gaps, triviaGap{Offset: tok.Pos.Offset, Comments: pending})
			return gaps, nil
		}
		switch tok.Type {
		case whitespace:
			continue
		case lineComment, blockComment:
			pending = append(pending, Comment{Text: tok.Value})
		default:
			gaps = append(gaps, triviaGap{Offset: tok.Pos.Offset, Comments: pending})
			pending = nil
		}
	}
}
