// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package scanner

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// jspecLexer defines the token types of a JSPEC pattern document (spec.md
// §4.2.1). Order matters: a token whose pattern is a prefix of another's
// must be tried after the more specific one. A macro reference and a bound
// comparator both start with "<"/">", so Macro — restricted to
// identifier-shaped names, the only shape any macro in the wild actually
// takes — is tried before Le/Ge/Lt/Gt; a capture multiplier ("x2") is tried
// before the generic identifier rule that would otherwise swallow it as a
// bare word.
var jspecLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "LineComment", Pattern: `//[^\n]*`},
	{Name: "BlockComment", Pattern: `(?s)/\*.*?\*/`},
	{Name: "Macro", Pattern: `<[A-Za-z_][A-Za-z0-9_]*>`},
	{Name: "Le", Pattern: `<=`},
	{Name: "Ge", Pattern: `>=`},
	{Name: "Lt", Pattern: `<`},
	{Name: "Gt", Pattern: `>`},
	{Name: "Ellipsis", Pattern: `\.\.\.`},
	{Name: "Multiplier", Pattern: `x([1-9][0-9]*|\?)(-([1-9][0-9]*|\?))?`},
	{Name: "Number", Pattern: `-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?`},
	{Name: "String", Pattern: `"[^\n"]*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "And", Pattern: `&`},
	{Name: "Or", Pattern: `\|`},
	{Name: "Xor", Pattern: `\^`},
	{Name: "Punct", Pattern: `[{}\[\]():,*!]`},
})

// rawDocument is the whole-input grammar entry point: a single Term,
// consuming to EOF (spec.md §3.1).
type rawDocument struct {
	Pos  lexer.Position `parser:""`
	Root *rawTerm       `parser:"@@"`
}

// rawTerm mirrors the Term production of spec.md §4.2.2. Exactly one field
// is populated, matching whichever ordered alternative the parser
// committed to; build.go dispatches on it the same way ast.go's Condition
// dispatches on its own alternative fields.
type rawTerm struct {
	Pos lexer.Position `parser:""`

	Object  *rawObject      `parser:"(  @@"`
	Array   *rawArray       `parser:" | @@"`
	Str     *string         `parser:" | @String"`
	True    bool            `parser:" | @'true'"`
	False   bool            `parser:" | @'false'"`
	Null    bool            `parser:" | @'null'"`
	Wild    bool            `parser:" | @'*'"`
	Not     *rawNegation    `parser:" | @@"`
	Macro   *string         `parser:" | @Macro"`
	Cond    *rawConditional `parser:" | @@"`
	ObjAny  bool            `parser:" | @'object'"`
	ArrAny  bool            `parser:" | @'array'"`
	StrAny  bool            `parser:" | @'string'"`
	BoolAny bool            `parser:" | @'bool'"`
	IntT    *rawIntTerm     `parser:" | @@"`
	RealT   *rawRealTerm    `parser:" | @@"`
	NumT    *rawNumberTerm  `parser:" | @@"`
	Num     *string         `parser:" | @Number )"`
}

type rawNegation struct {
	Pos   lexer.Position `parser:""`
	Inner *rawTerm       `parser:"'!' @@"`
}

// rawBound mirrors BoundOpt's body: an inequality operator and a number.
type rawBound struct {
	Pos lexer.Position `parser:""`
	Op  string         `parser:"@(Le | Ge | Lt | Gt)"`
	N   string         `parser:"@Number"`
}

type rawIntTerm struct {
	Pos   lexer.Position `parser:""`
	Bound *rawBound      `parser:"'int' @@?"`
}

type rawRealTerm struct {
	Pos   lexer.Position `parser:""`
	Bound *rawBound      `parser:"'real' @@?"`
}

type rawNumberTerm struct {
	Pos   lexer.Position `parser:""`
	Bound *rawBound      `parser:"'number' @@?"`
}

// rawConditional mirrors "(" Term (LogOp Term)* ")", at least one operand.
type rawConditional struct {
	Pos   lexer.Position `parser:""`
	First *rawTerm       `parser:"'(' @@"`
	Ops   []string       `parser:"( @(And | Or | Xor)"`
	Rest  []*rawTerm     `parser:"  @@ )* ')'"`
}

type rawObject struct {
	Pos     lexer.Position    `parser:""`
	Entries []*rawObjectEntry `parser:"'{' (@@ (',' @@)*)? '}'"`
}

type rawObjectEntry struct {
	Pos      lexer.Position  `parser:""`
	Ellipsis bool            `parser:"(  @'...'"`
	Group    *rawObjectGroup `parser:" | @@"`
	Pair     *rawObjectPair  `parser:" | @@ )"`
}

// rawObjectPair mirrors ObjPair := (String | "string") ":" Term.
type rawObjectPair struct {
	Pos    lexer.Position `parser:""`
	KeyStr *string        `parser:"(  @String"`
	KeyAny bool           `parser:" | @'string' )"`
	Value  *rawTerm       `parser:"':' @@"`
}

// rawObjectGroup mirrors "(" ObjPair (LogOp ObjPair)* ")" Mult?.
type rawObjectGroup struct {
	Pos   lexer.Position   `parser:""`
	First *rawObjectPair   `parser:"'(' @@"`
	Ops   []string         `parser:"( @(And | Or | Xor)"`
	Rest  []*rawObjectPair `parser:"  @@ )* ')'"`
	Mult  *string          `parser:"@Multiplier?"`
}

type rawArray struct {
	Pos     lexer.Position   `parser:""`
	Entries []*rawArrayEntry `parser:"'[' (@@ (',' @@)*)? ']'"`
}

// rawArrayEntry tries the array capture group alternative, whose grammar
// body is identical to a bare Conditional term's, before falling back to a
// plain Term. The group alternative only matches with a trailing Mult
// (mandatory on rawArrayGroup); with MaxLookahead the parser backtracks to
// the Term alternative when no multiplier follows — the same technique
// internal/access/policy/dsl's ContainsCondition uses to disambiguate
// against AttrRef.
type rawArrayEntry struct {
	Pos      lexer.Position `parser:""`
	Ellipsis bool           `parser:"(  @'...'"`
	Group    *rawArrayGroup `parser:" | @@"`
	Plain    *rawTerm       `parser:" | @@ )"`
}

// rawArrayGroup mirrors "(" Term (LogOp Term)* ")" Mult, Mult mandatory so
// that a bare "(...)" with no multiplier falls through to rawArrayEntry's
// Plain alternative instead.
type rawArrayGroup struct {
	Pos   lexer.Position `parser:""`
	First *rawTerm       `parser:"'(' @@"`
	Ops   []string       `parser:"( @(And | Or | Xor)"`
	Rest  []*rawTerm     `parser:"  @@ )* ')'"`
	Mult  string         `parser:"@Multiplier"`
}

var docParser *participle.Parser[rawDocument]

func init() {
	var err error
	docParser, err = participle.Build[rawDocument](
		participle.Lexer(jspecLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
		participle.UseLookahead(participle.MaxLookahead),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build JSPEC grammar parser: %v", err))
	}
}
