// Package syntax implements lexical and syntactic analysis for the lumen language.
package syntax

import (
	"fmt"
	"strconv"
)

// Operator identifies an operator, keyword or punctuation token.
// The zero value NoOp marks a literal token.
type Operator uint8

const (
	NoOp Operator = iota // literal (identifier or number)

	// Arithmetic operators
	Add // +
	Sub // -
	Mul // *
	Div // /
	Mod // %
	Pow // **

	// Keywords
	Let // let
	Fn  // fn

	// Punctuation
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Assign    // =
	LParen    // (
	RParen    // )
	LCurl     // {
	RCurl     // }

	operatorCount
)

// operatorNames maps operators to their source spelling.
var operatorNames = [...]string{
	NoOp: "LITERAL",

	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",
	Pow: "**",

	Let: "let",
	Fn:  "fn",

	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	Assign:    "=",
	LParen:    "(",
	RParen:    ")",
	LCurl:     "{",
	RCurl:     "}",
}

// String returns the source spelling of the operator.
func (op Operator) String() string {
	if op < operatorCount {
		return operatorNames[op]
	}
	return fmt.Sprintf("operator(%d)", op)
}

// IsKeyword reports whether op is a keyword.
func (op Operator) IsKeyword() bool {
	return op == Let || op == Fn
}

// IsArithmetic reports whether op is a binary arithmetic operator.
func (op Operator) IsArithmetic() bool {
	return op >= Add && op <= Pow
}

// Precedence returns the binding strength of a binary operator.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: + -
//	2: * / %
//	3: **
func (op Operator) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div, Mod:
		return 2
	case Pow:
		return 3
	}
	return 0
}

// operators maps snippet text to its operator.
var operators = map[string]Operator{
	"+":   Add,
	"-":   Sub,
	"*":   Mul,
	"/":   Div,
	"%":   Mod,
	"**":  Pow,
	"let": Let,
	"fn":  Fn,
	",":   Comma,
	":":   Colon,
	";":   Semicolon,
	"=":   Assign,
	"(":   LParen,
	")":   RParen,
	"{":   LCurl,
	"}":   RCurl,
}

// LookupOperator returns the operator spelled by s, or NoOp if s is not an
// operator, keyword or punctuation mark.
func LookupOperator(s string) Operator {
	return operators[s]
}

// Token is a classified lexical unit with its location.
type Token struct {
	Op  Operator // NoOp for literals
	Lit string   // literal text (empty for operators)
	Loc Location // where the token starts
}

// IsLiteral reports whether t is a literal token.
func (t Token) IsLiteral() bool {
	return t.Op == NoOp
}

// Is reports whether t is the operator token op.
func (t Token) Is(op Operator) bool {
	return op != NoOp && t.Op == op
}

// String describes the token for diagnostics.
func (t Token) String() string {
	if t.IsLiteral() {
		return "literal " + strconv.Quote(t.Lit)
	}
	return strconv.Quote(t.Op.String())
}

// classify turns a snippet into a token type.
// Operators and keywords win over literals; anything else is an error.
func classify(snippet string) (Operator, string, error) {
	if op := LookupOperator(snippet); op != NoOp {
		return op, "", nil
	}
	if isAlphaNumeric(snippet) {
		return NoOp, snippet, nil
	}
	return NoOp, "", &TokenError{Message: "invalid token: " + snippet}
}
