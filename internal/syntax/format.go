package syntax

import "strings"

// Format renders node as lumen source text. For a tree produced by Parse,
// parsing the result of Format(m) yields a tree Equal to m. Hand-built
// nodes whose names or types are keywords or not alphanumeric format to
// text that does not parse.
//
// Binary expressions are parenthesized only where precedence or left
// associativity requires it. Adjacent punctuation of the same kind is
// separated by a space, since the segmenter would otherwise merge it into
// a single (invalid) snippet, e.g. "((".
func Format(node Node) string {
	f := &formatter{}
	switch n := node.(type) {
	case *Module:
		for _, s := range n.Stmts {
			f.stmt(s)
		}
	case *Block:
		f.block(n)
		f.newline()
	default:
		f.expr(node)
	}
	return f.b.String()
}

type formatter struct {
	b      strings.Builder
	indent int
}

// word appends s, inserting a space if s would merge with the previous
// character into one snippet.
func (f *formatter) word(s string) {
	if s == "" {
		return
	}
	cur := f.b.String()
	if n := len(cur); n > 0 {
		last := cur[n-1]
		if !isWhitespace(last) && categoryOf(last) == categoryOf(s[0]) {
			f.b.WriteByte(' ')
		}
	}
	f.b.WriteString(s)
}

func (f *formatter) space() {
	f.b.WriteByte(' ')
}

func (f *formatter) newline() {
	f.b.WriteByte('\n')
}

func (f *formatter) stmt(n Node) {
	f.b.WriteString(strings.Repeat("    ", f.indent))
	f.expr(n)
	f.word(";")
	f.newline()
}

func (f *formatter) block(n *Block) {
	f.word("{")
	f.newline()
	f.indent++
	for _, s := range n.Stmts {
		f.stmt(s)
	}
	f.indent--
	f.b.WriteString(strings.Repeat("    ", f.indent))
	f.word("}")
}

func (f *formatter) expr(node Node) {
	switch n := node.(type) {
	case *Literal:
		f.word(n.Value)

	case *TypedLiteral:
		f.word(n.Name)
		f.word(":")
		f.space()
		f.word(n.Type)

	case *Expression:
		if n.Op == Let {
			f.word("let")
			f.space()
			f.expr(n.X)
			f.space()
			f.word("=")
			f.space()
			f.expr(n.Y)
			return
		}
		prec := n.Op.Precedence()
		f.operand(n.X, prec, false)
		f.space()
		f.word(n.Op.String())
		f.space()
		f.operand(n.Y, prec, true)

	case *Lambda:
		f.word("fn")
		f.word("(")
		for i, p := range n.Params {
			if i > 0 {
				f.word(",")
				f.space()
			}
			f.expr(p)
		}
		f.word(")")
		f.word(":")
		f.space()
		f.word(n.ReturnType)
		f.space()
		f.block(n.Body)

	case *Block:
		f.block(n)
	}
}

// operand writes an operand of a binary operator with precedence prec.
// Right operands of equal precedence need parentheses because every
// operator is left associative.
func (f *formatter) operand(x Node, prec int, right bool) {
	if e, ok := x.(*Expression); ok && e.Op.IsArithmetic() {
		p := e.Op.Precedence()
		if p < prec || right && p == prec {
			f.word("(")
			f.expr(x)
			f.word(")")
			return
		}
	}
	f.expr(x)
}
