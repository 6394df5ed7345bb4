package syntax

import (
	"fmt"
	"strings"
)

// Parser builds an AST from the tokens of a Tokenizer.
// It looks one token ahead and stops at the first syntax error.
type Parser struct {
	tz *Tokenizer

	// Lookahead token (cached from the tokenizer)
	tok Token
	ok  bool // false at end of input
}

// NewParser creates a Parser reading tokens from tz.
// The parser becomes the only consumer of tz.
func NewParser(tz *Tokenizer) *Parser {
	p := &Parser{tz: tz}
	p.next() // prime the parser with first token
	return p
}

// Parse parses the source and returns a Module.
//
// Every error is a *LocalizedError. A lexical error recorded by the tokenizer
// takes precedence over the syntax error it may have provoked by truncating
// the token stream.
func Parse(src LineSource) (*Module, error) {
	return NewParser(NewTokenizer(src)).Parse()
}

// ParseString parses source text held in memory.
func ParseString(text string) (*Module, error) {
	return Parse(NewLineReader(strings.NewReader(text)))
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.tok, p.ok = p.tz.Next()
}

// is reports whether the current token is the operator op.
func (p *Parser) is(op Operator) bool {
	return p.ok && p.tok.Is(op)
}

// got reports whether the current token is op.
// If so, it consumes the token and returns true.
func (p *Parser) got(op Operator) bool {
	if p.is(op) {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it is op.
// Otherwise it returns an "expected what" error.
func (p *Parser) want(op Operator, what string) error {
	if !p.got(op) {
		return p.expected(what)
	}
	return nil
}

// literal consumes a literal token and returns its text.
func (p *Parser) literal(what string) (string, error) {
	if !p.ok || !p.tok.IsLiteral() {
		return "", p.expected(what)
	}
	lit := p.tok.Lit
	p.next()
	return lit, nil
}

// loc returns the location of the current token, or the unknown location
// at end of input.
func (p *Parser) loc() Location {
	if !p.ok {
		return Location{}
	}
	return p.tok.Loc
}

// ----------------------------------------------------------------------------
// Error handling

// expected reports that the current token does not match what the grammar
// requires. The error is located at the offending token.
func (p *Parser) expected(what string) error {
	if !p.ok {
		return WithLocation(&ParseError{
			Message: "expected " + what + ", found end of input",
			AtEOF:   true,
		}, Location{})
	}
	return WithLocation(&ParseError{
		Message: fmt.Sprintf("expected %s, found %s", what, p.tok),
	}, p.tok.Loc)
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses statements until the end of input.
func (p *Parser) Parse() (*Module, error) {
	m, err := p.module()
	if lexErr := p.tz.Err(); lexErr != nil {
		return nil, lexErr
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// module parses: Statement* EOF
func (p *Parser) module() (*Module, error) {
	loc := p.loc()
	var stmts []Node
	for p.ok {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return NewModule(stmts, loc), nil
}

// ----------------------------------------------------------------------------
// Statements

// statement parses: Assignment ';' | Expression ';'
func (p *Parser) statement() (Node, error) {
	var (
		n   Node
		err error
	)
	if p.is(Let) {
		n, err = p.assignment()
	} else {
		n, err = p.expression()
	}
	if err != nil {
		return nil, err
	}
	if err := p.want(Semicolon, "semicolon"); err != nil {
		return nil, err
	}
	return n, nil
}

// assignment parses: 'let' TypedLiteral(strict=false) '=' Expression
func (p *Parser) assignment() (Node, error) {
	loc := p.loc()
	if err := p.want(Let, "let keyword"); err != nil {
		return nil, err
	}
	name, err := p.typedLiteral(false)
	if err != nil {
		return nil, err
	}
	if err := p.want(Assign, "assignment operator"); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return NewExpression(Let, name, value, loc), nil
}

// block parses: '{' Statement* '}'
func (p *Parser) block() (*Block, error) {
	loc := p.loc()
	if err := p.want(LCurl, "opening curly brace"); err != nil {
		return nil, err
	}
	var stmts []Node
	for !p.got(RCurl) {
		if !p.ok {
			return nil, p.expected("statement or closing curly brace")
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return NewBlock(stmts, loc), nil
}

// ----------------------------------------------------------------------------
// Expressions

// expression parses: Block | Lambda | ArithExpr
func (p *Parser) expression() (Node, error) {
	switch {
	case !p.ok:
		return nil, p.expected("expression")
	case p.is(LCurl):
		return p.block()
	case p.is(Fn):
		return p.lambda()
	}
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression whose operators bind tighter than prec.
// All levels are left associative, ** included.
func (p *Parser) binaryExpr(prec int) (Node, error) {
	loc := p.loc()
	x, err := p.atom()
	if err != nil {
		return nil, err
	}

	for p.ok {
		oprec := p.tok.Op.Precedence()
		if oprec <= prec {
			break
		}

		// Binary expression location is the first token of the left operand.
		op := p.tok.Op
		p.next() // consume operator

		y, err := p.binaryExpr(oprec)
		if err != nil {
			return nil, err
		}
		x = NewExpression(op, x, y, loc)
	}
	return x, nil
}

// atom parses: Literal | '-' Atom | '+' Atom | '(' ArithExpr ')'
func (p *Parser) atom() (Node, error) {
	const what = "literal, unary operator or opening parenthesis"
	if !p.ok {
		return nil, p.expected(what)
	}

	loc := p.tok.Loc
	switch {
	case p.tok.IsLiteral():
		lit := NewLiteral(p.tok.Lit, loc)
		p.next()
		return lit, nil

	case p.tok.Is(Sub): // -x is 0 - x
		p.next()
		x, err := p.atom()
		if err != nil {
			return nil, err
		}
		return NewExpression(Sub, NewLiteral("0", loc), x, loc), nil

	case p.tok.Is(Add): // +x is x
		p.next()
		return p.atom()

	case p.tok.Is(LParen):
		p.next()
		x, err := p.binaryExpr(0)
		if err != nil {
			return nil, err
		}
		if err := p.want(RParen, "closing parenthesis"); err != nil {
			return nil, err
		}
		return x, nil
	}

	return nil, p.expected(what)
}

// typedLiteral parses: Literal (':' Literal)?
// With strict set the type annotation is mandatory and the result is
// always a *TypedLiteral.
func (p *Parser) typedLiteral(strict bool) (Node, error) {
	loc := p.loc()
	name, err := p.literal("literal [name]")
	if err != nil {
		return nil, err
	}
	if !p.got(Colon) {
		if strict {
			return nil, p.expected("colon [type annotation]")
		}
		return NewLiteral(name, loc), nil
	}
	typ, err := p.literal("literal [type]")
	if err != nil {
		return nil, err
	}
	return NewTypedLiteral(name, typ, loc), nil
}

// lambda parses: 'fn' '(' ParamList? ')' ':' Literal Block
func (p *Parser) lambda() (*Lambda, error) {
	loc := p.loc()
	if err := p.want(Fn, "fn keyword"); err != nil {
		return nil, err
	}
	if err := p.want(LParen, "opening parenthesis"); err != nil {
		return nil, err
	}

	params, err := p.paramList()
	if err != nil {
		return nil, err
	}

	if err := p.want(Colon, "colon [return type]"); err != nil {
		return nil, err
	}
	ret, err := p.literal("literal [return type]")
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return NewLambda(ret, params, body, loc), nil
}

// paramList parses: (TypedLiteral(strict=true) (',' TypedLiteral(strict=true))*)? ')'
func (p *Parser) paramList() ([]*TypedLiteral, error) {
	if p.got(RParen) {
		return nil, nil
	}
	if !p.ok || !p.tok.IsLiteral() {
		return nil, p.expected("parameter or closing parenthesis")
	}

	var params []*TypedLiteral
	for {
		n, err := p.typedLiteral(true)
		if err != nil {
			return nil, err
		}
		params = append(params, n.(*TypedLiteral))
		if !p.got(Comma) {
			break
		}
	}
	if err := p.want(RParen, "comma or closing parenthesis"); err != nil {
		return nil, err
	}
	return params, nil
}
