package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Every AST node records the location of its first token. Nodes own their
// children exclusively; the tree has no shared subtrees and no parent links.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Loc() Location // location of the first token belonging to the node
	aNode()        // marker method to restrict implementations to this package
}

// node is the base struct embedded in all AST nodes.
type node struct {
	loc Location
}

func (n *node) Loc() Location { return n.loc }
func (n *node) aNode()        {}

// ----------------------------------------------------------------------------
// Nodes

// Module is the root of a parsed source file.
type Module struct {
	node
	Stmts []Node // statements in source order
}

// Block is a braced sequence of statements: { Stmts }
type Block struct {
	node
	Stmts []Node // statements in source order
}

// Literal is a bare identifier or number. The text is not interpreted.
type Literal struct {
	node
	Value string
}

// TypedLiteral is a name annotated with a type name: Name: Type
type TypedLiteral struct {
	node
	Name string
	Type string
}

// Expression is a binary operation X Op Y.
// A let binding is represented as Expression{Op: Let, X: name, Y: value},
// where name is a *Literal or *TypedLiteral.
type Expression struct {
	node
	Op Operator
	X  Node // left operand (binding name for Let)
	Y  Node // right operand (bound value for Let)
}

// Lambda is a function literal: fn(Params): ReturnType Body
type Lambda struct {
	node
	ReturnType string
	Params     []*TypedLiteral
	Body       *Block
}

// ----------------------------------------------------------------------------
// Constructors

// NewLiteral returns a Literal node at loc.
func NewLiteral(value string, loc Location) *Literal {
	n := &Literal{Value: value}
	n.loc = loc
	return n
}

// NewTypedLiteral returns a TypedLiteral node at loc.
func NewTypedLiteral(name, typ string, loc Location) *TypedLiteral {
	n := &TypedLiteral{Name: name, Type: typ}
	n.loc = loc
	return n
}

// NewExpression returns an Expression node at loc.
func NewExpression(op Operator, x, y Node, loc Location) *Expression {
	n := &Expression{Op: op, X: x, Y: y}
	n.loc = loc
	return n
}

// NewLambda returns a Lambda node at loc.
func NewLambda(ret string, params []*TypedLiteral, body *Block, loc Location) *Lambda {
	n := &Lambda{ReturnType: ret, Params: params, Body: body}
	n.loc = loc
	return n
}

// NewBlock returns a Block node at loc.
func NewBlock(stmts []Node, loc Location) *Block {
	n := &Block{Stmts: stmts}
	n.loc = loc
	return n
}

// NewModule returns a Module node at loc.
func NewModule(stmts []Node, loc Location) *Module {
	n := &Module{Stmts: stmts}
	n.loc = loc
	return n
}
