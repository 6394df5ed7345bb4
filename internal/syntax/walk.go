package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Module:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *Expression:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *Lambda:
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	// Leaf nodes: Literal, TypedLiteral
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// Equal reports whether a and b are structurally identical trees.
// Locations are ignored.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *Module:
		y, ok := b.(*Module)
		return ok && equalList(x.Stmts, y.Stmts)

	case *Block:
		y, ok := b.(*Block)
		return ok && equalList(x.Stmts, y.Stmts)

	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Value == y.Value

	case *TypedLiteral:
		y, ok := b.(*TypedLiteral)
		return ok && x.Name == y.Name && x.Type == y.Type

	case *Expression:
		y, ok := b.(*Expression)
		return ok && x.Op == y.Op && Equal(x.X, y.X) && Equal(x.Y, y.Y)

	case *Lambda:
		y, ok := b.(*Lambda)
		if !ok || x.ReturnType != y.ReturnType || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !Equal(x.Params[i], y.Params[i]) {
				return false
			}
		}
		if x.Body == nil || y.Body == nil {
			return x.Body == y.Body
		}
		return Equal(x.Body, y.Body)
	}
	return false
}

func equalList(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
