package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
// Each node is printed on its own line with its location.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Module:
		p.printf("Module %s\n", n.loc)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *Block:
		p.printf("Block %s\n", n.loc)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *Literal:
		p.printf("Literal %s %q\n", n.loc, n.Value)

	case *TypedLiteral:
		p.printf("TypedLiteral %s %q: %q\n", n.loc, n.Name, n.Type)

	case *Expression:
		p.printf("Expression %s %s\n", n.Op, n.loc)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *Lambda:
		p.printf("Lambda %s\n", n.loc)
		p.indent++
		p.printf("Returns: %s\n", n.ReturnType)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, param := range n.Params {
				p.print(param)
			}
			p.indent--
		}
		p.printf("Body:\n")
		p.indent++
		p.print(n.Body)
		p.indent--
		p.indent--

	default:
		p.printf("%T\n", node)
	}
}
