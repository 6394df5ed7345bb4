package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Module:
		return map[string]interface{}{
			"type":  "Module",
			"loc":   n.loc.String(),
			"stmts": mapSlice(n.Stmts, toJSON),
		}

	case *Block:
		return map[string]interface{}{
			"type":  "Block",
			"loc":   n.loc.String(),
			"stmts": mapSlice(n.Stmts, toJSON),
		}

	case *Literal:
		return map[string]interface{}{
			"type":  "Literal",
			"loc":   n.loc.String(),
			"value": n.Value,
		}

	case *TypedLiteral:
		return map[string]interface{}{
			"type":     "TypedLiteral",
			"loc":      n.loc.String(),
			"name":     n.Name,
			"typename": n.Type,
		}

	case *Expression:
		return map[string]interface{}{
			"type": "Expression",
			"loc":  n.loc.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *Lambda:
		return map[string]interface{}{
			"type":    "Lambda",
			"loc":     n.loc.String(),
			"returns": n.ReturnType,
			"params":  mapSlice(n.Params, func(p *TypedLiteral) interface{} { return toJSON(p) }),
			"body":    toJSON(n.Body),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
