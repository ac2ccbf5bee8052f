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
	case *File:
		return map[string]interface{}{
			"type":  "File",
			"pos":   n.pos.String(),
			"name":  n.Name,
			"stmts": mapSlice(n.Stmts, stmtJSON),
		}

	case *FuncDecl:
		return map[string]interface{}{
			"type":   "FuncDecl",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"params": mapSlice(n.Params, func(f *Field) interface{} { return toJSON(f) }),
			"body":   toJSON(n.Body),
		}

	case *Field:
		return map[string]interface{}{
			"type":      "Field",
			"pos":       n.pos.String(),
			"name":      n.Name.Value,
			"fieldtype": n.Type.Tok.String(),
		}

	case *VarDecl:
		return map[string]interface{}{
			"type":    "VarDecl",
			"pos":     n.pos.String(),
			"name":    n.Name.Value,
			"vartype": n.Type.Tok.String(),
			"value":   toJSON(n.Value),
		}

	case *BlockStmt:
		return map[string]interface{}{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, stmtJSON),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *WhileStmt:
		return map[string]interface{}{
			"type": "WhileStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *ReturnStmt:
		m := map[string]interface{}{
			"type": "ReturnStmt",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *PrintStmt:
		return map[string]interface{}{
			"type":  "PrintStmt",
			"pos":   n.pos.String(),
			"value": toJSON(n.X),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type": "AssignStmt",
			"pos":  n.pos.String(),
			"lhs":  toJSON(n.LHS),
			"rhs":  toJSON(n.RHS),
		}

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *Operation:
		if n.Y == nil {
			return map[string]interface{}{
				"type": "UnaryOp",
				"pos":  n.pos.String(),
				"op":   n.Op.String(),
				"x":    toJSON(n.X),
			}
		}
		return map[string]interface{}{
			"type": "BinaryOp",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  n.Fun.Value,
			"args": mapSlice(n.Args, exprJSON),
		}

	case *IndexExpr:
		return map[string]interface{}{
			"type":  "IndexExpr",
			"pos":   n.pos.String(),
			"x":     toJSON(n.X),
			"index": toJSON(n.Index),
		}

	case *ParenExpr:
		return map[string]interface{}{
			"type": "ParenExpr",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *ArrayLit:
		return map[string]interface{}{
			"type":  "ArrayLit",
			"pos":   n.pos.String(),
			"elems": mapSlice(n.Elems, exprJSON),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func stmtJSON(s Stmt) interface{} { return toJSON(s) }
func exprJSON(e Expr) interface{} { return toJSON(e) }

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
