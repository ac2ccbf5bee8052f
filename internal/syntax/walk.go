package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *FuncDecl:
		Walk(n.Name, v)
		for _, f := range n.Params {
			Walk(f, v)
		}
		Walk(n.Body, v)

	case *Field:
		Walk(n.Type, v)
		Walk(n.Name, v)

	case *VarDecl:
		Walk(n.Type, v)
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *PrintStmt:
		Walk(n.X, v)

	case *AssignStmt:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *Operation:
		Walk(n.X, v)
		if n.Y != nil {
			Walk(n.Y, v)
		}

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *IndexExpr:
		Walk(n.X, v)
		Walk(n.Index, v)

	case *ParenExpr:
		Walk(n.X, v)

	case *ArrayLit:
		for _, e := range n.Elems {
			Walk(e, v)
		}

	// Leaf nodes: Name, BasicLit, TypeName
	}
}

// Inspect traverses an AST and calls f for each node.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
