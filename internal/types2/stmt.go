package types2

import (
	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// stmtList checks a list of statements.
func (c *Checker) stmtList(list []syntax.Stmt) {
	for _, s := range list {
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.FuncDecl:
		c.funcDecl(s)

	case *syntax.VarDecl:
		c.varDecl(s)

	case *syntax.ExprStmt:
		c.exprStmt(s)

	case *syntax.AssignStmt:
		c.assignStmt(s)

	case *syntax.BlockStmt:
		c.blockStmt(s, "block")

	case *syntax.IfStmt:
		c.ifStmt(s)

	case *syntax.WhileStmt:
		c.whileStmt(s)

	case *syntax.ReturnStmt:
		c.returnStmt(s)

	case *syntax.PrintStmt:
		c.printStmt(s)

	default:
		panic("types2: unexpected statement " + s.Pos().String())
	}
}

// exprStmt checks a call statement. The call may have no result.
func (c *Checker) exprStmt(s *syntax.ExprStmt) {
	var x operand
	c.rawExpr(&x, s.X)
}

// blockStmt checks a block in a frame of its own.
func (c *Checker) blockStmt(s *syntax.BlockStmt, comment string) {
	c.openScope(s, comment)
	defer c.closeScope()
	c.stmtList(s.Stmts)
}

// ifStmt checks an if statement.
func (c *Checker) ifStmt(s *syntax.IfStmt) {
	c.condition(s.Cond, "if")
	c.blockStmt(s.Then, "if then")
	if s.Else != nil {
		c.blockStmt(s.Else, "if else")
	}
}

// whileStmt checks a while statement.
func (c *Checker) whileStmt(s *syntax.WhileStmt) {
	c.condition(s.Cond, "while")
	c.blockStmt(s.Body, "while")
}

// condition checks that the condition of an if or while statement is
// a boolean.
func (c *Checker) condition(e syntax.Expr, what string) {
	var x operand
	c.expr(&x, e)
	c.use(&x, func(t types.Type) {
		if !types.IsBool(t) {
			c.errorf(InvalidConditionType, x.pos, "non-boolean condition in %s statement: %s (%s)",
				what, syntax.ExprString(e), t)
		}
	})
}

// printStmt checks a print statement. Any value can be printed.
func (c *Checker) printStmt(s *syntax.PrintStmt) {
	var x operand
	c.expr(&x, s.X)
	c.use(&x, func(t types.Type) {
		if !types.Printable(t) {
			c.errorf(TypeMismatch, x.pos, "cannot print %s (%s)", syntax.ExprString(s.X), t)
		}
	})
}

// assignStmt checks an assignment to a variable or an array element.
func (c *Checker) assignStmt(s *syntax.AssignStmt) {
	var lhs operand
	c.exprInternal(&lhs, s.LHS)
	c.recordType(s.LHS, &lhs)

	var x operand
	c.expr(&x, s.RHS)

	switch l := s.LHS.(type) {
	case *syntax.Name:
		c.assignment(&x, lhs.typ, "assignment to "+l.Value)
	case *syntax.IndexExpr:
		c.element(&x, "assignment to "+syntax.ExprString(l))
	}
}
