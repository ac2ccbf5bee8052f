package types2

import (
	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// expr evaluates an expression that must have a value and sets x to
// the result.
func (c *Checker) expr(x *operand, e syntax.Expr) {
	c.rawExpr(x, e)
	if x.mode == novalue {
		c.errorf(TypeMismatch, x.pos, "%s (no value) used as value", syntax.ExprString(e))
	}
}

// rawExpr evaluates an expression that may be a call without result.
func (c *Checker) rawExpr(x *operand, e syntax.Expr) {
	c.exprInternal(x, e)
	c.recordType(e, x)
}

// exprInternal is the main expression checking function.
func (c *Checker) exprInternal(x *operand, e syntax.Expr) {
	x.mode = invalid
	x.pos = e.Pos()
	x.expr = e

	switch e := e.(type) {
	case *syntax.Name:
		c.ident(x, e)
	case *syntax.BasicLit:
		c.basicLit(x, e)
	case *syntax.Operation:
		if e.Y == nil {
			c.unary(x, e)
		} else {
			c.binary(x, e)
		}
	case *syntax.CallExpr:
		c.call(x, e)
	case *syntax.IndexExpr:
		c.index(x, e)
	case *syntax.ArrayLit:
		c.arrayLit(x, e)
	case *syntax.ParenExpr:
		c.expr(x, e.X)
		x.pos = e.Pos()
		x.expr = e
	default:
		panic("types2: unexpected expression " + e.Pos().String())
	}
}

// ident evaluates a variable reference.
func (c *Checker) ident(x *operand, name *syntax.Name) {
	v := c.lookup(name)
	x.setVar(v.Type())
}

// basicLit evaluates a literal.
func (c *Checker) basicLit(x *operand, lit *syntax.BasicLit) {
	switch lit.Kind {
	case syntax.IntLit:
		x.setValue(types.Typ[types.Int])
	case syntax.BoolLit:
		x.setValue(types.Typ[types.Bool])
	}
}

// unary evaluates -x and !x.
func (c *Checker) unary(x *operand, e *syntax.Operation) {
	c.expr(x, e.X)

	want, result := operandTypes(e.Op)
	c.operandOf(x, e.Op, want)

	x.pos = e.Pos()
	x.expr = e
	x.setValue(result)
}

// binary evaluates a binary operation. Both operands must have the
// operand type of the operator's class exactly; int arrays are not int
// operands.
func (c *Checker) binary(x *operand, e *syntax.Operation) {
	var y operand
	c.expr(x, e.X)
	c.expr(&y, e.Y)

	want, result := operandTypes(e.Op)
	c.operandOf(x, e.Op, want)
	c.operandOf(&y, e.Op, want)

	x.pos = e.Pos()
	x.expr = e
	x.setValue(result)
}

// operandTypes returns the operand and result types of op.
func operandTypes(op syntax.Token) (want, result types.Type) {
	switch op.Class() {
	case syntax.Arithmetic:
		return types.Typ[types.Int], types.Typ[types.Int]
	case syntax.Comparison:
		return types.Typ[types.Int], types.Typ[types.Bool]
	case syntax.Logical:
		return types.Typ[types.Bool], types.Typ[types.Bool]
	}
	panic("types2: unexpected operator " + op.String())
}

// operandOf checks that x is an operand of type want for op.
func (c *Checker) operandOf(x *operand, op syntax.Token, want types.Type) {
	y := *x
	c.use(x, func(t types.Type) {
		if !types.Identical(t, want) {
			c.invalidOp(&y, op, want.String(), t)
		}
	})
}

// index evaluates a[i]. Any int variable may be indexed, since the int
// keyword also declares arrays.
func (c *Checker) index(x *operand, e *syntax.IndexExpr) {
	c.expr(x, e.X)
	base := *x
	c.use(x, func(t types.Type) {
		if !types.Indexable(t) {
			c.errorf(IndexOnNonArray, base.pos, "cannot index %s (variable of type %s)",
				syntax.ExprString(e.X), t)
		}
	})

	var i operand
	c.expr(&i, e.Index)
	c.use(&i, func(t types.Type) {
		if !types.IsInt(t) {
			c.errorf(TypeMismatch, i.pos, "invalid index %s (%s): must be int",
				syntax.ExprString(e.Index), t)
		}
	})

	x.pos = e.Pos()
	x.expr = e
	x.setVar(types.Typ[types.Int])
}

// arrayLit evaluates an array literal. Elements must be int.
func (c *Checker) arrayLit(x *operand, e *syntax.ArrayLit) {
	for _, elem := range e.Elems {
		var y operand
		c.expr(&y, elem)
		c.element(&y, "array literal")
	}
	x.setValue(types.IntArray)
}

// element checks that x can be stored as an array element.
func (c *Checker) element(x *operand, context string) {
	y := *x
	c.use(x, func(t types.Type) {
		if !types.IsInt(t) {
			c.errorf(TypeMismatch, y.pos, "cannot use %s (%s) as int in %s",
				syntax.ExprString(y.expr), t, context)
		}
	})
}

// assignment checks that x can be stored in a variable of type T.
func (c *Checker) assignment(x *operand, T types.Type, context string) {
	y := *x
	c.use(x, func(t types.Type) {
		if !types.AssignableTo(t, T) {
			c.errorf(TypeMismatch, y.pos, "cannot use %s (%s) as %s in %s",
				syntax.ExprString(y.expr), t, T, context)
		}
	})
}
