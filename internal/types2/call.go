package types2

import (
	"fmt"

	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// call evaluates a function call. Arguments are checked against the
// declared parameter types; the call's type is the callee's inferred
// result, or a placeholder if the callee's body is still in progress.
func (c *Checker) call(x *operand, e *syntax.CallExpr) {
	f := c.lookupFunc(e.Fun)
	sig := f.obj.Signature()

	if len(e.Args) != sig.NumParams() {
		c.errorf(ArityMismatch, e.Pos(), "wrong number of arguments in call to %s: have %d, want %d",
			f.name(), len(e.Args), sig.NumParams())
	}

	for i, arg := range e.Args {
		var y operand
		c.expr(&y, arg)
		p := sig.Param(i)
		c.assignment(&y, p.Type(), fmt.Sprintf("argument %s to %s", p.Name(), f.name()))
	}

	c.funcBody(f)

	x.pos = e.Pos()
	x.expr = e
	if r := c.resultOf(f); r != nil {
		x.setValue(r)
	} else {
		x.setNoValue()
	}
}

// resultOf returns the result type of f as seen by a caller: a
// placeholder while f or a function its result depends on is in
// progress, the final type otherwise, and nil for no result.
func (c *Checker) resultOf(f *funcInfo) types.Type {
	if f.obj.InProgress() {
		return types.NewPending(f.obj)
	}
	r := f.obj.Signature().Result()
	if !types.IsPending(r) {
		return r
	}
	t, blocked, ok := types.Resolve(r)
	switch {
	case ok:
		return t
	case blocked.InProgress():
		return types.NewPending(blocked)
	}
	c.errorf(TypeMismatch, f.decl.Pos(),
		"cannot infer return type of %s: every return depends on its own result", f.name())
	return nil
}
