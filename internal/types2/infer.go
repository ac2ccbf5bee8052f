package types2

import (
	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// A delayedCheck is a check of an operand whose type is the pending
// result of a function body still in progress.
type delayedCheck struct {
	typ   *types.Pending
	pos   syntax.Pos
	expr  syntax.Expr
	check func(t types.Type)
}

// use runs check on x's type now if it is known, and otherwise once the
// bodies in progress are done. The operand must have a value either way.
func (c *Checker) use(x *operand, check func(t types.Type)) {
	if p, ok := x.typ.(*types.Pending); ok {
		c.later(p, x.pos, x.expr, check)
		return
	}
	check(x.typ)
}

// later queues check for the final type of p.
func (c *Checker) later(p *types.Pending, pos syntax.Pos, expr syntax.Expr, check func(t types.Type)) {
	c.delayed = append(c.delayed, delayedCheck{typ: p, pos: pos, expr: expr, check: check})
}

// settle runs once no function body is in progress. It fixes the result
// of every checked function, runs the delayed checks in the order they
// were queued, and replaces pending types recorded in Info.
func (c *Checker) settle() {
	for _, f := range c.order {
		if f.obj.State() != types.Checked {
			continue
		}
		sig := f.obj.Signature()
		if !types.IsPending(sig.Result()) {
			continue
		}
		r, _, ok := types.Resolve(sig.Result())
		if !ok {
			c.errorf(TypeMismatch, f.decl.Pos(),
				"cannot infer return type of %s: every return depends on its own result", f.name())
		}
		sig.SetResult(r)
	}

	delayed := c.delayed
	c.delayed = nil
	for _, d := range delayed {
		t, _, ok := types.Resolve(d.typ)
		if !ok {
			c.errorf(TypeMismatch, d.pos, "cannot infer type of %s", syntax.ExprString(d.expr))
		}
		if t == nil {
			c.errorf(TypeMismatch, d.pos, "%s (no value) used as value", syntax.ExprString(d.expr))
		}
		d.check(t)
	}

	unresolved := c.unresolved
	c.unresolved = nil
	if c.info == nil {
		return
	}
	for _, e := range unresolved {
		tv := c.info.Types[e]
		if t, _, ok := types.Resolve(tv.Type); ok {
			tv.Type = t
			if t == nil {
				tv.mode = novalue
			}
			c.info.Types[e] = tv
		}
	}
}
