package types2

import (
	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// varDecl checks a variable declaration. An int variable initialized
// with an array is recorded as an int array.
func (c *Checker) varDecl(decl *syntax.VarDecl) {
	T := types.DeclaredType(decl.Type.Tok)

	var x operand
	c.expr(&x, decl.Value)
	c.assignment(&x, T, "declaration of "+decl.Name.Value)

	if types.IsInt(T) && types.IsArray(x.typ) {
		T = types.IntArray
	}

	obj := types.NewVar(decl.Name.Pos(), decl.Name.Value, T)
	c.declare(decl.Name, obj, decl.Pos())
}

// funcDecl handles a function declaration reached by the top-level
// statements. The body may already have been checked on behalf of an
// earlier call.
func (c *Checker) funcDecl(decl *syntax.FuncDecl) {
	c.funcBody(c.decls[decl])
}

// funcBody checks the body of f unless that has already started, and
// infers f's result type from its return statements.
func (c *Checker) funcBody(f *funcInfo) {
	if f.obj.State() != types.Unchecked {
		return
	}
	f.obj.SetState(types.Checking)

	c.bodyStmts(f)
	c.inferResult(f)

	f.obj.SetState(types.Checked)
	if c.fn == nil {
		// No body is in progress anymore, so every placeholder can be
		// replaced by a final type.
		c.settle()
	}
}

// bodyStmts checks the statements of f's body on a fresh scope stack:
// a body sees its parameters and its own locals only. Parameters and
// top-level locals of the body share one frame.
func (c *Checker) bodyStmts(f *funcInfo) {
	outerScopes, outerFn := c.scopes, c.fn
	c.scopes, c.fn = types.NewStack(), f
	defer func() {
		c.scopes, c.fn = outerScopes, outerFn
	}()

	s := c.openScope(f.decl, "function "+f.name())
	defer c.closeScope()
	c.recordScope(f.decl.Body, s)

	sig := f.obj.Signature()
	for i, p := range f.decl.Params {
		c.declare(p.Name, sig.Param(i), p.Pos())
	}

	c.stmtList(f.decl.Body.Stmts)
}

// returnStmt records a return statement of the current function. All
// returns of a function must agree: either all are bare, or all return
// values of identical type. Unlike declarations, int and int[] results
// do not mix.
func (c *Checker) returnStmt(s *syntax.ReturnStmt) {
	f := c.fn
	if f == nil {
		c.errorf(TypeMismatch, s.Pos(), "return outside function")
	}

	r := returnInfo{pos: s.Pos(), expr: s.Result}
	if s.Result != nil {
		var x operand
		c.expr(&x, s.Result)
		r.typ = x.typ
	}

	for _, prev := range f.returns {
		switch {
		case (prev.typ == nil) != (r.typ == nil):
			if r.typ == nil {
				c.errorf(TypeMismatch, s.Pos(), "missing return value in %s (return at %s has a value)",
					f.name(), prev.pos)
			}
			c.errorf(TypeMismatch, s.Pos(), "unexpected return value in %s (return at %s has none)",
				f.name(), prev.pos)

		case r.typ != nil && !r.pending() && prev.typ != nil && !prev.pending() &&
			!types.Identical(r.typ, prev.typ):
			c.errorf(TypeMismatch, s.Pos(), "cannot return %s (%s) from %s: return at %s has type %s",
				syntax.ExprString(s.Result), r.typ, f.name(), prev.pos, prev.typ)
		}
	}

	f.returns = append(f.returns, r)
}

func (r returnInfo) pending() bool {
	return types.IsPending(r.typ)
}

// inferResult sets f's result from its returns once the body is done.
//
// Returns of f's own pending result (recursive calls) carry no
// information and are skipped. If a concrete type was returned, it is
// the result and the remaining pending returns must agree with it once
// known. Otherwise, if f only returns the pending result of another
// function, f's result is that placeholder. A function that only ever
// returns its own result gets itself as placeholder, which settle
// reports as uninferable.
func (c *Checker) inferResult(f *funcInfo) {
	var result types.Type
	var own *types.Pending
	for _, r := range f.returns {
		if r.typ == nil {
			continue
		}
		if p, ok := r.typ.(*types.Pending); ok {
			if p.Fn == f.obj {
				own = p
			}
			continue
		}
		if result == nil {
			result = r.typ
		}
	}

	if result == nil {
		for _, r := range f.returns {
			if p, ok := r.typ.(*types.Pending); ok && p.Fn != f.obj {
				result = p
				break
			}
		}
	}
	if result == nil && own != nil {
		result = own
	}

	sig := f.obj.Signature()
	sig.SetResult(result)

	for _, r := range f.returns {
		p, ok := r.typ.(*types.Pending)
		if !ok || p.Fn == f.obj {
			continue
		}
		r := r
		c.later(p, r.pos, r.expr, func(t types.Type) {
			want, _, _ := types.Resolve(sig.Result())
			if want != nil && !types.Identical(t, want) {
				c.errorf(TypeMismatch, r.pos, "cannot return %s (%s) from %s: result type is %s",
					syntax.ExprString(r.expr), t, f.name(), want)
			}
		})
	}
}
