package types2

import (
	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// funcInfo is the function table entry for one declared function.
type funcInfo struct {
	obj  *types.FuncObj
	decl *syntax.FuncDecl

	returns []returnInfo
}

// returnInfo describes one return statement of a body.
type returnInfo struct {
	pos  syntax.Pos
	expr syntax.Expr
	typ  types.Type // nil for a bare return
}

func (f *funcInfo) name() string {
	return f.obj.Name()
}

// collectFuncs registers the signature of every function declared in
// the file before any statement is checked.
func (c *Checker) collectFuncs(list []syntax.Stmt) {
	for _, s := range list {
		decl, ok := s.(*syntax.FuncDecl)
		if !ok {
			continue
		}
		name := decl.Name.Value
		if prev := c.funcs[name]; prev != nil {
			c.errorf(Redeclaration, decl.Pos(), "function %s redeclared (previous declaration at %s)",
				name, prev.decl.Pos())
		}

		params := make([]*types.Var, len(decl.Params))
		for i, p := range decl.Params {
			params[i] = types.NewVar(p.Name.Pos(), p.Name.Value, types.DeclaredType(p.Type.Tok))
		}

		f := &funcInfo{
			obj:  types.NewFuncObj(decl.Pos(), name, types.NewFunc(params), len(c.order)),
			decl: decl,
		}
		c.funcs[name] = f
		c.decls[decl] = f
		c.order = append(c.order, f)
		c.recordDef(decl.Name, f.obj)
	}
}

// lookupFunc resolves the callee of a call in the function table. Any
// function of the file may be called from anywhere, including top-level
// code above its declaration.
func (c *Checker) lookupFunc(name *syntax.Name) *funcInfo {
	f := c.funcs[name.Value]
	if f == nil {
		c.errorf(UndefinedFunction, name.Pos(), "undefined function: %s", name.Value)
	}
	c.recordUse(name, f.obj)
	return f
}
