package types2

import (
	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// Checker is the semantic analyzer. A Checker is used for a single Check
// call; all of its state is discarded afterwards.
type Checker struct {
	conf *Config
	info *Info
	err  *Error // the error that stopped the check

	// scopes is the stack of the code being checked: the file's stack at
	// top level, or a fresh stack for each function body.
	scopes *types.Stack

	// Function table: one flat namespace, separate from variables.
	funcs map[string]*funcInfo
	decls map[*syntax.FuncDecl]*funcInfo
	order []*funcInfo // in source order

	fn *funcInfo // function whose body is being checked, nil at top level

	// Work that waits for function results still being inferred.
	delayed    []delayedCheck
	unresolved []syntax.Expr // expressions recorded with a pending type
}

// checkFile checks the top-level statements in order. Function
// signatures are collected first so that bodies may call functions
// declared later in the file.
func (c *Checker) checkFile(file *syntax.File) {
	c.collectFuncs(file.Stmts)

	c.scopes = types.NewStack()
	c.openScope(file, "file")
	defer c.closeScope()

	c.stmtList(file.Stmts)
	c.settle()
}

// openScope pushes a new frame for n. Callers pair it with a deferred
// closeScope so the frame is popped on every exit path.
func (c *Checker) openScope(n syntax.Node, comment string) *types.Scope {
	s := c.scopes.Push(n.Pos(), comment)
	c.recordScope(n, s)
	return s
}

// closeScope pops the innermost frame.
func (c *Checker) closeScope() {
	c.scopes.Pop()
}

// declare declares obj in the innermost frame. pos is the position of
// the declaration, used when the name is already taken.
func (c *Checker) declare(name *syntax.Name, obj types.Object, pos syntax.Pos) {
	if existing := c.scopes.Declare(obj); existing != nil {
		c.errorf(Redeclaration, pos, "%s redeclared in this block (previous declaration at %s)",
			name.Value, existing.Pos())
	}
	c.recordDef(name, obj)
}

// lookup resolves a variable name through the current stack.
func (c *Checker) lookup(name *syntax.Name) *types.Var {
	obj, _ := c.scopes.Resolve(name.Value)
	v, _ := obj.(*types.Var)
	if v == nil {
		c.errorf(UndefinedVariable, name.Pos(), "undefined variable: %s", name.Value)
	}
	c.recordUse(name, v)
	return v
}

// recordType records the type information for an expression.
func (c *Checker) recordType(e syntax.Expr, x *operand) {
	if x.pending() {
		c.unresolved = append(c.unresolved, e)
	}
	if c.info == nil {
		return
	}
	c.info.Types[e] = TypeAndValue{Type: x.typ, mode: x.mode}
}

func (c *Checker) recordDef(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Defs[name] = obj
	}
}

func (c *Checker) recordUse(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}

func (c *Checker) recordScope(n syntax.Node, s *types.Scope) {
	if c.info != nil {
		c.info.Scopes[n] = s
	}
}
