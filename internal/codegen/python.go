// Package codegen translates a checked SimpleLang file into an
// equivalent Python 3 program.
package codegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
	"github.com/you-not-fish/simplelang/internal/types2"
)

// Runtime helpers. Python's // and % round towards negative infinity;
// SimpleLang division truncates towards zero.
const (
	divHelper = "_sl_div"
	modHelper = "_sl_mod"
)

var divHelperSrc = []string{
	"def " + divHelper + "(a: int, b: int) -> int:",
	indentUnit + "q = abs(a) // abs(b)",
	indentUnit + "return q if (a < 0) == (b < 0) else -q",
}

var modHelperSrc = []string{
	"def " + modHelper + "(a: int, b: int) -> int:",
	indentUnit + "r = abs(a) % abs(b)",
	indentUnit + "return r if a >= 0 else -r",
}

// generator holds the state for generating one Python module.
type generator struct {
	e    emitter
	info *types2.Info

	names  map[types.Object]string // Python name of every variable and function
	module *namespace
	ns     *namespace // namespace of the code being generated
}

// Generate writes the Python program for file to w. The file must have
// passed types2.Check with info, which supplies the objects and final
// types the generator relies on.
//
// Function definitions are emitted first, followed by the top-level
// statements in source order. Bodies cannot refer to top-level
// variables, so hoisting the definitions does not change behavior and
// lets a body call a function declared further down.
func Generate(w io.Writer, file *syntax.File, info *types2.Info) error {
	g := &generator{
		e:      emitter{w: w},
		info:   info,
		names:  make(map[types.Object]string),
		module: newNamespace(nil),
	}
	g.ns = g.module
	g.file(file)
	return g.e.err
}

func (g *generator) file(file *syntax.File) {
	g.e.emitComment(fmt.Sprintf("Code generated by slc from %s. DO NOT EDIT.", file.Name))

	div, mod := usesDivision(file)
	if div {
		g.helper(divHelperSrc)
	}
	if mod {
		g.helper(modHelperSrc)
	}

	var funcs []*syntax.FuncDecl
	for _, s := range file.Stmts {
		if decl, ok := s.(*syntax.FuncDecl); ok {
			funcs = append(funcs, decl)
			g.names[g.info.Defs[decl.Name]] = g.module.unique(decl.Name.Value)
		}
	}
	for _, decl := range funcs {
		g.e.emitLine()
		g.e.emitLine()
		g.funcDecl(decl)
	}

	if len(funcs) > 0 || div || mod {
		g.e.emitLine()
		g.e.emitLine()
	}
	g.ns = g.module
	g.stmtList(file.Stmts)
}

func (g *generator) helper(src []string) {
	g.e.emitLine()
	g.e.emitLine()
	for _, line := range src {
		g.e.emit("%s", line)
	}
}

// usesDivision reports whether the file contains / and % operations.
func usesDivision(file *syntax.File) (div, mod bool) {
	syntax.Inspect(file, func(n syntax.Node) bool {
		if op, ok := n.(*syntax.Operation); ok && op.Y != nil {
			switch op.Op {
			case syntax.Div:
				div = true
			case syntax.Rem:
				mod = true
			}
		}
		return true
	})
	return
}

// funcDecl emits a function definition. Locals of the body live in a
// namespace of their own that keeps every function name visible.
func (g *generator) funcDecl(decl *syntax.FuncDecl) {
	fn := g.info.Defs[decl.Name].(*types.FuncObj)
	g.ns = newNamespace(g.module)
	defer func() { g.ns = g.module }()

	params := make([]string, len(decl.Params))
	for i, p := range decl.Params {
		name := g.declare(p.Name)
		params[i] = name + ": " + pyType(fn.Signature().Param(i).Type())
	}

	result := ""
	if r := fn.Signature().Result(); r != nil {
		result = " -> " + pyType(r)
	}
	g.e.emit("def %s(%s)%s:", g.names[fn], strings.Join(params, ", "), result)
	g.e.block(func() {
		g.stmtList(decl.Body.Stmts)
	})
}

// declare assigns a Python name to the object defined by name.
func (g *generator) declare(name *syntax.Name) string {
	obj := g.info.Defs[name]
	n := g.ns.unique(name.Value)
	g.names[obj] = n
	return n
}

// pyType returns the Python annotation for t.
func pyType(t types.Type) string {
	switch {
	case types.IsArray(t):
		return "list[int]"
	case types.IsBool(t):
		return "bool"
	}
	return "int"
}

// ----------------------------------------------------------------------------
// Statements

func (g *generator) stmtList(list []syntax.Stmt) {
	for _, s := range list {
		g.stmt(s)
	}
}

func (g *generator) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.FuncDecl:
		// emitted ahead of the top-level statements

	case *syntax.VarDecl:
		value := g.bare(s.Value)
		obj := g.info.Defs[s.Name]
		g.e.emit("%s: %s = %s", g.declare(s.Name), pyType(obj.Type()), value)

	case *syntax.AssignStmt:
		g.e.emit("%s = %s", g.expr(s.LHS), g.bare(s.RHS))

	case *syntax.ExprStmt:
		g.e.emit("%s", g.expr(s.X))

	case *syntax.BlockStmt:
		// Python has no block scope; declarations were renamed apart.
		g.stmtList(s.Stmts)

	case *syntax.IfStmt:
		g.ifStmt(s, "if")

	case *syntax.WhileStmt:
		g.e.emit("while %s:", g.bare(s.Cond))
		g.e.block(func() { g.stmtList(s.Body.Stmts) })

	case *syntax.ReturnStmt:
		if s.Result == nil {
			g.e.emit("return")
		} else {
			g.e.emit("return %s", g.bare(s.Result))
		}

	case *syntax.PrintStmt:
		x := g.bare(s.X)
		if types.IsBool(g.info.TypeOf(s.X)) {
			x = fmt.Sprintf(`"true" if %s else "false"`, x)
		}
		g.e.emit("print(%s)", x)

	default:
		panic(fmt.Sprintf("codegen: unexpected statement %T at %s", s, s.Pos()))
	}
}

// ifStmt emits an if statement. An else block holding nothing but
// another if statement becomes an elif clause.
func (g *generator) ifStmt(s *syntax.IfStmt, keyword string) {
	g.e.emit("%s %s:", keyword, g.bare(s.Cond))
	g.e.block(func() { g.stmtList(s.Then.Stmts) })

	if s.Else == nil {
		return
	}
	if len(s.Else.Stmts) == 1 {
		if elif, ok := s.Else.Stmts[0].(*syntax.IfStmt); ok {
			g.ifStmt(elif, "elif")
			return
		}
	}
	g.e.emit("else:")
	g.e.block(func() { g.stmtList(s.Else.Stmts) })
}

// ----------------------------------------------------------------------------
// Expressions

var pyOps = map[syntax.Token]string{
	syntax.Add:    "+",
	syntax.Sub:    "-",
	syntax.Mul:    "*",
	syntax.Eql:    "==",
	syntax.Neq:    "!=",
	syntax.Lss:    "<",
	syntax.Leq:    "<=",
	syntax.Gtr:    ">",
	syntax.Geq:    ">=",
	syntax.AndAnd: "and",
	syntax.OrOr:   "or",
}

// expr returns the Python text of e. Operations are fully
// parenthesized, so Python's precedence and comparison chaining never
// come into play.
func (g *generator) expr(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Name:
		return g.names[g.info.Uses[e]]

	case *syntax.BasicLit:
		if e.Kind == syntax.BoolLit {
			if e.Value == "true" {
				return "True"
			}
			return "False"
		}
		// The operand of a negation may be 1<<63.
		v, err := strconv.ParseUint(e.Value, 10, 64)
		if err != nil {
			panic("codegen: invalid integer literal " + e.Value)
		}
		return strconv.FormatUint(v, 10)

	case *syntax.Operation:
		if e.Y == nil {
			if e.Op == syntax.Not {
				return "(not " + g.expr(e.X) + ")"
			}
			return "(-" + g.expr(e.X) + ")"
		}
		switch e.Op {
		case syntax.Div:
			return divHelper + "(" + g.bare(e.X) + ", " + g.bare(e.Y) + ")"
		case syntax.Rem:
			return modHelper + "(" + g.bare(e.X) + ", " + g.bare(e.Y) + ")"
		}
		return "(" + g.expr(e.X) + " " + pyOps[e.Op] + " " + g.expr(e.Y) + ")"

	case *syntax.CallExpr:
		return g.names[g.info.Uses[e.Fun]] + "(" + g.exprList(e.Args) + ")"

	case *syntax.IndexExpr:
		return g.expr(e.X) + "[" + g.bare(e.Index) + "]"

	case *syntax.ParenExpr:
		return g.expr(e.X)

	case *syntax.ArrayLit:
		return "[" + g.exprList(e.Elems) + "]"
	}
	panic(fmt.Sprintf("codegen: unexpected expression %T at %s", e, e.Pos()))
}

// bare returns the Python text of e without the parentheses enclosing
// an operation, for positions that delimit the expression anyway.
func (g *generator) bare(e syntax.Expr) string {
	s := g.expr(e)
	if op, ok := syntax.Unparen(e).(*syntax.Operation); ok && !isHelperOp(op) {
		return s[1 : len(s)-1]
	}
	return s
}

func isHelperOp(op *syntax.Operation) bool {
	return op.Y != nil && (op.Op == syntax.Div || op.Op == syntax.Rem)
}

func (g *generator) exprList(list []syntax.Expr) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = g.bare(e)
	}
	return strings.Join(parts, ", ")
}
