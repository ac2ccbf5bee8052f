package types2

import (
	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// Config specifies the configuration for semantic analysis.
type Config struct {
	// Error is called with the first error, which ends the check.
	// If nil, the error is only returned.
	Error ErrorHandler
}

// Info holds the results of semantic analysis.
type Info struct {
	// Types maps expressions to their types. Calls of functions without
	// a result are recorded with a nil type.
	Types map[syntax.Expr]TypeAndValue

	// Defs maps defining identifiers to their objects: variable and
	// parameter names to *types.Var, function names to *types.FuncObj.
	Defs map[*syntax.Name]types.Object

	// Uses maps referencing identifiers to the objects they denote.
	Uses map[*syntax.Name]types.Object

	// Scopes maps the File, each FuncDecl and its body, and every other
	// BlockStmt to the frame opened for it.
	Scopes map[syntax.Node]*types.Scope
}

// TypeAndValue holds the type information for an expression.
type TypeAndValue struct {
	Type types.Type  // expression type
	mode operandMode // operand mode
}

// IsVoid reports whether the expression is a call without result.
func (tv TypeAndValue) IsVoid() bool {
	return tv.mode == novalue
}

// IsValue reports whether the expression has a value.
func (tv TypeAndValue) IsValue() bool {
	return tv.mode == variable || tv.mode == value
}

// IsAddressable reports whether the expression can be assigned to.
func (tv TypeAndValue) IsAddressable() bool {
	return tv.mode == variable
}

// TypeOf returns the type of e, or nil if none was recorded.
func (info *Info) TypeOf(e syntax.Expr) types.Type {
	return info.Types[e].Type
}

// ObjectOf returns the object denoted by the identifier, or nil.
func (info *Info) ObjectOf(name *syntax.Name) types.Object {
	if obj := info.Defs[name]; obj != nil {
		return obj
	}
	return info.Uses[name]
}

// Check analyzes a parsed file. It stops at the first error, which is
// returned as an *Error. On success info, if not nil, describes every
// expression and name of the file with its final types.
func Check(file *syntax.File, conf *Config, info *Info) (err error) {
	if conf == nil {
		conf = &Config{}
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Types == nil {
			info.Types = make(map[syntax.Expr]TypeAndValue)
		}
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.Object)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]types.Object)
		}
		if info.Scopes == nil {
			info.Scopes = make(map[syntax.Node]*types.Scope)
		}
	}

	c := &Checker{
		conf:  conf,
		info:  info,
		funcs: make(map[string]*funcInfo),
		decls: make(map[*syntax.FuncDecl]*funcInfo),
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			err = c.err
		}
	}()

	c.checkFile(file)
	return nil
}
