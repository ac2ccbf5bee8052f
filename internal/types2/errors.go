// Package types2 implements semantic analysis for SimpleLang: name
// resolution over a stack of scopes, type checking, and inference of
// function result types from their bodies.
package types2

import (
	"fmt"

	"github.com/you-not-fish/simplelang/internal/syntax"
)

// ErrorKind classifies a semantic error.
type ErrorKind int

const (
	_ ErrorKind = iota
	Redeclaration
	UndefinedVariable
	UndefinedFunction
	TypeMismatch
	ArityMismatch
	InvalidConditionType
	IndexOnNonArray
)

var errorKindNames = [...]string{
	Redeclaration:        "Redeclaration",
	UndefinedVariable:    "UndefinedVariable",
	UndefinedFunction:    "UndefinedFunction",
	TypeMismatch:         "TypeMismatch",
	ArityMismatch:        "ArityMismatch",
	InvalidConditionType: "InvalidConditionType",
	IndexOnNonArray:      "IndexOnNonArray",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error describes a semantic error.
type Error struct {
	Kind ErrorKind
	Pos  syntax.Pos
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "semantic error at " + e.Pos.String() + ": " + e.Msg
}

// ErrorHandler is called with the error that stops a check.
type ErrorHandler func(err *Error)

// bailout is panicked to unwind the checker on the first error.
type bailout struct{}

// errorf records the error, reports it to the configured handler and
// aborts the check.
func (c *Checker) errorf(kind ErrorKind, pos syntax.Pos, format string, args ...interface{}) {
	c.err = &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
	if c.conf.Error != nil {
		c.conf.Error(c.err)
	}
	panic(bailout{})
}

// invalidOp reports a mismatched operand of op.
func (c *Checker) invalidOp(x *operand, op syntax.Token, want string, got fmt.Stringer) {
	c.errorf(TypeMismatch, x.pos, "invalid operation: operator %s expects %s operands, got %s (%s)",
		op, want, syntax.ExprString(x.expr), got)
}
