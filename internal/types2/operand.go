package types2

import (
	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// operandMode describes the mode of an operand.
type operandMode int

const (
	invalid  operandMode = iota // operand is invalid
	novalue                     // operand has no value (call of a function without result)
	variable                    // operand is an assignable variable or element
	value                       // operand is a computed value
)

// operand represents the result of evaluating an expression.
type operand struct {
	mode operandMode
	pos  syntax.Pos
	typ  types.Type
	expr syntax.Expr // source expression (for error reporting)
}

// String returns a string representation of the operand for debugging.
func (x *operand) String() string {
	switch {
	case x.mode == invalid:
		return "invalid operand"
	case x.mode == novalue:
		return "no value"
	case x.typ == nil:
		return "operand without type"
	}
	return x.typ.String()
}

// setVar sets the operand to a variable.
func (x *operand) setVar(typ types.Type) {
	x.mode = variable
	x.typ = typ
}

// setValue sets the operand to a computed value.
func (x *operand) setValue(typ types.Type) {
	x.mode = value
	x.typ = typ
}

// setNoValue marks the operand as a call without result.
func (x *operand) setNoValue() {
	x.mode = novalue
	x.typ = nil
}

// pending reports whether the operand's type is not known yet.
func (x *operand) pending() bool {
	return types.IsPending(x.typ)
}
