package types

import (
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------------
// Array

// Array represents an array of int. Lengths are not part of the type.
type Array struct {
	typ
	elem Type
}

// IntArray is the only array type of the language.
var IntArray = &Array{elem: Typ[Int]}

// Elem returns the element type.
func (a *Array) Elem() Type {
	return a.elem
}

// Underlying implements Type.
func (a *Array) Underlying() Type {
	return a
}

// String implements Type.
func (a *Array) String() string {
	return a.elem.String() + "[]"
}

// ----------------------------------------------------------------------------
// Func

// Func represents a function signature. The result is inferred from the
// body; a nil result means the function returns no value.
type Func struct {
	typ
	params []*Var
	result Type
}

// NewFunc creates a new signature with no result.
func NewFunc(params []*Var) *Func {
	return &Func{params: params}
}

// Params returns the parameter list.
func (f *Func) Params() []*Var {
	return f.params
}

// NumParams returns the number of parameters.
func (f *Func) NumParams() int {
	return len(f.params)
}

// Param returns the i'th parameter.
func (f *Func) Param(i int) *Var {
	return f.params[i]
}

// Result returns the inferred result type, or nil for no value.
func (f *Func) Result() Type {
	return f.result
}

// SetResult sets the inferred result type.
func (f *Func) SetResult(t Type) {
	f.result = t
}

// Underlying implements Type.
func (f *Func) Underlying() Type {
	return f
}

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	buf.WriteString("function(")
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Type().String())
	}
	buf.WriteString(")")
	if f.result != nil {
		buf.WriteString(" ")
		buf.WriteString(f.result.String())
	}
	return buf.String()
}

// ----------------------------------------------------------------------------
// Pending

// Pending stands for the result of a function whose body is still being
// checked, as happens for recursive calls. It is replaced by the
// function's result once every body in progress is done; see Resolve.
type Pending struct {
	typ
	Fn *FuncObj
}

// NewPending returns a placeholder for fn's result.
func NewPending(fn *FuncObj) *Pending {
	return &Pending{Fn: fn}
}

// Underlying implements Type.
func (p *Pending) Underlying() Type {
	return p
}

// String implements Type.
func (p *Pending) String() string {
	return fmt.Sprintf("result of %s", p.Fn.Name())
}

// Resolve follows placeholders until it reaches a concrete type.
// It returns nil when the chain ends in a function without a result, and
// ok=false when the chain is cyclic or still depends on a function in
// progress (blocked reports which).
func Resolve(t Type) (r Type, blocked *FuncObj, ok bool) {
	seen := make(map[*FuncObj]bool)
	for {
		p, isPending := t.(*Pending)
		if !isPending {
			return t, nil, true
		}
		if seen[p.Fn] || p.Fn.InProgress() {
			return p, p.Fn, false
		}
		seen[p.Fn] = true
		t = p.Fn.Signature().Result()
	}
}
