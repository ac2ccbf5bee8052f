package types

import "github.com/you-not-fish/simplelang/internal/syntax"

// Object represents a declared entity: a variable or a function.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope (nil for functions)

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Var represents a variable or a function parameter.
type Var struct {
	object
	depth int // depth of the declaring frame, -1 until declared
}

// NewVar creates a new variable object.
func NewVar(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, depth: -1}
}

// Depth returns the depth of the frame the variable was declared in.
// The outermost frame of a stack has depth 0.
func (v *Var) Depth() int {
	return v.depth
}

// SetType sets the variable's type.
func (v *Var) SetType(typ Type) {
	v.typ = typ
}

// FuncState tracks how far a function body has been checked.
type FuncState int

const (
	Unchecked FuncState = iota
	Checking            // body is being checked; its result is not yet known
	Checked
)

// FuncObj represents a declared function.
type FuncObj struct {
	object
	sig   *Func
	state FuncState
	order int // index among the file's functions, in source order
}

// NewFuncObj creates a new function object with the given signature.
func NewFuncObj(pos syntax.Pos, name string, sig *Func, order int) *FuncObj {
	return &FuncObj{object: object{name: name, typ: sig, pos: pos}, sig: sig, order: order}
}

// Signature returns the function signature.
func (f *FuncObj) Signature() *Func {
	return f.sig
}

// Order returns the function's index in declaration order.
func (f *FuncObj) Order() int {
	return f.order
}

// State returns the checking state of the function body.
func (f *FuncObj) State() FuncState {
	return f.state
}

// SetState records the checking state of the function body.
func (f *FuncObj) SetState(s FuncState) {
	f.state = s
}

// InProgress reports whether the function body is being checked.
func (f *FuncObj) InProgress() bool {
	return f.state == Checking
}
