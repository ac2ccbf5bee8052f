package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/simplelang/internal/syntax"
)

// Scope is one frame of the scope stack: the names declared directly
// within one block, loop body, or function body. Frames also form a tree
// through their parents, which is kept for debugging output.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]Object
	order    []Object // elems in declaration order
	pos      syntax.Pos
	comment  string // debugging comment (e.g., "function foo", "block")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, pos syntax.Pos, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		pos:     pos,
		comment: comment,
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the parent scope, or nil for an outermost frame.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Children returns the list of child scopes.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Pos returns the start position of the scope in source.
func (s *Scope) Pos() syntax.Pos {
	return s.pos
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the object with the given name in this scope only.
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent returns the object with the given name by searching
// from this scope up through its parents, and the scope it was found in.
// It returns (nil, nil) if the name is not found.
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// Insert inserts an object into the scope.
// If an object with the same name already exists, returns the existing object.
// Otherwise, returns nil.
func (s *Scope) Insert(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	s.order = append(s.order, obj)
	obj.setParent(s)
	return nil
}

// Objects returns the objects of the scope in declaration order.
func (s *Scope) Objects() []Object {
	return s.order
}

// Names returns the names of all objects in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumObjects returns the number of objects in the scope.
func (s *Scope) NumObjects() int {
	return len(s.elems)
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		obj := s.elems[name]
		fmt.Fprintf(buf, "%s  %s: %s\n", prefix, name, obj.Type())
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}

// ----------------------------------------------------------------------------
// Stack

// Stack is an ordered stack of scope frames. Lookups walk the frames from
// the innermost outwards, so inner declarations shadow outer ones.
// A Stack is owned by a single check and is not safe for concurrent use.
type Stack struct {
	frames []*Scope
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push opens a new innermost frame and returns it.
func (st *Stack) Push(pos syntax.Pos, comment string) *Scope {
	s := NewScope(st.Top(), pos, comment)
	st.frames = append(st.frames, s)
	return s
}

// Pop discards the innermost frame and its symbols and returns it.
// Popping an empty stack panics.
func (st *Stack) Pop() *Scope {
	n := len(st.frames)
	if n == 0 {
		panic("types: pop of empty scope stack")
	}
	s := st.frames[n-1]
	st.frames[n-1] = nil
	st.frames = st.frames[:n-1]
	return s
}

// Top returns the innermost frame, or nil if the stack is empty.
func (st *Stack) Top() *Scope {
	if len(st.frames) == 0 {
		return nil
	}
	return st.frames[len(st.frames)-1]
}

// Depth returns the number of frames on the stack.
func (st *Stack) Depth() int {
	return len(st.frames)
}

// Declare inserts obj into the innermost frame. If the name is already
// declared in that frame, the existing object is returned and obj is not
// inserted. Outer frames are not consulted, so shadowing is allowed.
func (st *Stack) Declare(obj Object) Object {
	top := st.Top()
	if top == nil {
		panic("types: declare on empty scope stack")
	}
	if existing := top.Insert(obj); existing != nil {
		return existing
	}
	if v, ok := obj.(*Var); ok {
		v.depth = len(st.frames) - 1
	}
	return nil
}

// Resolve looks name up from the innermost frame outwards and returns the
// first match with the depth of its frame. It returns (nil, -1) if the
// name is not declared in any frame.
func (st *Stack) Resolve(name string) (Object, int) {
	for i := len(st.frames) - 1; i >= 0; i-- {
		if obj := st.frames[i].Lookup(name); obj != nil {
			return obj, i
		}
	}
	return nil, -1
}
