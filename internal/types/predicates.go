package types

// Identical reports whether x and y are identical types.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Array:
		if y, ok := y.(*Array); ok {
			return Identical(x.elem, y.elem)
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			return identicalFuncs(x, y)
		}
	case *Pending:
		if y, ok := y.(*Pending); ok {
			return x.Fn == y.Fn
		}
	}
	return false
}

func identicalFuncs(x, y *Func) bool {
	if len(x.params) != len(y.params) {
		return false
	}
	for i := range x.params {
		if !Identical(x.params[i].Type(), y.params[i].Type()) {
			return false
		}
	}

	if (x.result == nil) != (y.result == nil) {
		return false
	}
	return x.result == nil || Identical(x.result, y.result)
}

// AssignableTo reports whether a value of type V may be stored in a
// variable or parameter of type T. The int keyword names both scalars and
// arrays, so int and int[] are assignable to each other.
func AssignableTo(V, T Type) bool {
	if Identical(V, T) {
		return true
	}
	return IsIntFamily(V) && IsIntFamily(T)
}

// IsBool reports whether T is bool.
func IsBool(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.info&IsBoolean != 0
}

// IsInt reports whether T is the scalar int type.
func IsInt(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.info&IsInteger != 0
}

// IsArray reports whether T is an array type.
func IsArray(T Type) bool {
	_, ok := T.(*Array)
	return ok
}

// IsIntFamily reports whether T is declared with the int keyword:
// int or int[].
func IsIntFamily(T Type) bool {
	return IsInt(T) || IsArray(T)
}

// Indexable reports whether a variable of type T may be indexed.
//
// A scalar int is indexable too. Variables and parameters declared int
// may hold arrays after an assignment or call, so only bool is rejected
// statically; indexing an int that holds a scalar fails at run time.
func Indexable(T Type) bool {
	return IsIntFamily(T)
}

// IsPending reports whether T is a placeholder for a result in progress.
func IsPending(T Type) bool {
	_, ok := T.(*Pending)
	return ok
}

// Printable reports whether a value of type T can be printed.
func Printable(T Type) bool {
	switch t := T.(type) {
	case *Basic:
		return t != nil && t.kind != Invalid
	case *Array, *Pending:
		return true
	}
	return false
}
