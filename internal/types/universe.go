package types

import "github.com/you-not-fish/simplelang/internal/syntax"

// NoPos is the zero position value.
var NoPos syntax.Pos

// keywordTypes maps the type keywords to the types they declare.
// An int declaration starts out as a scalar; the checker refines it to
// IntArray when the initializer is an array.
var keywordTypes = map[syntax.Token]Type{
	syntax.Int:  Typ[Int],
	syntax.Bool: Typ[Bool],
}

// DeclaredType returns the type named by a type keyword, or nil.
func DeclaredType(tok syntax.Token) Type {
	return keywordTypes[tok]
}
