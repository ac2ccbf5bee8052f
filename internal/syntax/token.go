// Package syntax implements lexical and syntactic analysis for SimpleLang.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of file
	_Error              // lexical error

	// Literals
	_Name    // identifier: foo, board, isSafe
	_Literal // integer literal: 0, 42

	// Operators (ordered by precedence, low to high)
	_Assign // =

	// Logical operators
	_OrOr   // ||
	_AndAnd // &&

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Additive operators
	_Add // +
	_Sub // -

	// Multiplicative operators
	_Mul // *
	_Div // /
	_Rem // %

	// Unary operators
	_Not // !

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;

	// Keywords
	_Bool
	_Else
	_False
	_Function
	_If
	_Int
	_Print
	_Return
	_True
	_While

	tokenCount
)

var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign: "=",

	_OrOr:   "||",
	_AndAnd: "&&",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",

	_Mul: "*",
	_Div: "/",
	_Rem: "%",

	_Not: "!",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",

	_Bool:     "bool",
	_Else:     "else",
	_False:    "false",
	_Function: "function",
	_If:       "if",
	_Int:      "int",
	_Print:    "print",
	_Return:   "return",
	_True:     "true",
	_While:    "while",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: ||
//	2: &&
//	3: == != < <= > >=
//	4: + -
//	5: * / %
func (t Token) Precedence() int {
	switch t {
	case _OrOr:
		return 1
	case _AndAnd:
		return 2
	case _Eql, _Neq, _Lss, _Leq, _Gtr, _Geq:
		return 3
	case _Add, _Sub:
		return 4
	case _Mul, _Div, _Rem:
		return 5
	}
	return 0
}

// OpClass groups operators by the typing rule that applies to them.
type OpClass uint8

const (
	NoClass    OpClass = iota
	Arithmetic         // + - * / % and unary -
	Comparison         // == != < <= > >=
	Logical            // && || and unary !
)

// Class returns the operator class of t.
func (t Token) Class() OpClass {
	switch t {
	case _Add, _Sub, _Mul, _Div, _Rem:
		return Arithmetic
	case _Eql, _Neq, _Lss, _Leq, _Gtr, _Geq:
		return Comparison
	case _AndAnd, _OrOr, _Not:
		return Logical
	}
	return NoClass
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Bool && t <= _While
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Not
}

// IsTypeKeyword reports whether t names a declared type (int or bool).
func (t Token) IsTypeKeyword() bool {
	return t == _Int || t == _Bool
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Exported operator tokens for the checker and code generator.
const (
	Add    Token = _Add    // +
	Sub    Token = _Sub    // -
	Mul    Token = _Mul    // *
	Div    Token = _Div    // /
	Rem    Token = _Rem    // %
	Eql    Token = _Eql    // ==
	Neq    Token = _Neq    // !=
	Lss    Token = _Lss    // <
	Leq    Token = _Leq    // <=
	Gtr    Token = _Gtr    // >
	Geq    Token = _Geq    // >=
	AndAnd Token = _AndAnd // &&
	OrOr   Token = _OrOr   // ||
	Not    Token = _Not    // !

	Int  Token = _Int  // int
	Bool Token = _Bool // bool
)

// LitKind represents the kind of a literal.
type LitKind uint8

const (
	IntLit  LitKind = iota // 123
	BoolLit                // true, false
)

var litKindNames = [...]string{
	IntLit:  "int",
	BoolLit: "bool",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= BoolLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
// The type names int and bool are keywords in SimpleLang.
var keywords = map[string]Token{
	"bool":     _Bool,
	"else":     _Else,
	"false":    _False,
	"function": _Function,
	"if":       _If,
	"int":      _Int,
	"print":    _Print,
	"return":   _Return,
	"true":     _True,
	"while":    _While,
}

// LookupKeyword returns the keyword token for ident, or _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// Item is one token of the token stream consumed by the parser.
type Item struct {
	Tok Token  // token kind
	Lit string // literal text (identifier name, digits, operator spelling)
	Pos Pos    // start position
}

func (it Item) String() string {
	return fmt.Sprintf("%s %s %q", it.Pos, it.Tok, it.Lit)
}
