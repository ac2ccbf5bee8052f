package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Nodes are either expressions or statements. A function declaration is a
// statement that may only appear at the top level of a File.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program

// File is the root of the tree: the ordered top-level statements and
// function declarations of one source file.
type File struct {
	node
	Name  string // source file name
	Stmts []Stmt
}

// ----------------------------------------------------------------------------
// Declarations

// FuncDecl represents: function Name(Params) Body
// The result type is not written; the checker infers it from the body.
type FuncDecl struct {
	stmt
	Name   *Name
	Params []*Field
	Body   *BlockStmt
}

// Field is one function parameter: Type Name.
type Field struct {
	node
	Type *TypeName
	Name *Name
}

// TypeName is a written type keyword (int or bool).
type TypeName struct {
	node
	Tok Token // _Int or _Bool
}

// VarDecl represents: Type Name = Value;
type VarDecl struct {
	stmt
	Type  *TypeName
	Name  *Name
	Value Expr
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// BasicLit represents an integer or boolean literal.
type BasicLit struct {
	expr
	Value string // literal text: "42", "true"
	Kind  LitKind
}

// Operation represents a unary or binary operation.
// For unary operations, Y is nil.
type Operation struct {
	expr
	Op Token
	X  Expr // left operand (or only operand for unary)
	Y  Expr // right operand (nil for unary)
}

// CallExpr represents a function call: Fun(Args...)
type CallExpr struct {
	expr
	Fun  *Name
	Args []Expr
}

// IndexExpr represents X[Index]. The parser only produces a *Name base.
type IndexExpr struct {
	expr
	X     Expr
	Index Expr
}

// ParenExpr represents a parenthesized expression: (X)
type ParenExpr struct {
	expr
	X Expr
}

// ArrayLit represents an array literal: [Elems...]
type ArrayLit struct {
	expr
	Elems []Expr
}

// ----------------------------------------------------------------------------
// Statements

// ExprStmt is a call used as a statement.
type ExprStmt struct {
	stmt
	X *CallExpr
}

// AssignStmt represents Name = RHS or Name[Index] = RHS.
type AssignStmt struct {
	stmt
	LHS Expr // *Name or *IndexExpr
	RHS Expr
}

// BlockStmt represents { Stmts... }
type BlockStmt struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos // position of closing brace
}

// IfStmt represents: if (Cond) Then [else Else]
// An "else if" is represented as an Else block holding a single IfStmt.
type IfStmt struct {
	stmt
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt // nil if absent
}

// WhileStmt represents: while (Cond) Body
type WhileStmt struct {
	stmt
	Cond Expr
	Body *BlockStmt
}

// ReturnStmt represents: return [Result];
type ReturnStmt struct {
	stmt
	Result Expr // nil for bare return
}

// PrintStmt represents: print(X);
type PrintStmt struct {
	stmt
	X Expr
}

// Unparen returns e with any enclosing parentheses removed.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}
