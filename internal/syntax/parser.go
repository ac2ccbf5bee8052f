package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// SyntaxError represents a lexical or syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error at " + e.Pos.String() + ": " + e.Msg
}

// bailout is panicked to unwind the parser on the first error.
type bailout struct{}

// Parser performs syntax analysis over a token stream.
// It stops at the first syntax error; there is no recovery.
type Parser struct {
	items []Item
	i     int // index of the current item

	// current token (cached from items[i])
	tok Token
	lit string
	pos Pos

	err *SyntaxError

	fnest int // function nesting depth (0 = top level)
	bnest int // block nesting depth (0 = top level)
}

// NewParser creates a parser over items. The stream should end with an
// EOF item; a missing one is synthesized after the last token.
func NewParser(items []Item) *Parser {
	if n := len(items); n == 0 || items[n-1].Tok != _EOF {
		var eof Item
		if n > 0 {
			eof.Pos = items[n-1].Pos
		} else {
			eof.Pos = NewPos("", 1, 1)
		}
		items = append(items[:n:n], eof)
	}
	p := &Parser{items: items, i: -1}
	p.next()
	return p
}

// ParseFile tokenizes and parses src.
func ParseFile(filename string, src io.Reader) (*File, error) {
	items, err := Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	f, err := NewParser(items).Parse()
	if f != nil {
		f.Name = filename
	}
	return f, err
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token. The parser never moves past EOF.
func (p *Parser) next() {
	if p.i < len(p.items)-1 {
		p.i++
	}
	it := p.items[p.i]
	p.tok, p.lit, p.pos = it.Tok, it.Lit, it.Pos
}

// got reports whether the current token is tok, consuming it if so.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes tok or fails.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tokstring(tok) + ", got " + p.found())
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError records the error at the current token and aborts the parse.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	p.err = &SyntaxError{Pos: pos, Msg: msg}
	panic(bailout{})
}

// found describes the current token for error messages.
func (p *Parser) found() string {
	switch p.tok {
	case _Name:
		return "name " + p.lit
	case _Literal:
		return "literal " + p.lit
	case _EOF:
		return "EOF"
	}
	return tokstring(p.tok)
}

func tokstring(tok Token) string {
	switch tok {
	case _Name:
		return "name"
	case _Literal:
		return "literal"
	case _EOF:
		return "EOF"
	}
	return "'" + tok.String() + "'"
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the whole token stream. On failure the returned error is
// a *SyntaxError and the file is nil.
func (p *Parser) Parse() (f *File, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			f, err = nil, p.err
		}
	}()

	f = &File{}
	f.pos = p.pos
	for p.tok != _EOF {
		f.Stmts = append(f.Stmts, p.stmt())
	}
	return f, nil
}

// ----------------------------------------------------------------------------
// Helpers

func (p *Parser) name() *Name {
	if p.tok != _Name {
		p.syntaxError("expected identifier, got " + p.found())
	}
	n := &Name{Value: p.lit}
	n.pos = p.pos
	p.next()
	return n
}

// typeName parses int or bool.
func (p *Parser) typeName() *TypeName {
	if !p.tok.IsTypeKeyword() {
		p.syntaxError("expected type, got " + p.found())
	}
	t := &TypeName{Tok: p.tok}
	t.pos = p.pos
	p.next()
	return t
}

// ----------------------------------------------------------------------------
// Function declarations

// funcDecl parses: function Name(Type name, ...) { body }
func (p *Parser) funcDecl() *FuncDecl {
	d := &FuncDecl{}
	d.pos = p.pos

	if p.bnest > 0 {
		p.syntaxError("function declarations are only allowed at top level")
	}
	p.want(_Function)
	d.Name = p.name()
	d.Params = p.paramList()

	p.fnest++
	d.Body = p.blockStmt()
	p.fnest--

	return d
}

// paramList parses (T1 p1, T2 p2, ...)
func (p *Parser) paramList() []*Field {
	p.want(_Lparen)

	var params []*Field
	if p.tok != _Rparen {
		for {
			f := &Field{}
			f.pos = p.pos
			f.Type = p.typeName()
			f.Name = p.name()
			params = append(params, f)
			if !p.got(_Comma) {
				break
			}
		}
	}

	p.want(_Rparen)
	return params
}

// ----------------------------------------------------------------------------
// Statements

func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Function:
		return p.funcDecl()

	case _Int, _Bool:
		return p.varDecl()

	case _Lbrace:
		return p.blockStmt()

	case _If:
		return p.ifStmt()

	case _While:
		return p.whileStmt()

	case _Return:
		return p.returnStmt()

	case _Print:
		return p.printStmt()

	case _Name:
		return p.simpleStmt()
	}

	p.syntaxError("unexpected " + p.found() + ", expected statement")
	return nil
}

// varDecl parses: Type Name = Value;
func (p *Parser) varDecl() *VarDecl {
	d := &VarDecl{}
	d.pos = p.pos

	d.Type = p.typeName()
	d.Name = p.name()
	p.want(_Assign)
	d.Value = p.expr()
	p.want(_Semi)

	return d
}

// simpleStmt parses a statement starting with an identifier:
// an assignment, an indexed assignment, or a call.
func (p *Parser) simpleStmt() Stmt {
	pos := p.pos
	name := p.name()

	var lhs Expr = name
	switch p.tok {
	case _Lparen:
		s := &ExprStmt{X: p.callExpr(name)}
		s.pos = pos
		p.want(_Semi)
		return s

	case _Lbrack:
		lhs = p.indexExpr(name)
	}

	s := &AssignStmt{LHS: lhs}
	s.pos = pos
	p.want(_Assign)
	s.RHS = p.expr()
	p.want(_Semi)
	return s
}

func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos

	p.want(_Lbrace)
	p.bnest++
	for p.tok != _Rbrace && p.tok != _EOF {
		b.Stmts = append(b.Stmts, p.stmt())
	}
	p.bnest--
	b.Rbrace = p.pos
	p.want(_Rbrace)

	return b
}

// header parses a parenthesized condition: ( expr )
func (p *Parser) header() Expr {
	p.want(_Lparen)
	cond := p.expr()
	p.want(_Rparen)
	return cond
}

// ifStmt parses: if (cond) { then } [else { else } | else if ...]
func (p *Parser) ifStmt() *IfStmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	s.Cond = p.header()
	s.Then = p.blockStmt()

	if p.got(_Else) {
		if p.tok == _If {
			nested := p.ifStmt()
			s.Else = &BlockStmt{Stmts: []Stmt{nested}, Rbrace: p.items[p.i-1].Pos}
			s.Else.pos = nested.Pos()
		} else {
			s.Else = p.blockStmt()
		}
	}

	return s
}

// whileStmt parses: while (cond) { body }
func (p *Parser) whileStmt() *WhileStmt {
	s := &WhileStmt{}
	s.pos = p.pos

	p.want(_While)
	s.Cond = p.header()
	s.Body = p.blockStmt()

	return s
}

// returnStmt parses: return [expr];
func (p *Parser) returnStmt() *ReturnStmt {
	s := &ReturnStmt{}
	s.pos = p.pos

	if p.fnest == 0 {
		p.syntaxError("return outside function")
	}
	p.want(_Return)
	if p.tok != _Semi {
		s.Result = p.expr()
	}
	p.want(_Semi)

	return s
}

// printStmt parses: print(expr);
func (p *Parser) printStmt() *PrintStmt {
	s := &PrintStmt{}
	s.pos = p.pos

	p.want(_Print)
	p.want(_Lparen)
	s.X = p.expr()
	p.want(_Rparen)
	p.want(_Semi)

	return s
}

// ----------------------------------------------------------------------------
// Expressions

func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression whose operators all bind tighter
// than prec. Operators of equal precedence associate to the left.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		op := &Operation{Op: p.tok, X: x}
		op.pos = p.pos
		p.next()

		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses -x, !x, or a primary expression.
func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Sub, _Not:
		op := &Operation{Op: p.tok}
		op.pos = p.pos
		p.next()
		if op.Op == _Sub && p.tok == _Literal {
			// The range of a negated literal includes the minimum int64.
			op.X = p.intLit("-")
			return op
		}
		op.X = p.unaryExpr()
		return op
	}
	return p.operand()
}

// intLit parses an integer literal. sign is the sign it is range
// checked with.
func (p *Parser) intLit(sign string) *BasicLit {
	if _, err := strconv.ParseInt(sign+p.lit, 10, 64); err != nil {
		p.syntaxError(fmt.Sprintf("integer literal %s%s out of range", sign, p.lit))
	}
	lit := &BasicLit{Value: p.lit, Kind: IntLit}
	lit.pos = p.pos
	p.next()
	return lit
}

// operand parses a primary expression.
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Name:
		n := p.name()
		switch p.tok {
		case _Lparen:
			return p.callExpr(n)
		case _Lbrack:
			return p.indexExpr(n)
		}
		return n

	case _Literal:
		return p.intLit("")

	case _True, _False:
		lit := &BasicLit{Value: p.tok.String(), Kind: BoolLit}
		lit.pos = p.pos
		p.next()
		return lit

	case _Lparen:
		paren := &ParenExpr{}
		paren.pos = p.pos
		p.next()
		paren.X = p.expr()
		p.want(_Rparen)
		return paren

	case _Lbrack:
		return p.arrayLit()
	}

	p.syntaxError("unexpected " + p.found() + ", expected expression")
	return nil
}

// callExpr parses (args...) after the function name.
func (p *Parser) callExpr(fun *Name) *CallExpr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		call.Args = p.exprList()
	}
	p.want(_Rparen)

	return call
}

// indexExpr parses [index] after an identifier.
func (p *Parser) indexExpr(x *Name) *IndexExpr {
	idx := &IndexExpr{X: x}
	idx.pos = x.Pos()

	p.want(_Lbrack)
	idx.Index = p.expr()
	p.want(_Rbrack)

	return idx
}

// arrayLit parses [e1, e2, ...]
func (p *Parser) arrayLit() *ArrayLit {
	lit := &ArrayLit{}
	lit.pos = p.pos

	p.want(_Lbrack)
	if p.tok != _Rbrack {
		lit.Elems = p.exprList()
	}
	p.want(_Rbrack)

	return lit
}

func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		list = append(list, p.expr())
	}
	return list
}
