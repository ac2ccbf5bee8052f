package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis on SimpleLang source code.
type Scanner struct {
	source

	tok    Token  // current token
	lit    string // literal text of the current token
	tokPos Pos    // start position of the current token

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	default:
		if s.ch == '/' && s.peek() == '/' {
			s.skipLineComment()
			goto redo
		}
		s.scanOperator()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal text.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Item returns the current token as a stream item.
func (s *Scanner) Item() Item {
	return Item{Tok: s.tok, Lit: s.lit, Pos: s.tokPos}
}

func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a decimal integer literal. Range checking is left
// to the parser, which knows the literal's position in the tree.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = _Literal
}

// scanOperator scans an operator or delimiter. Unknown characters
// produce an _Error token after reporting.
func (s *Scanner) scanOperator() {
	ch := s.ch
	s.nextch()

	// two-character operators
	two := func(second rune, long, short Token) {
		if s.ch == second {
			s.nextch()
			s.tok = long
		} else {
			s.tok = short
		}
		s.lit = s.tok.String()
	}

	switch ch {
	case '+':
		s.tok = _Add
	case '-':
		s.tok = _Sub
	case '*':
		s.tok = _Mul
	case '/':
		s.tok = _Div
	case '%':
		s.tok = _Rem
	case '=':
		two('=', _Eql, _Assign)
		return
	case '!':
		two('=', _Neq, _Not)
		return
	case '<':
		two('=', _Leq, _Lss)
		return
	case '>':
		two('=', _Geq, _Gtr)
		return
	case '&':
		if s.ch != '&' {
			s.errorAt(s.tokPos, "unexpected character '&' (did you mean '&&'?)")
			s.tok, s.lit = _Error, "&"
			return
		}
		s.nextch()
		s.tok = _AndAnd
	case '|':
		if s.ch != '|' {
			s.errorAt(s.tokPos, "unexpected character '|' (did you mean '||'?)")
			s.tok, s.lit = _Error, "|"
			return
		}
		s.nextch()
		s.tok = _OrOr
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case '[':
		s.tok = _Lbrack
	case ']':
		s.tok = _Rbrack
	case '{':
		s.tok = _Lbrace
	case '}':
		s.tok = _Rbrace
	case ',':
		s.tok = _Comma
	case ';':
		s.tok = _Semi
	default:
		s.errorAt(s.tokPos, fmt.Sprintf("unexpected character %q", ch))
		s.tok, s.lit = _Error, string(ch)
		return
	}
	s.lit = s.tok.String()
}

// skipLineComment skips from // to the end of the line.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

func (s *Scanner) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos.Line(), pos.Col(), msg)
	}
}

// Tokenize scans src completely and returns the token stream, ending
// with an EOF item. It stops at the first lexical error.
func Tokenize(filename string, src io.Reader) ([]Item, error) {
	var first *SyntaxError
	errh := func(line, col uint32, msg string) {
		if first == nil {
			first = &SyntaxError{Pos: NewPos(filename, line, col), Msg: msg}
		}
	}

	s := NewScanner(filename, src, errh)
	var items []Item
	for first == nil {
		s.Next()
		items = append(items, s.Item())
		if s.tok == _EOF {
			break
		}
	}
	if first != nil {
		return nil, first
	}
	return items, nil
}
