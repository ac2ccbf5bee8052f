package syntax

import (
	"io"
	"unicode/utf8"
)

// source is a character reader with position tracking.
// The whole input is read into memory up front.
type source struct {
	buf []byte // source buffer

	filename string
	line     uint32 // line of ch (1-based)
	col      uint32 // column of ch (1-based, byte offset)

	ch   rune // current character, -1 at EOF
	offs int  // byte offset of the character after ch

	errh func(line, col uint32, msg string)
}

// newSource reads src and positions the reader on its first character.
// errh is called for each error; if nil, errors are ignored.
func newSource(filename string, src io.Reader, errh func(line, col uint32, msg string)) *source {
	s := &source{
		filename: filename,
		line:     1,
		ch:       -1, // before the first character; nextch moves col to 1
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error("error reading source: " + err.Error())
		return s
	}

	s.nextch()
	return s
}

// nextch advances to the next character, updating line and column
// from the character being left behind.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}
	s.ch = r
	s.offs += width
}

// peek returns the character after ch without consuming anything.
func (s *source) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.buf[s.offs:])
	return r
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col, msg)
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
