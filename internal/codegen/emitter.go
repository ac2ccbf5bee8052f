package codegen

import (
	"fmt"
	"io"
	"strings"
)

// indentUnit is one level of Python indentation.
const indentUnit = "    "

// emitter wraps an io.Writer with helpers for emitting Python source text.
type emitter struct {
	w      io.Writer
	err    error // first write error
	indent int   // current indentation level
	lines  int   // number of statement lines written so far
}

// emit writes a formatted line at the current indentation.
func (e *emitter) emit(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, strings.Repeat(indentUnit, e.indent)+format+"\n", args...)
	e.lines++
}

// emitLine writes a blank line.
func (e *emitter) emitLine() {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w)
}

// emitComment writes a comment line.
func (e *emitter) emitComment(text string) {
	e.emit("# %s", text)
}

// block emits the lines written by body one level deeper. A block that
// produced no statement gets a pass, which Python requires.
func (e *emitter) block(body func()) {
	e.indent++
	start := e.lines
	body()
	if e.lines == start {
		e.emit("pass")
	}
	e.indent--
}
