package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

// FprintTyped is like Fprint but appends annotate(e) to every expression
// line, e.g. the type recorded for e by the checker.
func FprintTyped(w io.Writer, node Node, annotate func(Expr) string) {
	p := &printer{w: w, annotate: annotate}
	p.print(node)
}

type printer struct {
	w        io.Writer
	indent   int
	annotate func(Expr) string
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// exprf prints an expression header line with its annotation, if any.
func (p *printer) exprf(e Expr, format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if p.annotate != nil {
		if a := p.annotate(e); a != "" {
			line += " (" + a + ")"
		}
	}
	p.printf("%s\n", line)
}

// section prints a labeled child.
func (p *printer) section(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, f := range n.Params {
				p.printf("%s %s\n", f.Type.Tok, f.Name.Value)
			}
			p.indent--
		}
		p.section("Body", n.Body)
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s\n", n.pos)
		p.indent++
		p.printf("Type: %s\n", n.Type.Tok)
		p.printf("Name: %s\n", n.Name.Value)
		p.section("Value", n.Value)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.section("Cond", n.Cond)
		p.section("Then", n.Then)
		if n.Else != nil {
			p.section("Else", n.Else)
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.section("Cond", n.Cond)
		p.section("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *PrintStmt:
		p.printf("PrintStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *AssignStmt:
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.section("LHS", n.LHS)
		p.section("RHS", n.RHS)
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *Name:
		p.exprf(n, "Name %s %q", n.pos, n.Value)

	case *BasicLit:
		p.exprf(n, "BasicLit %s %s %s", n.pos, n.Kind, n.Value)

	case *Operation:
		if n.Y == nil {
			p.exprf(n, "UnaryOp %s %s", n.pos, n.Op)
			p.indent++
			p.print(n.X)
			p.indent--
		} else {
			p.exprf(n, "BinaryOp %s %s", n.pos, n.Op)
			p.indent++
			p.print(n.X)
			p.print(n.Y)
			p.indent--
		}

	case *CallExpr:
		p.exprf(n, "CallExpr %s %s", n.pos, n.Fun.Value)
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	case *IndexExpr:
		p.exprf(n, "IndexExpr %s", n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Index)
		p.indent--

	case *ParenExpr:
		p.exprf(n, "ParenExpr %s", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *ArrayLit:
		p.exprf(n, "ArrayLit %s len=%d", n.pos, len(n.Elems))
		p.indent++
		for _, e := range n.Elems {
			p.print(e)
		}
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// ExprString returns a compact, fully parenthesized rendering of e.
// It is used in diagnostics and tests: 1 + 2 * 3 renders as (1 + (2 * 3)).
func ExprString(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch x := e.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Name:
		b.WriteString(x.Value)
	case *BasicLit:
		b.WriteString(x.Value)
	case *Operation:
		b.WriteByte('(')
		if x.Y == nil {
			b.WriteString(x.Op.String())
			writeExpr(b, x.X)
		} else {
			writeExpr(b, x.X)
			b.WriteString(" " + x.Op.String() + " ")
			writeExpr(b, x.Y)
		}
		b.WriteByte(')')
	case *ParenExpr:
		writeExpr(b, x.X)
	case *CallExpr:
		b.WriteString(x.Fun.Value)
		b.WriteByte('(')
		writeList(b, x.Args)
		b.WriteByte(')')
	case *IndexExpr:
		writeExpr(b, x.X)
		b.WriteByte('[')
		writeExpr(b, x.Index)
		b.WriteByte(']')
	case *ArrayLit:
		b.WriteByte('[')
		writeList(b, x.Elems)
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "<%T>", e)
	}
}

func writeList(b *strings.Builder, list []Expr) {
	for i, e := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpr(b, e)
	}
}
