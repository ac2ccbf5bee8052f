package types2

import (
	"errors"
	"strings"
	"testing"

	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types"
)

// parseAndCheck parses source code and runs the checker.
func parseAndCheck(t *testing.T, src string) (*syntax.File, *Info, error) {
	t.Helper()
	file, err := syntax.ParseFile("test.sl", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	info := &Info{
		Types:  make(map[syntax.Expr]TypeAndValue),
		Defs:   make(map[*syntax.Name]types.Object),
		Uses:   make(map[*syntax.Name]types.Object),
		Scopes: make(map[syntax.Node]*types.Scope),
	}
	err = Check(file, nil, info)
	return file, info, err
}

// expectNoErrors checks that the source code passes the checker.
func expectNoErrors(t *testing.T, src string) (*syntax.File, *Info) {
	t.Helper()
	file, info, err := parseAndCheck(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return file, info
}

// expectError checks that checking fails with an error of the given kind
// at pos whose message contains msg.
func expectError(t *testing.T, src string, kind ErrorKind, pos, msg string) {
	t.Helper()
	_, _, err := parseAndCheck(t, src)
	if err == nil {
		t.Fatalf("expected %s error containing %q, got none", kind, msg)
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if cerr.Kind != kind {
		t.Errorf("error kind = %s, want %s (%v)", cerr.Kind, kind, err)
	}
	if pos != "" && cerr.Pos.String() != pos {
		t.Errorf("error pos = %s, want %s (%v)", cerr.Pos, pos, err)
	}
	if !strings.Contains(cerr.Msg, msg) {
		t.Errorf("error %q does not contain %q", cerr.Msg, msg)
	}
}

// funcResult returns the inferred result of the named function.
func funcResult(t *testing.T, info *Info, name string) types.Type {
	t.Helper()
	for id, obj := range info.Defs {
		if fn, ok := obj.(*types.FuncObj); ok && id.Value == name {
			return fn.Signature().Result()
		}
	}
	t.Fatalf("function %s not found", name)
	return nil
}

// ----------------------------------------------------------------------------
// Declarations and scopes

func TestDeclarations(t *testing.T) {
	expectNoErrors(t, `
int x = 5;
bool b = true;
int y = x * 2 + 1;
bool c = x < y && !b;
x = y;
b = c || false;
`)
}

func TestLeftAssociativeSubtraction(t *testing.T) {
	file, info := expectNoErrors(t, "int r = 10 - 3 - 2;")
	decl := file.Stmts[0].(*syntax.VarDecl)
	if got := syntax.ExprString(decl.Value); got != "((10 - 3) - 2)" {
		t.Errorf("tree = %s", got)
	}
	if typ := info.TypeOf(decl.Value); typ != types.Typ[types.Int] {
		t.Errorf("type = %v, want int", typ)
	}
}

func TestRedeclaration(t *testing.T) {
	expectError(t, "int x = 1; int x = 2;", Redeclaration, "test.sl:1:12", "x redeclared")
	expectError(t, "int x = 1; bool x = true;", Redeclaration, "test.sl:1:12", "previous declaration at test.sl:1:5")
	expectError(t, "{ int y = 1; int y = 2; }", Redeclaration, "test.sl:1:14", "y redeclared")
}

func TestShadowing(t *testing.T) {
	file, info := expectNoErrors(t, "int x = 1; { int x = 2; print(x); } print(x);")

	outer := info.Defs[file.Stmts[0].(*syntax.VarDecl).Name].(*types.Var)
	block := file.Stmts[1].(*syntax.BlockStmt)
	inner := info.Defs[block.Stmts[0].(*syntax.VarDecl).Name].(*types.Var)

	innerUse := block.Stmts[1].(*syntax.PrintStmt).X.(*syntax.Name)
	outerUse := file.Stmts[2].(*syntax.PrintStmt).X.(*syntax.Name)

	if info.Uses[innerUse] != inner {
		t.Errorf("inner print resolves to %v, want inner x", info.Uses[innerUse])
	}
	if info.Uses[outerUse] != outer {
		t.Errorf("outer print resolves to %v, want outer x", info.Uses[outerUse])
	}
	if outer.Depth() != 0 || inner.Depth() != 1 {
		t.Errorf("depths = %d, %d; want 0, 1", outer.Depth(), inner.Depth())
	}
}

func TestBlockScopeEnds(t *testing.T) {
	expectError(t, "{ int y = 1; } print(y);", UndefinedVariable, "test.sl:1:22", "undefined variable: y")
	expectError(t, "while (true) { int i = 0; } i = 1;", UndefinedVariable, "test.sl:1:29", "i")
	expectError(t, "if (true) { int a = 1; } else { a = 2; }", UndefinedVariable, "test.sl:1:33", "a")
}

func TestUndefinedVariable(t *testing.T) {
	expectError(t, "print(y);", UndefinedVariable, "test.sl:1:7", "undefined variable: y")
	expectError(t, "y = 1;", UndefinedVariable, "test.sl:1:1", "y")
	expectError(t, "int x = x;", UndefinedVariable, "test.sl:1:9", "x")
}

func TestTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		src  string
		pos  string
		msg  string
	}{
		{"bool_from_int", "bool b = 5;", "test.sl:1:10", "cannot use 5 (int) as bool in declaration of b"},
		{"int_from_bool", "int x = true;", "test.sl:1:9", "cannot use true (bool) as int"},
		{"assign", "int x = 1; x = false;", "test.sl:1:16", "as int in assignment to x"},
		{"arith_bool", "int x = 1 + true;", "test.sl:1:13", "operator + expects int operands, got true (bool)"},
		{"neg_bool", "int x = -true;", "test.sl:1:10", "operator - expects int"},
		{"not_int", "bool b = !5;", "test.sl:1:11", "operator ! expects bool operands, got 5 (int)"},
		{"and_int", "bool b = 1 && true;", "test.sl:1:10", "operator && expects bool"},
		{"compare_bools", "bool b = true == false;", "test.sl:1:10", "operator == expects int"},
		{"compare_result", "int x = 1 < 2;", "test.sl:1:11", "cannot use (1 < 2) (bool) as int"},
		{"chained_compare", "bool b = 1 < 2 < 3;", "test.sl:1:12", "operator < expects int operands, got (1 < 2) (bool)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, tt.src, TypeMismatch, tt.pos, tt.msg)
		})
	}
}

func TestConditions(t *testing.T) {
	expectError(t, "if (5) { }", InvalidConditionType, "test.sl:1:5", "non-boolean condition in if statement: 5 (int)")
	expectError(t, "while (1 + 1) { }", InvalidConditionType, "test.sl:1:10", "while")
	expectNoErrors(t, "if (5 > 3) { }")
	expectNoErrors(t, "int i = 0; while (i < 3 && true) { i = i + 1; }")
	expectNoErrors(t, "if (true) { } else if (false) { } else { }")
}

// ----------------------------------------------------------------------------
// Arrays

func TestArrays(t *testing.T) {
	file, info := expectNoErrors(t, `
int a = [1, 2, 3];
a[0] = a[1] + a[2];
int e = [];
print(a);
print(a[0]);
`)
	a := info.Defs[file.Stmts[0].(*syntax.VarDecl).Name].(*types.Var)
	if a.Type() != types.IntArray {
		t.Errorf("a has type %s, want int[]", a.Type())
	}
	if typ := info.TypeOf(file.Stmts[4].(*syntax.PrintStmt).X); typ != types.Typ[types.Int] {
		t.Errorf("a[0] has type %v, want int", typ)
	}
}

func TestArrayErrors(t *testing.T) {
	expectError(t, "bool b = true; print(b[0]);", IndexOnNonArray, "test.sl:1:22", "cannot index b (variable of type bool)")
	expectError(t, "int a = [1, true];", TypeMismatch, "test.sl:1:13", "cannot use true (bool) as int in array literal")
	expectError(t, "int a = [1]; a[true] = 1;", TypeMismatch, "test.sl:1:16", "invalid index true (bool)")
	expectError(t, "int a = [1]; a[0] = false;", TypeMismatch, "test.sl:1:21", "assignment to a[0]")
	expectError(t, "int a = [1]; int b = a + 1;", TypeMismatch, "test.sl:1:22", "got a (int[])")
	expectError(t, "bool b = [1];", TypeMismatch, "test.sl:1:10", "cannot use [1] (int[]) as bool")
}

func TestIntKeywordCoversArrays(t *testing.T) {
	expectNoErrors(t, `
function first(int board) {
    return board[0];
}
int a = [4, 5];
int x = 3;
x = a;
print(first(a));
print(first(x));
`)

	// Whether x holds an array is only known at run time.
	expectNoErrors(t, "int x = 5; print(x[0]);")
}

// ----------------------------------------------------------------------------
// Functions and calls

func TestArityMismatch(t *testing.T) {
	expectError(t, "function f(int a) { return a; } print(f(1, 2));", ArityMismatch, "test.sl:1:39",
		"wrong number of arguments in call to f: have 2, want 1")
	expectError(t, "function f(int a, int b) { return a; } print(f());", ArityMismatch, "", "have 0, want 2")
}

func TestArgumentTypes(t *testing.T) {
	expectError(t, "function f(bool ok) { return ok; } print(f(1));", TypeMismatch, "test.sl:1:44",
		"cannot use 1 (int) as bool in argument ok to f")
}

func TestUndefinedFunction(t *testing.T) {
	expectError(t, "print(g(1));", UndefinedFunction, "test.sl:1:7", "undefined function: g")
	expectError(t, "int f = 1; print(f());", UndefinedFunction, "test.sl:1:18", "f")
}

func TestForwardCallFromBody(t *testing.T) {
	_, info := expectNoErrors(t, `
function a() { return b() + 1; }
function b() { return 2; }
print(a());
`)
	if r := funcResult(t, info, "b"); r != types.Typ[types.Int] {
		t.Errorf("b returns %v, want int", r)
	}
}

func TestForwardCallFromTopLevel(t *testing.T) {
	_, info := expectNoErrors(t, "print(f(2)); function f(int n) { return n * 2; }")
	if r := funcResult(t, info, "f"); r != types.Typ[types.Int] {
		t.Errorf("f returns %v, want int", r)
	}
	expectNoErrors(t, "int x = twice(3) + 1; print(x); function twice(int n) { return n * 2; }")
	expectError(t, "bool b = f(); function f() { return 1; }", TypeMismatch, "test.sl:1:10", "")
}

func TestBodiesDoNotSeeTopLevelVariables(t *testing.T) {
	expectError(t, "int g = 1; function f() { return g; }", UndefinedVariable, "test.sl:1:34", "undefined variable: g")
}

func TestFunctionAndVariableNamespaces(t *testing.T) {
	expectNoErrors(t, "function f() { return 1; } int f = f(); print(f);")
}

func TestFunctionRedeclaration(t *testing.T) {
	expectError(t, "function f() { } function f() { }", Redeclaration, "test.sl:1:18", "function f redeclared")
}

func TestParameterRedeclaration(t *testing.T) {
	expectError(t, "function f(int a, bool a) { }", Redeclaration, "test.sl:1:19", "a redeclared")
	expectError(t, "function f(int a) { int a = 2; }", Redeclaration, "test.sl:1:21", "a redeclared")
	expectNoErrors(t, "function f(int a) { { int a = 2; print(a); } return a; }")
}

func TestNoValueCalls(t *testing.T) {
	expectNoErrors(t, "function hello() { print(1); } hello();")
	expectNoErrors(t, "function hello() { print(1); return; } hello();")
	expectError(t, "function hello() { print(1); } int x = hello();", TypeMismatch, "test.sl:1:40",
		"hello() (no value) used as value")
	expectError(t, "function hello() { } print(hello());", TypeMismatch, "", "no value")
}

func TestValueCallAsStatement(t *testing.T) {
	expectNoErrors(t, "function one() { return 1; } one();")
}

func TestReturnAgreement(t *testing.T) {
	expectError(t, "function f(bool b) { if (b) { return 1; } return true; }", TypeMismatch, "test.sl:1:43",
		"cannot return true (bool) from f: return at test.sl:1:31 has type int")
	expectError(t, "function f(bool b) { if (b) { return 1; } return; }", TypeMismatch, "test.sl:1:43",
		"missing return value in f")
	expectError(t, "function f(bool b) { if (b) { return; } return 1; }", TypeMismatch, "test.sl:1:41",
		"unexpected return value in f")
	expectNoErrors(t, "function f(bool b) { if (b) { return 1; } return 2; }")
}

func TestReturnAgreementScalarAndArray(t *testing.T) {
	expectError(t, "function f(bool b) { if (b) { return 1; } return [1, 2]; }", TypeMismatch, "test.sl:1:43",
		"cannot return [1, 2] (int[]) from f: return at test.sl:1:31 has type int")
	expectError(t, "function f(bool b) { if (b) { return [1]; } return 0; }", TypeMismatch, "test.sl:1:45",
		"cannot return 0 (int) from f: return at test.sl:1:31 has type int[]")
	expectNoErrors(t, "function f(bool b) { if (b) { return [1]; } return [2, 3]; }")
	expectNoErrors(t, "function f(bool b) { int a = [1]; if (b) { return a; } return [2, 3]; }")
}

func TestInferredResults(t *testing.T) {
	_, info := expectNoErrors(t, `
function num() { return 1; }
function flag() { return 1 < 2; }
function arr() { return [1, 2]; }
function none() { print(0); }
`)

	tests := []struct {
		name string
		want types.Type
	}{
		{"num", types.Typ[types.Int]},
		{"flag", types.Typ[types.Bool]},
		{"arr", types.IntArray},
		{"none", nil},
	}
	for _, tt := range tests {
		if got := funcResult(t, info, tt.name); got != tt.want {
			t.Errorf("%s returns %v, want %v", tt.name, got, tt.want)
		}
	}
}

// ----------------------------------------------------------------------------
// Errors and configuration

func TestErrorHandler(t *testing.T) {
	file, err := syntax.ParseFile("test.sl", strings.NewReader("print(y);"))
	if err != nil {
		t.Fatal(err)
	}

	var got []*Error
	conf := &Config{Error: func(err *Error) { got = append(got, err) }}
	err = Check(file, conf, nil)

	if len(got) != 1 {
		t.Fatalf("handler called %d times, want 1", len(got))
	}
	if err != got[0] {
		t.Errorf("returned error %v differs from reported %v", err, got[0])
	}
	if want := "semantic error at test.sl:1:7: undefined variable: y"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{Redeclaration, "Redeclaration"},
		{UndefinedVariable, "UndefinedVariable"},
		{UndefinedFunction, "UndefinedFunction"},
		{TypeMismatch, "TypeMismatch"},
		{ArityMismatch, "ArityMismatch"},
		{InvalidConditionType, "InvalidConditionType"},
		{IndexOnNonArray, "IndexOnNonArray"},
		{ErrorKind(0), "ErrorKind(0)"},
		{ErrorKind(42), "ErrorKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestInfoScopes(t *testing.T) {
	file, info := expectNoErrors(t, `
int x = 1;
function f(int a) {
    while (a > 0) { a = a - 1; }
    return a;
}
if (x > 0) { int y = 2; } else { print(x); }
`)
	if s := info.Scopes[file]; s == nil || s.Lookup("x") == nil {
		t.Fatal("file scope missing or without x")
	}

	fd := file.Stmts[1].(*syntax.FuncDecl)
	fs := info.Scopes[fd]
	if fs == nil || fs.Lookup("a") == nil {
		t.Fatal("function scope missing or without a")
	}
	if info.Scopes[fd.Body] != fs {
		t.Error("function body should share the parameter frame")
	}
	if fs.Parent() != nil {
		t.Error("function frames should not be nested in the file frame")
	}

	ifs := file.Stmts[2].(*syntax.IfStmt)
	if s := info.Scopes[ifs.Then]; s == nil || s.Lookup("y") == nil {
		t.Error("then block scope missing or without y")
	}
	if info.Scopes[ifs.Else] == nil {
		t.Error("else block scope missing")
	}
}

func TestInfoTypesAndUses(t *testing.T) {
	file, info := expectNoErrors(t, `
function sq(int v) { return v * v; }
int n = (sq(3));
sq(2);
`)
	decl := file.Stmts[1].(*syntax.VarDecl)
	paren := decl.Value.(*syntax.ParenExpr)
	call := paren.X.(*syntax.CallExpr)

	if info.TypeOf(paren) != types.Typ[types.Int] || info.TypeOf(call) != types.Typ[types.Int] {
		t.Errorf("types: paren=%v call=%v", info.TypeOf(paren), info.TypeOf(call))
	}
	if !info.Types[call].IsValue() || info.Types[decl.Value].IsAddressable() {
		t.Error("call should be a non-addressable value")
	}
	if _, ok := info.ObjectOf(call.Fun).(*types.FuncObj); !ok {
		t.Errorf("callee resolves to %T", info.ObjectOf(call.Fun))
	}
	if _, ok := info.ObjectOf(decl.Name).(*types.Var); !ok {
		t.Errorf("declared name resolves to %T", info.ObjectOf(decl.Name))
	}
}

func TestCheckWithoutInfo(t *testing.T) {
	file, err := syntax.ParseFile("test.sl", strings.NewReader("int x = 1; print(x);"))
	if err != nil {
		t.Fatal(err)
	}
	if err := Check(file, nil, nil); err != nil {
		t.Errorf("Check() = %v", err)
	}
}
