package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types2"
)

const header = "# Code generated by slc from test.sl. DO NOT EDIT.\n"

// generate parses, checks and generates src.
func generate(t *testing.T, src string) string {
	t.Helper()
	file, err := syntax.ParseFile("test.sl", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	info := &types2.Info{}
	if err := types2.Check(file, nil, info); err != nil {
		t.Fatalf("check error: %v", err)
	}

	var b strings.Builder
	if err := Generate(&b, file, info); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return b.String()
}

func expectOutput(t *testing.T, src, want string) {
	t.Helper()
	if got := generate(t, src); got != want {
		t.Errorf("generated code mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestGenerateFunction(t *testing.T) {
	expectOutput(t, `
function factorial(int n) {
    if (n <= 1) {
        return 1;
    }
    return n * factorial(n - 1);
}
print(factorial(5));
`, header+`

def factorial(n: int) -> int:
    if n <= 1:
        return 1
    return n * factorial(n - 1)


print(factorial(5))
`)
}

func TestGenerateTopLevel(t *testing.T) {
	expectOutput(t, `
int x = 7;
{
    int x = -7;
    print(x / 2);
    print(x % 2);
}
bool ok = !(x > 3) || true;
print(ok);
int a = [1, 2, 3];
a[0] = a[1] + a[2];
print(a);
`, header+`

def _sl_div(a: int, b: int) -> int:
    q = abs(a) // abs(b)
    return q if (a < 0) == (b < 0) else -q


def _sl_mod(a: int, b: int) -> int:
    r = abs(a) % abs(b)
    return r if a >= 0 else -r


x: int = 7
x_1: int = -7
print(_sl_div(x_1, 2))
print(_sl_mod(x_1, 2))
ok: bool = (not (x > 3)) or True
print("true" if ok else "false")
a: list[int] = [1, 2, 3]
a[0] = a[1] + a[2]
print(a)
`)
}

func TestGenerateNames(t *testing.T) {
	expectOutput(t, `
function f(int pass) {
    if (pass > 0) {
        return;
    } else if (pass < 0) {
        print(pass);
    } else {
    }
}
function g() { return true; }
int f = 0;
while (f < 2) {
    f = f + 1;
}
f(f);
print(g());
`, header+`

def f(pass_: int):
    if pass_ > 0:
        return
    elif pass_ < 0:
        print(pass_)
    else:
        pass


def g() -> bool:
    return True


f_1: int = 0
while f_1 < 2:
    f_1 = f_1 + 1
f(f_1)
print("true" if g() else "false")
`)
}

func TestGenerateHoistsFunctions(t *testing.T) {
	expectOutput(t, `
int n = 3;
function a(int n) { return b(n) + 1; }
function b(int k) { return k * 2; }
print(a(n));
function noop() { }
noop();
`, header+`

def a(n: int) -> int:
    return b(n) + 1


def b(k: int) -> int:
    return k * 2


def noop():
    pass


n: int = 3
print(a(n))
noop()
`)
}

func TestGenerateExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"int r = 1 + 2 * 3;", "r: int = 1 + (2 * 3)"},
		{"int r = (1 + 2) * 3;", "r: int = (1 + 2) * 3"},
		{"int r = 10 - 3 - 2;", "r: int = (10 - 3) - 2"},
		{"int r = 007;", "r: int = 7"},
		{"int r = -(-4);", "r: int = -(-4)"},
		{"int r = -9223372036854775808;", "r: int = -9223372036854775808"},
		{"int r = 7 / 2 / 2;", "r: int = _sl_div(_sl_div(7, 2), 2)"},
		{"int r = 1 + 7 % 3;", "r: int = 1 + _sl_mod(7, 3)"},
		{"bool r = 1 < 2 && 2 != 3;", "r: bool = (1 < 2) and (2 != 3)"},
		{"bool r = !false;", "r: bool = not False"},
		{"int r = [1 + 1, 2];", "r: list[int] = [1 + 1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := generate(t, tt.src)
			lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
			if last := lines[len(lines)-1]; last != tt.want {
				t.Errorf("got %q, want %q", last, tt.want)
			}
		})
	}
}

func TestNamespaceUnique(t *testing.T) {
	ns := newNamespace(nil)
	got := []string{
		ns.unique("x"),
		ns.unique("x"),
		ns.unique("x"),
		ns.unique("while"),
		ns.unique("_sl_div"),
		ns.unique("x_1"),
	}
	want := []string{"x", "x_1", "x_2", "while_", "_sl_div_", "x_1_1"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unique #%d = %q, want %q", i, got[i], want[i])
		}
	}

	inner := newNamespace(ns)
	if n := inner.unique("x"); n != "x_3" {
		t.Errorf("inner unique(x) = %q, want x_3", n)
	}
	if n := ns.unique("y"); n != "y" {
		t.Errorf("outer namespace affected by inner: %q", n)
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestGenerateWriteError(t *testing.T) {
	file, err := syntax.ParseFile("test.sl", strings.NewReader("print(1);"))
	if err != nil {
		t.Fatal(err)
	}
	info := &types2.Info{}
	if err := types2.Check(file, nil, info); err != nil {
		t.Fatal(err)
	}
	if err := Generate(errWriter{}, file, info); err == nil || err.Error() != "disk full" {
		t.Errorf("Generate() = %v, want disk full", err)
	}
}
