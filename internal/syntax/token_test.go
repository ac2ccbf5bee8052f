package syntax

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Error, "ERROR"},
		{_Name, "NAME"},
		{_Literal, "LITERAL"},

		{_Assign, "="},
		{_OrOr, "||"},
		{_AndAnd, "&&"},
		{_Eql, "=="},
		{_Neq, "!="},
		{_Lss, "<"},
		{_Leq, "<="},
		{_Gtr, ">"},
		{_Geq, ">="},
		{_Add, "+"},
		{_Sub, "-"},
		{_Mul, "*"},
		{_Div, "/"},
		{_Rem, "%"},
		{_Not, "!"},

		{_Lparen, "("},
		{_Rparen, ")"},
		{_Lbrack, "["},
		{_Rbrack, "]"},
		{_Lbrace, "{"},
		{_Rbrace, "}"},
		{_Comma, ","},
		{_Semi, ";"},

		{_Bool, "bool"},
		{_Else, "else"},
		{_False, "false"},
		{_Function, "function"},
		{_If, "if"},
		{_Int, "int"},
		{_Print, "print"},
		{_Return, "return"},
		{_True, "true"},
		{_While, "while"},

		{tokenCount + 3, "token(40)"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestTokenNamesComplete(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if tokenNames[tok] == "" {
			t.Errorf("token %d has no name", tok)
		}
	}
}

func TestTokenPrecedence(t *testing.T) {
	tests := []struct {
		tok  Token
		want int
	}{
		{_OrOr, 1},
		{_AndAnd, 2},
		{_Eql, 3},
		{_Neq, 3},
		{_Lss, 3},
		{_Leq, 3},
		{_Gtr, 3},
		{_Geq, 3},
		{_Add, 4},
		{_Sub, 4},
		{_Mul, 5},
		{_Div, 5},
		{_Rem, 5},

		{_Not, 0},
		{_Assign, 0},
		{_Name, 0},
		{_Lparen, 0},
		{_EOF, 0},
	}

	for _, tt := range tests {
		if got := tt.tok.Precedence(); got != tt.want {
			t.Errorf("%s.Precedence() = %d, want %d", tt.tok, got, tt.want)
		}
	}
}

func TestTokenClass(t *testing.T) {
	tests := []struct {
		tok  Token
		want OpClass
	}{
		{_Add, Arithmetic},
		{_Rem, Arithmetic},
		{_Lss, Comparison},
		{_Neq, Comparison},
		{_AndAnd, Logical},
		{_OrOr, Logical},
		{_Not, Logical},
		{_Assign, NoClass},
		{_Comma, NoClass},
	}

	for _, tt := range tests {
		if got := tt.tok.Class(); got != tt.want {
			t.Errorf("%s.Class() = %d, want %d", tt.tok, got, tt.want)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		_, isKw := keywords[tok.String()]
		if tok.IsKeyword() != isKw {
			t.Errorf("%s.IsKeyword() = %v, want %v", tok, tok.IsKeyword(), isKw)
		}
		if tok.IsKeyword() && tok.IsOperator() {
			t.Errorf("%s is both keyword and operator", tok)
		}
	}

	if !_Int.IsTypeKeyword() || !_Bool.IsTypeKeyword() {
		t.Error("int and bool must be type keywords")
	}
	if _Function.IsTypeKeyword() {
		t.Error("function is not a type keyword")
	}
	if !_EOF.IsEOF() || _Semi.IsEOF() {
		t.Error("IsEOF mismatch")
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Token
	}{
		{"function", _Function},
		{"while", _While},
		{"int", _Int},
		{"bool", _Bool},
		{"true", _True},
		{"print", _Print},
		{"Print", _Name},
		{"func", _Name},
		{"for", _Name},
		{"x", _Name},
	}

	for _, tt := range tests {
		if got := LookupKeyword(tt.ident); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestLitKindString(t *testing.T) {
	if IntLit.String() != "int" || BoolLit.String() != "bool" {
		t.Errorf("LitKind strings: %q %q", IntLit, BoolLit)
	}
	if got := LitKind(9).String(); got != "LitKind(9)" {
		t.Errorf("LitKind(9).String() = %q", got)
	}
}
