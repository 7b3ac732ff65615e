package token_test

import (
	"testing"

	"jsstyle/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	for _, kw := range []string{"let", "const", "var", "function", "if", "else", "while", "for", "return"} {
		if !token.LookupKeyword(kw) {
			t.Fatalf("LookupKeyword(%q) = false, want true", kw)
		}
	}
	// регистр важен
	for _, s := range []string{"Let", "FUNCTION", "fn", "letter", "console"} {
		if token.LookupKeyword(s) {
			t.Fatalf("LookupKeyword(%q) = true, want false", s)
		}
	}
}

func TestIsDecl(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want bool
	}{
		{token.Token{Kind: token.Keyword, Text: "let"}, true},
		{token.Token{Kind: token.Keyword, Text: "function"}, true},
		{token.Token{Kind: token.Keyword, Text: "if"}, false},
		{token.Token{Kind: token.Identifier, Text: "let"}, false},
	}
	for _, tt := range tests {
		if got := tt.tok.IsDecl(); got != tt.want {
			t.Errorf("%v %q IsDecl = %v, want %v", tt.tok.Kind, tt.tok.Text, got, tt.want)
		}
	}
}

func TestEndLine(t *testing.T) {
	block := token.Token{Kind: token.Comment, Text: "/* a\nb\nc */", Line: 4}
	if got := block.EndLine(); got != 6 {
		t.Fatalf("EndLine = %d, want 6", got)
	}
	nl := token.Token{Kind: token.Whitespace, Text: "\n", Line: 2}
	if got := nl.EndLine(); got != 2 {
		t.Fatalf("newline EndLine = %d, want 2", got)
	}
	if !nl.IsNewline() || nl.IsCode() {
		t.Fatal("newline must be non-code whitespace")
	}
}

func TestKindString(t *testing.T) {
	if token.Operator.String() != "Operator" || token.Whitespace.String() != "Whitespace" {
		t.Fatal("unexpected kind names")
	}
	if token.Kind(200).String() != "Kind(?)" {
		t.Fatal("unknown kind must not panic")
	}
}
