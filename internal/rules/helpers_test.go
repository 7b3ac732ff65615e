package rules

import (
	"testing"

	"jsstyle/internal/ast"
	"jsstyle/internal/lexer"
	"jsstyle/internal/parser"
	"jsstyle/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	return lexer.Tokenize([]byte(src)).Tokens
}

func parse(t *testing.T, src string) ([]token.Token, *ast.Program) {
	t.Helper()
	toks := lex(t, src)
	return toks, parser.Parse(toks).Program
}

func messages(vs []Violation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}
