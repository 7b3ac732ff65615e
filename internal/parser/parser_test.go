package parser

import (
	"strings"
	"testing"

	"jsstyle/internal/ast"
	"jsstyle/internal/diag"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "Program"},
		{"only whitespace and comments", "  // hi\n/* x */\n", "Program"},
		{"variables", "let a = 1; const b; var c = f(1, 2)", "Program[Var(a) Var(b) Var(c)]"},
		{
			"function with params and body",
			"function add(a, b) { let s = a + b; return s; }",
			"Program[Fn(add)[Param(a) Param(b) Var(s)]]",
		},
		{
			"nested control",
			"function f(x) {\n if (x > (1)) {\n  while (x) { x--; }\n }\n}",
			"Program[Fn(f)[Param(x) Ctl(if)[Ctl(while)]]]",
		},
		{
			"else body goes to enclosing parent",
			"function g() { if (a) { let x; } else { for (;;) {} } let y; }",
			"Program[Fn(g)[Ctl(if)[Var(x)] Ctl(for) Var(y)]]",
		},
		{
			"control at top level and nested function",
			"if (a) { function inner() { while (b) {} } }",
			"Program[Ctl(if)[Fn(inner)[Ctl(while)]]]",
		},
		{
			"initializer with object literal and no semicolon",
			"let o = { a: 1 }\nlet p = function () {}",
			"Program[Var(o) Var(p)]",
		},
		{
			"comment between keyword and name",
			"let /* c */ name = 1;",
			"Program[Var(name)]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseSource(t, tt.input)
			if len(res.Errors) != 0 {
				t.Fatalf("unexpected errors: %s", errorsSummary(res.Errors))
			}
			if got := shape(res.Program); got != tt.want {
				t.Fatalf("shape = %s\nwant    %s", got, tt.want)
			}
		})
	}
}

func TestRecoveryKeepsLaterDeclarations(t *testing.T) {
	res := parseSource(t, "let ; let validVar = 10;")
	if len(res.Errors) == 0 {
		t.Fatal("expected at least one syntax error")
	}
	if !strings.Contains(res.Errors[0].Msg, "Expected identifier at line 1") {
		t.Fatalf("unexpected message %q", res.Errors[0].Msg)
	}
	if res.Errors[0].Code != diag.SynExpectIdentifier {
		t.Fatalf("code = %s, want %s", res.Errors[0].Code.ID(), diag.SynExpectIdentifier.ID())
	}
	found := false
	ast.Inspect(res.Program, func(n ast.Node) bool {
		if v, ok := n.(*ast.VariableDeclaration); ok && v.Name == "validVar" {
			found = true
		}
		return true
	})
	if !found {
		t.Fatalf("validVar missing: %s", shape(res.Program))
	}
}

func TestRecoveryCases(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		errSubstr string
	}{
		{
			"missing function name",
			"function (a) { let x; }\nlet after;",
			"Program[Var(after)]",
			"Expected function name at line 1",
		},
		{
			"error inside function body stays inside",
			"function f() {\n let ;\n let ok;\n}\nlet after;",
			"Program[Fn(f)[Var(ok)] Var(after)]",
			"Expected identifier at line 2",
		},
		{
			"missing paren after name",
			"function f { }\nlet after;",
			"Program[Var(after)]",
			"Expected '(' after function name",
		},
		{
			"unclosed function body keeps node",
			"function f() { let a;",
			"Program[Fn(f)[Var(a)]]",
			"Unclosed function body opened at line 1",
		},
		{
			"unclosed condition",
			"while (a {",
			"Program[Ctl(while)]",
			"Unclosed condition of 'while' at line 1",
		},
		{
			"keyword as variable name",
			"const if = 1;\nconst good = 2;",
			"Program[Var(good)]",
			"Expected identifier at line 1",
		},
		{
			"unmatched paren in initializer",
			"let x = a); let validVar = 10;",
			"Program[Var(x) Var(validVar)]",
			"",
		},
		{
			"unmatched bracket in initializer",
			"let x = ]; function f() { if (a) {} }",
			"Program[Var(x) Fn(f)[Ctl(if)]]",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseSource(t, tt.input)
			if !strings.Contains(errorsSummary(res.Errors), tt.errSubstr) {
				t.Fatalf("errors = %s, want substring %q", errorsSummary(res.Errors), tt.errSubstr)
			}
			if got := shape(res.Program); got != tt.want {
				t.Fatalf("shape = %s\nwant    %s", got, tt.want)
			}
		})
	}
}

func TestStrayClosingBraceIsSkipped(t *testing.T) {
	res := parseSource(t, "} } let a;")
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %s", errorsSummary(res.Errors))
	}
	if got := shape(res.Program); got != "Program[Var(a)]" {
		t.Fatalf("shape = %s", got)
	}
}

func TestLinesAndSpans(t *testing.T) {
	res := parseSource(t, "\n\nfunction f(a,\n b) {}")
	fn, ok := res.Program.Body[0].(*ast.Function)
	if !ok {
		t.Fatalf("expected function, got %T", res.Program.Body[0])
	}
	if fn.Line() != 3 {
		t.Fatalf("function line = %d, want 3", fn.Line())
	}
	if fn.Params[1].Line() != 4 {
		t.Fatalf("param b line = %d, want 4", fn.Params[1].Line())
	}
	if fn.Span.Start != 11 || fn.Span.End != 12 {
		t.Fatalf("name span = %v, want 11-12", fn.Span)
	}
}

func TestErrorSpanAtEOF(t *testing.T) {
	res := parseSource(t, "let")
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %s", errorsSummary(res.Errors))
	}
	if sp := res.Errors[0].Span; sp.Start != 3 || sp.End != 3 {
		t.Fatalf("span = %v, want empty span at 3", sp)
	}
}
