package rules

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"jsstyle/internal/diag"
	"jsstyle/internal/fix"

	"github.com/dlclark/regexp2"
)

func TestCheckNaming(t *testing.T) {
	re := DefaultOptions().Naming
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			"one bad of two",
			"let bad_variable_name = 1; let goodVariableName = 2;",
			[]string{"Line 1: Naming violation: 'bad_variable_name'"},
		},
		{
			"function names checked, uses not",
			"function Make() {}\nlet ok = Bad_use;",
			[]string{"Line 1: Naming violation: 'Make'"},
		},
		{
			"newline between keyword and name",
			"const\n  X = 1;",
			[]string{"Line 2: Naming violation: 'X'"},
		},
		{
			"dollar and underscore rejected by default",
			"var $el; var _priv;",
			[]string{"Line 1: Naming violation: '$el'", "Line 1: Naming violation: '_priv'"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := messages(CheckNaming(lex(t, tt.src), re))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckNamingCustomPattern(t *testing.T) {
	re := regexp2.MustCompile(`^[a-z_]+$`, regexp2.ECMAScript)
	got := CheckNaming(lex(t, "let snake_case; let camelCase;"), re)
	if len(got) != 1 || !strings.Contains(got[0].Message, "camelCase") {
		t.Fatalf("got %v", messages(got))
	}
}

func TestCompileNaming(t *testing.T) {
	re, err := CompileNaming(`[a-z]+`)
	if err != nil {
		t.Fatal(err)
	}
	if re.MatchTimeout != NamingMatchTimeout {
		t.Fatalf("match timeout = %v", re.MatchTimeout)
	}
	got := CheckNaming(lex(t, "let Abc; let abc;"), re)
	if len(got) != 1 || !strings.Contains(got[0].Message, "'Abc'") {
		t.Fatalf("got %v", messages(got))
	}
	for _, bad := range []string{"([", "a)|(b"} {
		if _, err := CompileNaming(bad); err == nil {
			t.Fatalf("pattern %q must not compile", bad)
		}
	}
}

func TestCheckNamingBacktrackingIsBounded(t *testing.T) {
	re := MustCompileNaming(`(a+)+$`)
	re.MatchTimeout = 10 * time.Millisecond
	name := strings.Repeat("a", 40) + "b"
	got := CheckNaming(lex(t, "let "+name+";"), re)
	if len(got) != 1 {
		t.Fatalf("got %v", messages(got))
	}
}

func TestCheckSpacing(t *testing.T) {
	src := "let x=10+y;"
	vs := CheckSpacing(lex(t, src))
	if len(vs) != 2 {
		t.Fatalf("got %d violations: %v", len(vs), messages(vs))
	}
	if vs[0].Message != "Missing space around operator '='" || vs[1].Message != "Missing space around operator '+'" {
		t.Fatalf("unexpected messages %v", messages(vs))
	}
	var edits []fix.Edit
	for _, v := range vs {
		edits = append(edits, v.Edits...)
	}
	out, err := fix.Apply([]byte(src), edits)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out) != "let x = 10 + y;" {
		t.Fatalf("fixed = %q", out)
	}
}

func TestCheckSpacingCases(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		count int
		edits int
	}{
		{"already spaced", "a = b + c;", 0, 0},
		{"one side missing", "a =b;", 1, 1},
		{"newline counts as space", "a =\n  b;", 0, 0},
		{"other operators ignored", "a==b; a+=1; a<b;", 0, 0},
		{"buffer edges", "=", 0, 0},
		{"operator first", "=x", 0, 0},
		{"operator last", "x=", 0, 0},
		{"inner operator next to edge", "x=y", 1, 2},
		{"comment neighbour", "a = /*c*/b -/*d*/ c", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := CheckSpacing(lex(t, tt.src))
			n := 0
			for _, v := range vs {
				n += len(v.Edits)
			}
			if len(vs) != tt.count || n != tt.edits {
				t.Fatalf("got %d violations / %d edits, want %d / %d", len(vs), n, tt.count, tt.edits)
			}
		})
	}
}

func TestCheckBlankLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		max  int
		want []uint32
	}{
		{"three blanks max one", "let a;\n\n\n\nlet b;", 1, []uint32{2}},
		{"exactly max is reported", "let a;\n\n\nlet b;", 2, []uint32{2}},
		{"one below max is fine", "let a;\n\nlet b;", 2, nil},
		{"adjacent lines", "let a;\nlet b;", 1, nil},
		{"zero max means default", "let a;\n\nlet b;\n\n\nlet c;", 0, []uint32{4}},
		{"block comment end counts", "/* a\n\n\n*/\nlet b;", 1, nil},
		{"gap after block comment", "/* a\n*/\n\n\nlet b;", 1, []uint32{3}},
		{"whitespace only lines are blank", "a\n  \n\t\nb", 1, []uint32{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []uint32
			for _, v := range CheckBlankLines(lex(t, tt.src), tt.max) {
				if v.Code != diag.StyBlankLines || v.Message != "Too many blank lines" {
					t.Fatalf("unexpected violation %+v", v)
				}
				got = append(got, v.Line)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("lines = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckComplexity(t *testing.T) {
	src := "function f(a) {\n  if (a) {\n    while (a) { a--; }\n  }\n}"
	_, prog := parse(t, src)
	got := messages(CheckComplexity(prog, 1))
	want := []string{"Line 1: complexity too high: 3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if vs := CheckComplexity(prog, 3); len(vs) != 0 {
		t.Fatalf("threshold 3 must pass, got %v", messages(vs))
	}
}

func TestCheckComplexityNested(t *testing.T) {
	src := "function outer() {\n if (a) {}\n function inner() {\n  for (;;) {}\n  while (b) {}\n }\n}"
	_, prog := parse(t, src)
	got := messages(CheckComplexity(prog, 2))
	// outer считает всё поддерево, inner: отдельно
	want := []string{"Line 1: complexity too high: 4", "Line 3: complexity too high: 3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCheckUnused(t *testing.T) {
	src := "let usedVar = 1;\nlet unusedVar = 2;\nconsole.log(usedVar);"
	toks, prog := parse(t, src)
	got := messages(CheckUnused(prog, toks))
	want := []string{"Line 2: Unused variable: 'unusedVar'"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCheckUnusedNameBased(t *testing.T) {
	src := "function a(x) { let tmp = 1; }\nfunction b(y) { let tmp = y; return tmp; }\nlet console = 1;\nlet lonely = 2;"
	toks, prog := parse(t, src)
	got := messages(CheckUnused(prog, toks))
	// tmp используется в b, поэтому и объявление в a считается использованным;
	// параметры стоят после "(" и сами попадают в множество использованных
	want := []string{"Line 4: Unused variable: 'lonely'"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}
