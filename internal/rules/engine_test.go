package rules

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"jsstyle/internal/directive"
	"jsstyle/internal/fix"
	"jsstyle/internal/trace"
)

func runEngine(t *testing.T, opts Options, src string, edits *fix.Set) []string {
	t.Helper()
	toks, prog := parse(t, src)
	vs := NewEngine(opts).Run(context.Background(), Input{Tokens: toks, Program: prog}, directive.Scan([]byte(src)), edits)
	return messages(vs)
}

func TestEngineOrderAndToggles(t *testing.T) {
	src := "function Big(p) {\n  if (p) { let Bad_name=1; }\n}"
	opts := DefaultOptions()
	opts.MaxComplexity = 1

	got := runEngine(t, opts, src, nil)
	want := []string{
		"Line 1: Naming violation: 'Big'",
		"Line 2: Naming violation: 'Bad_name'",
		"Line 2: Missing space around operator '='",
		"Line 1: complexity too high: 2",
		"Line 2: Unused variable: 'Bad_name'",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q\nwant %q", got, want)
	}

	opts.RequireSpacesOperators = false
	opts.NoUnusedVars = false
	if names := NewEngine(opts).Checks(); strings.Join(names, ",") != "naming,blank-lines,complexity" {
		t.Fatalf("checks = %v", names)
	}
	got = runEngine(t, opts, src, nil)
	if len(got) != 3 {
		t.Fatalf("got %q", got)
	}
}

func TestEngineSuppression(t *testing.T) {
	src := strings.Join([]string{
		"let a=1;",
		"/* lint-disable */",
		"let Bad_one=2;",
		"/* lint-enable */ let Bad_two = a;",
		"let Bad_three = Bad_one + Bad_two;",
	}, "\n")
	set := fix.NewSet()
	got := runEngine(t, DefaultOptions(), src, set)
	want := []string{
		"Line 1: Missing space around operator '='",
		"Line 5: Naming violation: 'Bad_three'",
		"Line 5: Unused variable: 'Bad_three'",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q\nwant %q", got, want)
	}
	// правки из подавленных строк не применяются
	if set.Len() != 2 {
		t.Fatalf("edits = %d, want 2", set.Len())
	}
}

func TestEngineEmitsCheckSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)
	toks, prog := parse(t, "let x=1;")
	NewEngine(DefaultOptions()).Run(ctx, Input{Tokens: toks, Program: prog}, directive.Mask{}, nil)
	out := buf.String()
	for _, name := range []string{"check:naming", "check:spacing", "check:blank-lines", "check:complexity", "check:unused"} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing span %s in:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "found=1") {
		t.Fatalf("expected extra counters in:\n%s", out)
	}
}

func TestEngineEmptyInput(t *testing.T) {
	if got := runEngine(t, DefaultOptions(), "", nil); len(got) != 0 {
		t.Fatalf("got %q", got)
	}
	vs := NewEngine(DefaultOptions()).Run(context.Background(), Input{}, directive.Mask{}, nil)
	if len(vs) != 0 {
		t.Fatalf("nil program must be tolerated, got %v", messages(vs))
	}
}
