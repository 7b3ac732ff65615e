package diagfmt

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"jsstyle/internal/diag"
	"jsstyle/internal/source"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LexUnknownChar, 1, source.Span{Start: 5, End: 6}, "Unexpected character '@' at line 1"))
	bag.Add(diag.NewError(diag.SynExpectIdentifier, 2, source.Span{Start: 16, End: 17}, "Expected identifier at line 2"))
	bag.Add(diag.NewWarning(diag.StyNaming, 3, source.Span{Start: 22, End: 27}, "Naming violation: 'Bad_x'"))
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, 0, source.Span{}, "timings (file): total 0.10 ms"))
	bag.Add(diag.NewError(diag.IOWriteFileError, 0, source.Span{}, "Error saving changes: permission denied"))
	return bag
}

func TestReportLines(t *testing.T) {
	got := ReportLines(sampleBag())
	want := []string{
		"[LEXICAL ERROR] Unexpected character '@' at line 1",
		"[SYNTAX ERROR] Expected identifier at line 2",
		"Line 3: Naming violation: 'Bad_x'",
		"[FIXER] Error saving changes: permission denied",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q\nwant %q", got, want)
	}
	if ReportLines(nil) != nil {
		t.Fatal("nil bag must give nil lines")
	}
}

func TestPlain(t *testing.T) {
	tests := []struct {
		name string
		r    FileReport
		want string
	}{
		{
			name: "clean",
			r:    FileReport{Path: "a.js", Bag: diag.NewBag(0)},
			want: "--- Linting Report for: a.js ---\nSuccess: No style issues found.\n",
		},
		{
			name: "fixed",
			r: func() FileReport {
				bag := diag.NewBag(0)
				bag.Add(diag.NewWarning(diag.StySpacing, 1, source.Span{}, "Missing space around operator '='"))
				return FileReport{Path: "b.js", Bag: bag, Applied: 2}
			}(),
			want: "--- Linting Report for: b.js ---\nLine 1: Missing space around operator '='\n[FIXER] Applied 2 fixes automatically.\n",
		},
		{
			name: "timings only counts as clean",
			r: func() FileReport {
				bag := diag.NewBag(0)
				bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, 0, source.Span{}, "t"))
				return FileReport{Path: "c.js", Bag: bag}
			}(),
			want: "--- Linting Report for: c.js ---\nSuccess: No style issues found.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Plain(&buf, tt.r); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), tt.want)
			}
		})
	}
}

func TestPrettyExcerpt(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let ok = 1;\nlet Bad_x = 2;\n")
	file := fs.Get(fs.AddVirtual("x.js", content))

	bag := diag.NewBag(0)
	bag.Add(diag.NewWarning(diag.StyNaming, 2, source.Span{Start: 16, End: 21}, "Naming violation: 'Bad_x'").
		WithNote(source.Span{}, "pattern ^[a-z][a-zA-Z0-9]*$"))

	var buf bytes.Buffer
	if err := Pretty(&buf, FileReport{Path: "x.js", File: file, Bag: bag}, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"x.js:2:5: WARNING STY3001: Naming violation: 'Bad_x'",
		"  let Bad_x = 2;\n",
		"      ^~~~~\n",
		"note: pattern",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("colour escapes with Color=false:\n%q", out)
	}
}

func TestPrettyColorAndClean(t *testing.T) {
	var buf bytes.Buffer
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnclosedBlock, 1, source.Span{}, "Unclosed block"))
	if err := Pretty(&buf, FileReport{Path: "y.js", Bag: bag}, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected colour escapes, got %q", buf.String())
	}

	buf.Reset()
	if err := Pretty(&buf, FileReport{Path: "z.js", Bag: diag.NewBag(0)}, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Success") {
		t.Fatalf("got %q", buf.String())
	}
}
