package diag

import (
	"testing"

	"jsstyle/internal/source"
)

func TestCodeIDAndCategory(t *testing.T) {
	tests := []struct {
		code Code
		id   string
		cat  Category
	}{
		{LexUnknownChar, "LEX1001", CatLexical},
		{SynExpectIdentifier, "SYN2001", CatSyntax},
		{StyUnusedVar, "STY3005", CatStyle},
		{IOWriteFileError, "IO4002", CatIO},
		{CfgBadPattern, "CFG5003", CatConfig},
		{ObsTimings, "OBS6001", CatObserv},
		{Code(9999), "E0000", CatUnknown},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("ID(%d) = %s, want %s", tt.code, got, tt.id)
		}
		if got := tt.code.Category(); got != tt.cat {
			t.Errorf("Category(%d) = %d, want %d", tt.code, got, tt.cat)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Fatal("unknown code must fall back to the generic title")
	}
}

func TestBagLimitAndMerge(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		b.Add(NewWarning(StyNaming, uint32(i+1), source.Span{}, "x"))
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if b.HasErrors() || !b.HasWarnings() {
		t.Fatal("expected warnings only")
	}

	other := NewBag(0)
	other.Add(NewError(SynExpectIdentifier, 1, source.Span{}, "Expected identifier at line 1"))
	b.Merge(other)
	if b.Len() != 3 || !b.HasErrors() {
		t.Fatalf("after merge Len = %d", b.Len())
	}
	if b.Count(CatStyle) != 2 || b.Count(CatSyntax) != 1 {
		t.Fatal("unexpected category counts")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag}
	b := ReportWarning(r, StySpacing, 3, source.Span{Start: 5, End: 6}, "Missing space around operator '='").
		WithFix("insert space", FixEdit{Span: source.Span{Start: 5, End: 5}, NewText: " "})
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Line != 3 || len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != " " {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}
