package fix

import (
	"jsstyle/internal/source"
)

// Edit replaces Span of the original buffer with NewText.
// An empty Span is an insertion before Span.Start.
type Edit struct {
	Span    source.Span
	NewText string
	// OldText, если задан, должен совпадать с текущим текстом под Span.
	OldText string
}

// InsertText creates an insertion at offset off.
func InsertText(off uint32, text string) Edit {
	return Edit{Span: source.Span{Start: off, End: off}, NewText: text}
}

// ReplaceSpan creates an edit that swaps the text under span; expect guards
// against stale offsets and may be empty.
func ReplaceSpan(span source.Span, newText, expect string) Edit {
	return Edit{Span: span, NewText: newText, OldText: expect}
}

// DeleteSpan removes the text under span.
func DeleteSpan(span source.Span, expect string) Edit {
	return Edit{Span: span, OldText: expect}
}

// Set collects edits produced by independent checks. Order of Add is kept:
// insertions at the same offset are applied in that order.
type Set struct {
	edits []Edit
}

// NewSet creates an empty edit set.
func NewSet() *Set {
	return &Set{}
}

// Add appends edits. A nil Set silently drops them so checks can be run
// without a patch engine attached.
func (s *Set) Add(edits ...Edit) {
	if s == nil {
		return
	}
	s.edits = append(s.edits, edits...)
}

// Edits returns a copy of the collected edits in insertion order.
func (s *Set) Edits() []Edit {
	if s == nil {
		return nil
	}
	return append([]Edit(nil), s.edits...)
}

// Len returns the number of collected edits.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.edits)
}
