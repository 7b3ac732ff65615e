package rules

import (
	"fmt"

	"jsstyle/internal/diag"
	"jsstyle/internal/fix"
	"jsstyle/internal/source"
)

// Violation is one finding of a check.
type Violation struct {
	Code    diag.Code
	Line    uint32
	Span    source.Span
	Message string
	Edits   []fix.Edit
}

func (v Violation) String() string {
	return fmt.Sprintf("Line %d: %s", v.Line, v.Message)
}

// Diagnostic converts the violation into a warning-level diagnostic.
func (v Violation) Diagnostic() diag.Diagnostic {
	edits := make([]diag.FixEdit, len(v.Edits))
	for i, e := range v.Edits {
		edits[i] = diag.FixEdit{Span: e.Span, NewText: e.NewText}
	}
	return diag.ReportWarning(nil, v.Code, v.Line, v.Span, v.Message).
		WithFix("insert missing spaces", edits...).
		Diagnostic()
}
