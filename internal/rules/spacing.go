package rules

import (
	"fmt"

	"jsstyle/internal/diag"
	"jsstyle/internal/fix"
	"jsstyle/internal/token"
)

func isSpacedOperator(text string) bool {
	switch text {
	case "=", "+", "-", "*", "/":
		return true
	}
	return false
}

// CheckSpacing reports assignment/arithmetic operators whose immediate
// neighbours are not whitespace. Each violation carries one insertion per
// missing side. The first and last tokens of the buffer are not checked.
func CheckSpacing(toks []token.Token) []Violation {
	var out []Violation
	for i := 1; i < len(toks)-1; i++ {
		t := toks[i]
		if t.Kind != token.Operator || !isSpacedOperator(t.Text) {
			continue
		}
		missingBefore := toks[i-1].Kind != token.Whitespace
		missingAfter := toks[i+1].Kind != token.Whitespace
		if !missingBefore && !missingAfter {
			continue
		}
		v := Violation{
			Code:    diag.StySpacing,
			Line:    t.Line,
			Span:    t.Span,
			Message: fmt.Sprintf("Missing space around operator '%s'", t.Text),
		}
		if missingBefore {
			v.Edits = append(v.Edits, fix.InsertText(t.Span.Start, " "))
		}
		if missingAfter {
			v.Edits = append(v.Edits, fix.InsertText(t.Span.End, " "))
		}
		out = append(out, v)
	}
	return out
}
