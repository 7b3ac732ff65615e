package rules

import (
	"jsstyle/internal/diag"
	"jsstyle/internal/source"
	"jsstyle/internal/token"
)

// CheckBlankLines reports runs of max or more empty lines between
// consecutive non-whitespace tokens. The violation is anchored on the first
// empty line of the gap. A non-positive max means the default of 2.
func CheckBlankLines(toks []token.Token, max int) []Violation {
	if max <= 0 {
		max = defaultMaxEmptyLines
	}
	var out []Violation
	var prev *token.Token
	for i := range toks {
		t := &toks[i]
		if t.Kind == token.Whitespace {
			continue
		}
		if prev != nil {
			prevEnd := prev.EndLine()
			blanks := int(t.Line) - int(prevEnd) - 1
			if blanks >= max {
				out = append(out, Violation{
					Code:    diag.StyBlankLines,
					Line:    prevEnd + 1,
					Span:    source.Span{Start: prev.Span.End, End: t.Span.Start},
					Message: "Too many blank lines",
				})
			}
		}
		prev = t
	}
	return out
}
