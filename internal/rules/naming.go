package rules

import (
	"fmt"

	"jsstyle/internal/diag"
	"jsstyle/internal/token"

	"github.com/dlclark/regexp2"
)

// CheckNaming reports every declared identifier that does not match re.
func CheckNaming(toks []token.Token, re *regexp2.Regexp) []Violation {
	if re == nil {
		return nil
	}
	var out []Violation
	for i, t := range toks {
		if t.Kind != token.Identifier || !isDeclared(toks, i) {
			continue
		}
		// ошибка regexp2 (MatchTimeout) считается несовпадением
		if ok, err := re.MatchString(t.Text); err == nil && ok {
			continue
		}
		out = append(out, Violation{
			Code:    diag.StyNaming,
			Line:    t.Line,
			Span:    t.Span,
			Message: fmt.Sprintf("Naming violation: '%s'", t.Text),
		})
	}
	return out
}
