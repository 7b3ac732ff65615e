package rules

import (
	"fmt"

	"jsstyle/internal/ast"
	"jsstyle/internal/diag"
	"jsstyle/internal/token"
)

// allowUnused is never reported even when declared and not referenced.
const allowUnused = "console"

// CheckUnused reports declared names (variables and parameters) that never
// appear as an identifier outside a declaration. Names are compared across
// the whole buffer, without scopes.
func CheckUnused(prog *ast.Program, toks []token.Token) []Violation {
	used := make(map[string]struct{})
	for i, t := range toks {
		if t.Kind == token.Identifier && !isDeclared(toks, i) {
			used[t.Text] = struct{}{}
		}
	}

	var out []Violation
	report := func(name string, n ast.Node, v Violation) {
		if name == allowUnused {
			return
		}
		if _, ok := used[name]; ok {
			return
		}
		v.Code = diag.StyUnusedVar
		v.Line = n.Line()
		v.Message = fmt.Sprintf("Unused variable: '%s'", name)
		out = append(out, v)
	}
	ast.Inspect(prog, func(n ast.Node) bool {
		switch d := n.(type) {
		case *ast.VariableDeclaration:
			report(d.Name, d, Violation{Span: d.Span})
		case *ast.Param:
			report(d.Name, d, Violation{Span: d.Span})
		}
		return true
	})
	return out
}
