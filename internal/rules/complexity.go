package rules

import (
	"fmt"

	"jsstyle/internal/ast"
	"jsstyle/internal/diag"
)

// Complexity is 1 plus the weight of every node in fn's subtree.
func Complexity(fn *ast.Function) int {
	return ast.SubtreeWeight(fn) + 1
}

// CheckComplexity reports every function, nested ones included, whose
// complexity exceeds max.
func CheckComplexity(prog *ast.Program, max int) []Violation {
	var out []Violation
	ast.Inspect(prog, func(n ast.Node) bool {
		fn, ok := n.(*ast.Function)
		if !ok {
			return true
		}
		if total := Complexity(fn); total > max {
			out = append(out, Violation{
				Code:    diag.StyComplexity,
				Line:    fn.Line(),
				Span:    fn.Span,
				Message: fmt.Sprintf("complexity too high: %d", total),
			})
		}
		return true
	})
	return out
}
