package parser

import (
	"fmt"
	"strings"
	"testing"

	"jsstyle/internal/ast"
	"jsstyle/internal/lexer"
)

func parseSource(t *testing.T, input string) Result {
	t.Helper()
	res := Parse(lexer.Tokenize([]byte(input)).Tokens)
	if res.Program == nil {
		t.Fatal("Parse returned nil Program")
	}
	return res
}

func errorsSummary(errs []Error) string {
	if len(errs) == 0 {
		return "<none>"
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Msg
	}
	return strings.Join(lines, "; ")
}

// shape печатает дерево компактно: Kind(name)[children...]
func shape(n ast.Node) string {
	var sb strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch v := n.(type) {
		case *ast.Program:
			sb.WriteString("Program")
		case *ast.VariableDeclaration:
			fmt.Fprintf(&sb, "Var(%s)", v.Name)
		case *ast.Function:
			fmt.Fprintf(&sb, "Fn(%s)", v.Name)
		case *ast.Param:
			fmt.Fprintf(&sb, "Param(%s)", v.Name)
		case *ast.ControlStructure:
			fmt.Fprintf(&sb, "Ctl(%s)", v.Keyword)
		}
		kids := n.Children()
		if len(kids) == 0 {
			return
		}
		sb.WriteString("[")
		for i, c := range kids {
			if i > 0 {
				sb.WriteString(" ")
			}
			walk(c)
		}
		sb.WriteString("]")
	}
	walk(n)
	return sb.String()
}
