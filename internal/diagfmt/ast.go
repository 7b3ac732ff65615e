package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"jsstyle/internal/ast"
	"jsstyle/internal/parser"
	"jsstyle/internal/source"
)

// ASTNodeOutput: узел дерева в JSON-дампе.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Name     string          `json:"name,omitempty"`
	Line     uint32          `json:"line"`
	Span     *source.Span    `json:"span,omitempty"`
	Weight   int             `json:"weight,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

func nodeLabel(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Program:
		return fmt.Sprintf("Program (%d statements)", len(n.Body))
	case *ast.VariableDeclaration:
		return fmt.Sprintf("VariableDeclaration %s %s (line %d, span %s)", n.Keyword, n.Name, n.Pos, n.Span)
	case *ast.Function:
		return fmt.Sprintf("Function %s (line %d, span %s)", n.Name, n.Pos, n.Span)
	case *ast.Param:
		return fmt.Sprintf("Param %s (line %d)", n.Name, n.Pos)
	case *ast.ControlStructure:
		return fmt.Sprintf("ControlStructure %s (line %d, weight %d)", n.Keyword, n.Pos, n.Weight())
	}
	return ast.Kind(n)
}

// FormatASTPretty печатает дерево с псевдографикой, затем ошибки разбора.
func FormatASTPretty(w io.Writer, res parser.Result) error {
	var b strings.Builder
	b.WriteString(nodeLabel(res.Program))
	b.WriteByte('\n')
	writeChildren(&b, res.Program.Children(), "")
	for _, e := range res.Errors {
		fmt.Fprintf(&b, "[SYNTAX ERROR] %s\n", e.Msg)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeChildren(b *strings.Builder, children []ast.Node, prefix string) {
	for i, child := range children {
		last := i == len(children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix + branch + nodeLabel(child) + "\n")
		writeChildren(b, child.Children(), prefix+next)
	}
}

// FormatASTJSON выводит дерево в JSON формате.
func FormatASTJSON(w io.Writer, res parser.Result) error {
	out := struct {
		AST    ASTNodeOutput `json:"ast"`
		Errors []string      `json:"errors"`
	}{AST: nodeJSON(res.Program), Errors: []string{}}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, e.Msg)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func nodeJSON(n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{Type: ast.Kind(n), Line: n.Line(), Weight: ast.Weight(n)}
	switch n := n.(type) {
	case *ast.VariableDeclaration:
		out.Name, out.Span = n.Name, &n.Span
	case *ast.Function:
		out.Name, out.Span = n.Name, &n.Span
	case *ast.Param:
		out.Name, out.Span = n.Name, &n.Span
	case *ast.ControlStructure:
		out.Name, out.Span = n.Keyword, &n.Span
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, nodeJSON(c))
	}
	return out
}
