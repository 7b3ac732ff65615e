package parser

import (
	"jsstyle/internal/ast"
	"jsstyle/internal/diag"
	"jsstyle/internal/token"
)

// parseControl: `if|while|for (cond) { body }`. Условие пропускается со
// счётчиком скобок; тело без фигурных скобок не разбирается.
func (p *Parser) parseControl() (ast.Node, bool) {
	kw := p.advance()
	node := &ast.ControlStructure{Keyword: kw.Text, Pos: kw.Line, Span: kw.Span}

	if p.atPunct("(") {
		p.advance()
		depth := 1
		for depth > 0 {
			if p.eof() {
				p.errorf(diag.SynUnclosedCondition, kw.Line, "Unclosed condition of '%s' at line %d", kw.Text, kw.Line)
				return node, false
			}
			t := p.advance()
			switch {
			case t.Is(token.Punctuation, "("):
				depth++
			case t.Is(token.Punctuation, ")"):
				depth--
			}
		}
	}

	if p.atPunct("{") {
		open := p.advance()
		node.Body = p.parseBody(true)
		if !p.closeBlock(open, "'"+kw.Text+"' body") {
			return node, false
		}
	}
	return node, true
}
