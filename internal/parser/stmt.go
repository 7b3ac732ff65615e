package parser

import (
	"jsstyle/internal/ast"
	"jsstyle/internal/diag"
	"jsstyle/internal/token"
)

// parseVariable: `let|const|var IDENT [= ...] [;]`.
func (p *Parser) parseVariable() (ast.Node, bool) {
	kw := p.advance()
	if p.eof() || p.peek().Kind != token.Identifier {
		p.errorf(diag.SynExpectIdentifier, kw.Line, "Expected identifier at line %d", kw.Line)
		return nil, false
	}
	name := p.advance()
	node := &ast.VariableDeclaration{
		Keyword: kw.Text,
		Name:    name.Text,
		Pos:     kw.Line,
		Span:    name.Span,
	}
	if p.at(token.Operator, "=") {
		p.advance()
		p.skipInitializer()
	}
	if p.atPunct(";") {
		p.advance()
	}
	return node, true
}

// skipInitializer пропускает выражение без разбора: до ';' или '}' вне
// скобок, либо до ключевого слова, начинающего новую инструкцию.
func (p *Parser) skipInitializer() {
	depth := 0
	for !p.eof() {
		t := p.peek()
		if depth == 0 {
			if t.Is(token.Punctuation, ";") || t.Is(token.Punctuation, "}") {
				return
			}
			if t.Kind == token.Keyword && startsStatement(t.Text) {
				return
			}
		}
		if t.Kind == token.Punctuation {
			switch t.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				// лишняя закрывающая скобка на нулевом уровне пропускается
				if depth > 0 {
					depth--
				}
			}
		}
		p.advance()
	}
}

// startsStatement: function сюда не входит, function-выражение в
// инициализаторе допустимо.
func startsStatement(kw string) bool {
	switch kw {
	case "let", "const", "var", "if", "while", "for", "return":
		return true
	}
	return false
}
