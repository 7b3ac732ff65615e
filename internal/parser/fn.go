package parser

import (
	"jsstyle/internal/ast"
	"jsstyle/internal/diag"
	"jsstyle/internal/token"
)

// parseFunction: `function NAME ( params ) { body }`.
func (p *Parser) parseFunction() (ast.Node, bool) {
	kw := p.advance()
	if p.eof() || p.peek().Kind != token.Identifier {
		p.errorf(diag.SynExpectFnName, kw.Line, "Expected function name at line %d", kw.Line)
		return nil, false
	}
	name := p.advance()
	fn := &ast.Function{Name: name.Text, Pos: kw.Line, Span: name.Span}

	if !p.atPunct("(") {
		p.errorf(diag.SynExpectLParen, kw.Line, "Expected '(' after function name at line %d", kw.Line)
		return nil, false
	}
	p.advance()
	if !p.parseParams(fn) {
		p.errorf(diag.SynExpectRParen, kw.Line, "Expected ')' after parameters at line %d", kw.Line)
		return nil, false
	}

	if !p.atPunct("{") {
		p.errorf(diag.SynExpectBody, kw.Line, "Expected '{' before function body at line %d", kw.Line)
		return fn, false
	}
	open := p.advance()
	fn.Body = p.parseBody(true)
	if !p.closeBlock(open, "function body") {
		return fn, false
	}
	return fn, true
}

// parseParams собирает идентификаторы до ')'. Прочие токены (значения по
// умолчанию и т.п.) пропускаются. false: если ')' так и не встретилась.
func (p *Parser) parseParams(fn *ast.Function) bool {
	for !p.eof() {
		t := p.peek()
		switch {
		case t.Is(token.Punctuation, ")"):
			p.advance()
			return true
		case t.Is(token.Punctuation, "{"), t.Is(token.Punctuation, ";"), t.Is(token.Punctuation, "}"):
			return false
		case t.Kind == token.Identifier:
			fn.Params = append(fn.Params, &ast.Param{Name: t.Text, Pos: t.Line, Span: t.Span})
		}
		p.advance()
	}
	return false
}
