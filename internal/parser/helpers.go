package parser

import (
	"jsstyle/internal/diag"
	"jsstyle/internal/source"
	"jsstyle/internal/token"
)

func (p *Parser) eof() bool {
	return p.pos >= len(p.toks)
}

// peek возвращает текущий токен или нулевой Token на EOF.
func (p *Parser) peek() token.Token {
	if p.eof() {
		return token.Token{}
	}
	return p.toks[p.pos]
}

// advance: съедает следующий токен и обновляет lastEnd
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.eof() {
		p.pos++
		p.lastEnd = tok.Span.End
	}
	return tok
}

func (p *Parser) at(k token.Kind, text string) bool {
	return !p.eof() && p.peek().Is(k, text)
}

func (p *Parser) atPunct(text string) bool {
	return p.at(token.Punctuation, text)
}

// diagSpan: span текущего токена, либо пустой span после последнего на EOF.
func (p *Parser) diagSpan() source.Span {
	if p.eof() {
		return source.Span{Start: p.lastEnd, End: p.lastEnd}
	}
	return p.peek().Span
}

// closeBlock ожидает '}' для блока, открытого open.
func (p *Parser) closeBlock(open token.Token, what string) bool {
	if p.atPunct("}") {
		p.advance()
		return true
	}
	p.errorf(diag.SynUnclosedBlock, open.Line, "Unclosed %s opened at line %d", what, open.Line)
	return false
}
