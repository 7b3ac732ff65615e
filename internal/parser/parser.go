package parser

import (
	"fmt"

	"jsstyle/internal/ast"
	"jsstyle/internal/diag"
	"jsstyle/internal/source"
	"jsstyle/internal/token"
)

// Error is a recoverable syntax error.
type Error struct {
	Code diag.Code
	Line uint32
	Span source.Span
	Msg  string
}

func (e Error) Error() string { return e.Msg }

// Result: дерево и список ошибок. Program никогда не nil.
type Result struct {
	Program *ast.Program
	Errors  []Error
}

// Parser: состояние парсера на один буфер
type Parser struct {
	toks    []token.Token // только значимые токены: без пробелов и комментариев
	pos     int
	errs    []Error
	lastEnd uint32 // конец последнего съеденного токена, для спанов на EOF
}

// Parse builds a Program from the lexer output. It never fails; malformed
// constructs are reported in Result.Errors and skipped up to the next
// statement terminator or block close.
func Parse(tokens []token.Token) Result {
	p := &Parser{toks: make([]token.Token, 0, len(tokens))}
	for _, t := range tokens {
		if t.IsCode() && t.Kind != token.Comment {
			p.toks = append(p.toks, t)
		}
	}
	prog := &ast.Program{}
	prog.Body = p.parseBody(false)
	if prog.Body == nil {
		prog.Body = []ast.Node{}
	}
	return Result{Program: prog, Errors: p.errs}
}

// parseBody: общий цикл диспетчеризации. На верхнем уровне (nested=false)
// крутится до EOF; во вложенном теле останавливается перед '}'.
func (p *Parser) parseBody(nested bool) []ast.Node {
	var out []ast.Node
	for !p.eof() {
		t := p.peek()
		if t.Is(token.Punctuation, "}") {
			if nested {
				return out
			}
			p.advance() // лишняя '}' на верхнем уровне
			continue
		}
		nodes, ok := p.parseStatement(t)
		out = append(out, nodes...)
		if !ok {
			p.resync(nested)
		}
	}
	return out
}

// parseStatement выбирает распознаватель по первому токену.
// Возвращает узлы для текущего родителя и false, если нужна синхронизация.
func (p *Parser) parseStatement(t token.Token) ([]ast.Node, bool) {
	switch {
	case t.Kind == token.Keyword:
		switch t.Text {
		case "let", "const", "var":
			n, ok := p.parseVariable()
			return one(n), ok
		case "function":
			n, ok := p.parseFunction()
			return one(n), ok
		case "if", "while", "for":
			n, ok := p.parseControl()
			return one(n), ok
		}
	case t.Is(token.Punctuation, "{"):
		// анонимный блок (например тело else): дети уходят текущему родителю
		open := p.advance()
		body := p.parseBody(true)
		if !p.closeBlock(open, "block") {
			return body, false
		}
		return body, true
	}
	p.advance()
	return nil, true
}

// resync прокручивает до ';' (съедается) или '}'. На верхнем уровне '}'
// тоже съедается, во вложенном теле остаётся для закрытия блока.
func (p *Parser) resync(nested bool) {
	for !p.eof() {
		t := p.peek()
		if t.Is(token.Punctuation, ";") {
			p.advance()
			return
		}
		if t.Is(token.Punctuation, "}") {
			if !nested {
				p.advance()
			}
			return
		}
		p.advance()
	}
}

func (p *Parser) errorf(code diag.Code, line uint32, format string, args ...any) {
	p.errs = append(p.errs, Error{
		Code: code,
		Line: line,
		Span: p.diagSpan(),
		Msg:  fmt.Sprintf(format, args...),
	})
}

func one(n ast.Node) []ast.Node {
	if n == nil {
		return nil
	}
	return []ast.Node{n}
}
