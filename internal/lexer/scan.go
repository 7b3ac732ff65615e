package lexer

import (
	"jsstyle/internal/token"
)

// scanComment handles "//..." and "/* ... */". Returns false when the slash
// does not open a comment; the cursor is left untouched in that case.
func (lx *Lexer) scanComment() (token.Token, bool) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	switch b1 {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return lx.emit(token.Comment, start), true

	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return lx.emit(token.Comment, start), true
			}
			lx.cursor.Bump()
		}
		// не закрыт: комментарий до конца файла + аномалия в начале
		line, col := lx.line, uint32(start)-lx.lineStart
		tok := lx.emit(token.Comment, start)
		lx.anomalies = append(lx.anomalies, Anomaly{
			Line:    line,
			Col:     col,
			Char:    '/',
			Span:    tok.Span,
			Message: msgUnterminatedComment,
		})
		return tok, true
	}
	return token.Token{}, false
}

// scanWord сканирует идентификатор и проверяет через LookupKeyword.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if token.LookupKeyword(string(lx.src[sp.Start:sp.End])) {
		return lx.emit(token.Keyword, start)
	}
	return lx.emit(token.Identifier, start)
}

// scanNumber: digits, optionally '.' and more digits ("1." is a number too).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Eat('.') {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.emit(token.Number, start)
}

// scanString: 'x' or "x", no escapes; may span lines.
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == quote {
			return lx.emit(token.String, start), true
		}
	}
	lx.cursor.Reset(start)
	return token.Token{}, false
}

// scanOperator берёт максимальный run операторных символов,
// но останавливается перед началом комментария.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isOpByte(lx.cursor.Peek()) {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && (b1 == '/' || b1 == '*') {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Operator, start)
}

func (lx *Lexer) scanBlanks() token.Token {
	start := lx.cursor.Mark()
	for isBlankByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}
