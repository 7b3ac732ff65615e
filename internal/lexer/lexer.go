package lexer

import (
	"fmt"
	"unicode/utf8"

	"jsstyle/internal/token"

	"fortio.org/safecast"
)

// Lexer produces tokens from a single immutable buffer.
type Lexer struct {
	src       []byte
	cursor    Cursor
	line      uint32 // текущая строка, 1-based
	lineStart uint32 // смещение начала текущей строки
	anomalies []Anomaly
}

// Result is the full output of Tokenize.
type Result struct {
	Tokens    []token.Token
	Anomalies []Anomaly
}

// New creates a lexer over src.
func New(src []byte) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
		line:   1,
	}
}

// Tokenize splits src into tokens. It never fails: unclassified characters
// are recorded as anomalies and skipped.
func Tokenize(src []byte) Result {
	lx := New(src)
	toks := make([]token.Token, 0, len(src)/3+1)
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return Result{Tokens: toks, Anomalies: lx.Anomalies()}
}

// Anomalies returns the anomalies recorded so far, in input order.
func (lx *Lexer) Anomalies() []Anomaly {
	return lx.anomalies
}

// Next возвращает следующий токен (включая whitespace и "\n").
// ok == false означает конец ввода; после этого Next всегда возвращает false.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == '/':
			if tok, ok := lx.scanComment(); ok {
				return tok, true
			}
			return lx.scanOperator(), true

		case isIdentStartByte(ch):
			return lx.scanWord(), true

		case isDec(ch):
			return lx.scanNumber(), true

		case ch == '"' || ch == '\'':
			if tok, ok := lx.scanString(); ok {
				return tok, true
			}
			lx.skipAnomaly()

		case isOpByte(ch):
			return lx.scanOperator(), true

		case isPunctByte(ch):
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			return lx.emit(token.Punctuation, start), true

		case ch == '\n':
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			return lx.emit(token.Whitespace, start), true

		case isBlankByte(ch):
			return lx.scanBlanks(), true

		default:
			lx.skipAnomaly()
		}
	}
	return token.Token{}, false
}

// emit builds a token for [start, cursor) and advances line bookkeeping past
// every newline it contains.
func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{
		Kind: kind,
		Text: string(lx.src[sp.Start:sp.End]),
		Line: lx.line,
		Col:  sp.Start - lx.lineStart,
		Span: sp,
	}
	for i := sp.Start; i < sp.End; i++ {
		if lx.src[i] == '\n' {
			lx.line++
			lx.lineStart = i + 1
		}
	}
	return tok
}

// skipAnomaly drops one whole rune at the cursor and records it.
func (lx *Lexer) skipAnomaly() {
	start := lx.cursor.Mark()
	r, sz := utf8.DecodeRune(lx.src[lx.cursor.Off:])
	n, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	lx.cursor.BumpN(n)
	sp := lx.cursor.SpanFrom(start)
	lx.anomalies = append(lx.anomalies, Anomaly{
		Line:    lx.line,
		Col:     sp.Start - lx.lineStart,
		Char:    r,
		Span:    sp,
		Message: msgUnexpectedChar,
	})
}
