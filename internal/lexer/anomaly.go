package lexer

import (
	"fmt"

	"jsstyle/internal/source"
)

// Anomaly is a piece of input the lexer could not classify.
// The bytes it covers are not part of any token.
type Anomaly struct {
	Line    uint32
	Col     uint32
	Char    rune
	Span    source.Span
	Message string
}

const (
	msgUnexpectedChar      = "unexpected character"
	msgUnterminatedComment = "unterminated block comment"
)

// Unterminated reports whether the anomaly is an unclosed block comment
// rather than a dropped character.
func (a Anomaly) Unterminated() bool { return a.Message == msgUnterminatedComment }

func (a Anomaly) String() string {
	if a.Unterminated() {
		return fmt.Sprintf("%d:%d: %s", a.Line, a.Col, a.Message)
	}
	return fmt.Sprintf("%d:%d: %s %q", a.Line, a.Col, a.Message, a.Char)
}
