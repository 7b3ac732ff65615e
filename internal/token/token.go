package token

import (
	"strings"

	"jsstyle/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Line uint32 // 1-based
	Col  uint32 // 0-based
	Span source.Span
}

// IsCode reports whether the token matters for structure (everything but whitespace).
func (t Token) IsCode() bool { return t.Kind != Whitespace }

// IsNewline reports whether the token is a line break.
func (t Token) IsNewline() bool { return t.Kind == Whitespace && t.Text == "\n" }

// Is reports whether the token has the given kind and text.
func (t Token) Is(k Kind, text string) bool { return t.Kind == k && t.Text == text }

// IsDecl reports whether the token is a declaration keyword.
func (t Token) IsDecl() bool { return t.Kind == Keyword && IsDeclKeyword(t.Text) }

// EndLine returns the line on which the token ends. Block comments may span lines.
func (t Token) EndLine() uint32 {
	if t.Kind != Comment {
		return t.Line
	}
	return t.Line + uint32(strings.Count(t.Text, "\n")) // #nosec G115 -- bounded by file size
}
