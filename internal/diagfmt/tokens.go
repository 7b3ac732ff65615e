package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"jsstyle/internal/lexer"
	"jsstyle/internal/source"
	"jsstyle/internal/token"
)

// TokenOutput: токен в JSON-дампе.
type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text"`
	Line uint32      `json:"line"`
	Col  uint32      `json:"col"`
	Span source.Span `json:"span"`
}

// AnomalyOutput: отброшенный символ или незакрытый комментарий.
type AnomalyOutput struct {
	Line    uint32      `json:"line"`
	Col     uint32      `json:"col"`
	Char    string      `json:"char,omitempty"`
	Message string      `json:"message"`
	Span    source.Span `json:"span"`
}

type tokensOutput struct {
	Tokens    []TokenOutput   `json:"tokens"`
	Anomalies []AnomalyOutput `json:"anomalies,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
// Пробельные токены пропускаются, если withSpace == false.
func FormatTokensPretty(w io.Writer, res lexer.Result, withSpace bool) error {
	n := 0
	for _, tok := range res.Tokens {
		if tok.Kind == token.Whitespace && !withSpace {
			continue
		}
		n++
		if _, err := fmt.Fprintf(w, "%3d: %-12s %-18q at %d:%d [%s]\n",
			n, tok.Kind.String(), tok.Text, tok.Line, tok.Col, tok.Span); err != nil {
			return err
		}
	}
	for _, an := range res.Anomalies {
		if _, err := fmt.Fprintf(w, "anomaly: %s\n", an); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены и аномалии в JSON формате.
func FormatTokensJSON(w io.Writer, res lexer.Result) error {
	out := tokensOutput{Tokens: make([]TokenOutput, 0, len(res.Tokens))}
	for _, tok := range res.Tokens {
		out.Tokens = append(out.Tokens, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: tok.Line,
			Col:  tok.Col,
			Span: tok.Span,
		})
	}
	for _, an := range res.Anomalies {
		ao := AnomalyOutput{Line: an.Line, Col: an.Col, Message: an.Message, Span: an.Span}
		if !an.Unterminated() {
			ao.Char = string(an.Char)
		}
		out.Anomalies = append(out.Anomalies, ao)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
