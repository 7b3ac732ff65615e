package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jsstyle/internal/ast"
	"jsstyle/internal/lexer"
)

// CheckTokenInvariants runs the lexer invariants on a tokenized buffer:
// 1) every token's Text is exactly src[Span]
// 2) tokens and dropped characters tile src without gaps or overlaps
// 3) token lines never decrease
func CheckTokenInvariants(src []byte, res lexer.Result) error {
	size, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	dropped := make([]lexer.Anomaly, 0, len(res.Anomalies))
	for _, an := range res.Anomalies {
		if !an.Unterminated() {
			dropped = append(dropped, an)
		}
	}

	var (
		off  uint32
		line uint32 = 1
		ai   int
	)
	for i, tok := range res.Tokens {
		// пропущенные символы стоят ровно между токенами
		for ai < len(dropped) && dropped[ai].Span.Start == off {
			off = dropped[ai].Span.End
			ai++
		}
		sp := tok.Span
		if sp.Start != off {
			return fmt.Errorf("token %d %q starts at %d, want %d", i, tok.Text, sp.Start, off)
		}
		if sp.End <= sp.Start || sp.End > size {
			return fmt.Errorf("token %d has bad span %v", i, sp)
		}
		if string(src[sp.Start:sp.End]) != tok.Text {
			return fmt.Errorf("token %d text %q does not match source %q", i, tok.Text, src[sp.Start:sp.End])
		}
		if tok.Line < line {
			return fmt.Errorf("token %d line %d goes back from %d", i, tok.Line, line)
		}
		line = tok.Line
		off = sp.End
	}
	for ai < len(dropped) && dropped[ai].Span.Start == off {
		off = dropped[ai].Span.End
		ai++
	}
	if ai != len(dropped) {
		return fmt.Errorf("anomaly at %v is not between tokens", dropped[ai].Span)
	}
	if off != size {
		return fmt.Errorf("tokens cover %d of %d bytes", off, size)
	}
	return nil
}

// CheckTreeInvariants checks that node lines are non-decreasing in
// pre-order and stay within [1, lastLine].
func CheckTreeInvariants(prog *ast.Program, lastLine uint32) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	var (
		prev uint32 = 1
		bad  error
	)
	ast.Inspect(prog, func(n ast.Node) bool {
		if bad != nil {
			return false
		}
		line := n.Line()
		switch {
		case line < prev:
			bad = fmt.Errorf("%s at line %d precedes line %d", ast.Kind(n), line, prev)
		case line > lastLine:
			bad = fmt.Errorf("%s at line %d is past the last line %d", ast.Kind(n), line, lastLine)
		}
		prev = line
		return bad == nil
	})
	return bad
}
