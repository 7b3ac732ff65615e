package lexer

import "testing"

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	c := NewCursor([]byte("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if c.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := c.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !c.EOF() {
		t.Fatal("expected EOF")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("Peek/Bump at EOF must return 0")
	}
}

func TestMarkSpanReset(t *testing.T) {
	c := NewCursor([]byte("let x"))
	m := c.Mark()
	c.Bump()
	c.Bump()
	c.Bump()
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 3 {
		t.Fatalf("SpanFrom = %v, want 0-3", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatalf("Reset: Off = %d", c.Off)
	}
	if !c.Eat('l') || c.Eat('x') {
		t.Fatal("Eat mismatch")
	}
}

func TestPeek2AtEnd(t *testing.T) {
	c := NewCursor([]byte("/"))
	if _, _, ok := c.Peek2(); ok {
		t.Fatal("Peek2 must fail with one byte left")
	}
	c.BumpN(10)
	if c.Off != c.Limit {
		t.Fatalf("BumpN must clamp, Off=%d", c.Off)
	}
}
