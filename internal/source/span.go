package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) into the original buffer.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// ZeroideToStart возвращает пустой span в начале s (точка вставки слева).
func (s Span) ZeroideToStart() Span {
	return Span{Start: s.Start, End: s.Start}
}

// ZeroideToEnd возвращает пустой span в конце s (точка вставки справа).
func (s Span) ZeroideToEnd() Span {
	return Span{Start: s.End, End: s.End}
}

// Overlaps reports whether two spans share at least one byte.
// Empty spans never overlap anything except a non-empty span that strictly contains them.
func (s Span) Overlaps(other Span) bool {
	if s.Empty() && other.Empty() {
		return false
	}
	if s.Empty() {
		return other.Start < s.Start && s.Start < other.End
	}
	if other.Empty() {
		return s.Start < other.Start && other.Start < s.End
	}
	return s.Start < other.End && other.Start < s.End
}
