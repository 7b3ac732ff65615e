package fix

import (
	"errors"
	"fmt"
	"sort"

	"fortio.org/safecast"
)

var (
	// ErrSpanRange is returned when an edit points outside the buffer.
	ErrSpanRange = errors.New("edit span out of range")
	// ErrOverlap is returned when two edits touch the same bytes.
	ErrOverlap = errors.New("overlapping edits")
	// ErrGuard is returned when OldText does not match the buffer.
	ErrGuard = errors.New("existing text does not match expected content")
)

type indexed struct {
	Edit
	order int
}

// Apply splices edits into a copy of buf and returns the result. Offsets in
// every edit refer to buf as given. All edits are validated first: on error
// nothing is applied and buf is returned unchanged.
//
// Edits are applied from the rightmost start offset to the leftmost, so an
// applied edit never shifts the offsets of one still pending.
func Apply(buf []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return buf, nil
	}
	size, err := safecast.Conv[uint32](len(buf))
	if err != nil {
		return buf, fmt.Errorf("buffer too large: %w", err)
	}

	items := make([]indexed, len(edits))
	for i, e := range edits {
		if e.Span.Start > e.Span.End || e.Span.End > size {
			return buf, fmt.Errorf("edit %d (%s): %w", i, e.Span, ErrSpanRange)
		}
		if e.OldText != "" && string(buf[e.Span.Start:e.Span.End]) != e.OldText {
			return buf, fmt.Errorf("edit %d (%s): %w", i, e.Span, ErrGuard)
		}
		items[i] = indexed{Edit: e, order: i}
	}

	// справа налево; при равном начале: сначала более длинный span,
	// потом более поздняя вставка, чтобы вставки легли в порядке добавления
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start > b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End > b.Span.End
		}
		return a.order > b.order
	})
	if err := checkOverlaps(items); err != nil {
		return buf, err
	}

	out := append([]byte(nil), buf...)
	for _, it := range items {
		suffix := append([]byte(nil), out[it.Span.End:]...)
		out = append(append(out[:it.Span.Start], it.NewText...), suffix...)
	}
	return out, nil
}

// checkOverlaps expects items sorted by descending start.
func checkOverlaps(items []indexed) error {
	for i := 1; i < len(items); i++ {
		right, left := items[i-1], items[i]
		if left.Span.Overlaps(right.Span) {
			return fmt.Errorf("%s and %s: %w", left.Span, right.Span, ErrOverlap)
		}
	}
	return nil
}
