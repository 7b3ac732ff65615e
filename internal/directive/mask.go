package directive

import (
	"bytes"
)

// Mask is the set of suppressed lines of one buffer. The zero Mask
// suppresses nothing.
type Mask struct {
	masked  []bool // индекс = номер строки
	markers []Marker
}

// Scan builds the mask for src. Every line strictly after a disable marker
// through and including the next enable marker is suppressed; a disable
// without a matching enable runs to end of input.
func Scan(src []byte) Mask {
	lines := bytes.Split(src, []byte{'\n'})
	m := Mask{masked: make([]bool, len(lines)+1)}
	disabled := false
	for i, line := range lines {
		lineNo := uint32(i + 1) // #nosec G115 -- line count bounded by file size
		if disabled {
			m.masked[lineNo] = true
		}
		for _, mk := range findMarkers(line, lineNo) {
			m.markers = append(m.markers, mk)
			switch mk.Action {
			case Disable:
				disabled = true
			case Enable:
				disabled = false
			}
		}
	}
	return m
}

// Masked reports whether line is suppressed.
func (m Mask) Masked(line uint32) bool {
	return int(line) < len(m.masked) && m.masked[line]
}

// Lines returns suppressed line numbers in ascending order.
func (m Mask) Lines() []uint32 {
	var out []uint32
	for i, ok := range m.masked {
		if ok {
			out = append(out, uint32(i)) // #nosec G115 -- bounded by line count
		}
	}
	return out
}

// Len returns the number of suppressed lines.
func (m Mask) Len() int {
	n := 0
	for _, ok := range m.masked {
		if ok {
			n++
		}
	}
	return n
}

// Markers returns every marker found, in source order.
func (m Mask) Markers() []Marker {
	return m.markers
}
