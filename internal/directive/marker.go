package directive

import (
	"bytes"
	"sort"
)

// Action is what a marker does to the suppression state.
type Action uint8

const (
	// Disable starts suppression from the next line.
	Disable Action = iota + 1
	// Enable ends suppression; the marker line itself is still suppressed.
	Enable
)

func (a Action) String() string {
	switch a {
	case Disable:
		return "lint-disable"
	case Enable:
		return "lint-enable"
	default:
		return "?"
	}
}

// Marker is a single directive occurrence.
type Marker struct {
	Action Action
	Line   uint32 // 1-based
	Col    uint32 // 0-based byte column
}

var spellings = []struct {
	text   []byte
	action Action
}{
	{[]byte("/* lint-disable */"), Disable},
	{[]byte("/* lint-enable */"), Enable},
	{[]byte("// lint-disable"), Disable},
	{[]byte("// lint-enable"), Enable},
}

// findMarkers возвращает маркеры строки в порядке появления.
func findMarkers(line []byte, lineNo uint32) []Marker {
	var out []Marker
	for _, sp := range spellings {
		rest := line
		var base int
		for {
			i := bytes.Index(rest, sp.text)
			if i < 0 {
				break
			}
			out = append(out, Marker{
				Action: sp.action,
				Line:   lineNo,
				Col:    uint32(base + i), // #nosec G115 -- line length bounded by file size
			})
			base += i + len(sp.text)
			rest = rest[i+len(sp.text):]
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Col < out[j].Col })
	return out
}
