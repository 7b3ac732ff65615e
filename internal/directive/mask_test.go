package directive

import (
	"reflect"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []uint32
	}{
		{
			name:  "no markers",
			lines: []string{"let a;", "let b;"},
			want:  nil,
		},
		{
			name: "disable then enable",
			lines: []string{
				"let a;",
				"/* lint-disable */",
				"let Bad_1;",
				"let Bad_2;",
				"/* lint-enable */",
				"let Bad_3;",
			},
			// строка с disable не подавляется, строка с enable: подавляется
			want: []uint32{3, 4, 5},
		},
		{
			name:  "unterminated disable runs to end",
			lines: []string{"let a; /* lint-disable */", "x", "y"},
			want:  []uint32{2, 3},
		},
		{
			name:  "line comment spelling",
			lines: []string{"// lint-disable", "x", "// lint-enable", "y"},
			want:  []uint32{2, 3},
		},
		{
			name:  "disable and enable on one line",
			lines: []string{"/* lint-disable */ x /* lint-enable */", "y"},
			want:  nil,
		},
		{
			name:  "stray enable is harmless",
			lines: []string{"/* lint-enable */", "x"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Scan([]byte(strings.Join(tt.lines, "\n")))
			if got := m.Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Lines = %v, want %v", got, tt.want)
			}
			if m.Len() != len(tt.want) {
				t.Fatalf("Len = %d, want %d", m.Len(), len(tt.want))
			}
		})
	}
}

func TestMaskedOutOfRange(t *testing.T) {
	var zero Mask
	if zero.Masked(1) {
		t.Fatal("zero mask must not suppress")
	}
	m := Scan([]byte("/* lint-disable */\nx"))
	if !m.Masked(2) || m.Masked(1) || m.Masked(99) {
		t.Fatalf("unexpected mask %v", m.Lines())
	}
}

func TestMarkersInOrder(t *testing.T) {
	m := Scan([]byte("a /* lint-enable */ b /* lint-disable */\n// lint-enable"))
	got := m.Markers()
	want := []Marker{
		{Action: Enable, Line: 1, Col: 2},
		{Action: Disable, Line: 1, Col: 22},
		{Action: Enable, Line: 2, Col: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Markers = %+v, want %+v", got, want)
	}
}
