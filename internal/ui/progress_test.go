package ui

import (
	"strings"
	"testing"

	"jsstyle/internal/driver"
)

func TestApplyEvent(t *testing.T) {
	m := NewProgressModel("jsstyle", []string{"a.js", "b.js"}, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.items[0].status != "parsing" {
		t.Fatalf("status = %q", m.items[0].status)
	}
	if got := m.percent(); got != 0.2 {
		t.Fatalf("percent = %v", got)
	}

	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageWrite, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.js", Stage: driver.StageLoad, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "unknown.js", Status: driver.StatusDone})
	if m.finished() != 2 || m.percent() != 1 || !m.items[1].failed {
		t.Fatalf("items = %+v", m.items)
	}
	if view := m.View(); !strings.Contains(view, "(2/2)") || !strings.Contains(view, "b.js") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestDoneOnClosedChannel(t *testing.T) {
	ch := make(chan driver.Event)
	close(ch)
	m := NewProgressModel("t", []string{"a.js"}, ch).(*progressModel)
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("closed channel must produce doneMsg")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.js", 20, "short.js"},
		{"very/long/path/file.js", 10, "very..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
