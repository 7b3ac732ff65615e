package driver

import (
	"context"
	"path/filepath"
	"testing"
)

func TestLintDir(t *testing.T) {
	dir := t.TempDir()
	writeJS(t, filepath.Join(dir, "b.js"), "let Bad = 1;\nBad;\n", 0o600)
	writeJS(t, filepath.Join(dir, "a.js"), "let ok = 1;\nok;\n", 0o600)
	writeJS(t, filepath.Join(dir, "nested", "c.js"), "let c=1;\nc;\n", 0o600)
	writeJS(t, filepath.Join(dir, "notes.txt"), "let Bad=1;", 0o600)

	events := make(chan Event, 64)
	opts := defaultOptions()
	opts.Jobs = 2
	opts.Progress = ChannelSink{Ch: events}
	results, err := LintDir(context.Background(), dir, opts)
	close(events)
	if err != nil {
		t.Fatalf("LintDir: %v", err)
	}

	wantPaths := []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "b.js"),
		filepath.Join(dir, "nested", "c.js"),
	}
	if len(results) != len(wantPaths) {
		t.Fatalf("got %d results", len(results))
	}
	for i, res := range results {
		if res.Path != wantPaths[i] {
			t.Fatalf("result %d path %q, want %q", i, res.Path, wantPaths[i])
		}
	}
	if results[0].Reported() || !results[1].Reported() || !results[2].Reported() {
		t.Fatalf("reported flags: %v %v %v", results[0].Reported(), results[1].Reported(), results[2].Reported())
	}

	done := map[string]int{}
	queued := 0
	for ev := range events {
		switch ev.Status {
		case StatusQueued:
			queued++
		case StatusDone:
			done[ev.File]++
		}
	}
	if queued != 3 || len(done) != 3 {
		t.Fatalf("queued=%d done=%v", queued, done)
	}
}

func TestLintDirEmpty(t *testing.T) {
	results, err := LintDir(context.Background(), t.TempDir(), defaultOptions())
	if err != nil || results != nil {
		t.Fatalf("results=%v err=%v", results, err)
	}
	if _, err := LintDir(context.Background(), filepath.Join(t.TempDir(), "missing"), defaultOptions()); err == nil {
		t.Fatal("expected walk error")
	}
}

func TestLintDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeJS(t, filepath.Join(dir, "a.js"), "let a = 1;\na;\n", 0o600)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LintDir(ctx, dir, defaultOptions()); err == nil {
		t.Fatal("expected context error")
	}
}
