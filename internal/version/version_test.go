package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	tests := []struct {
		name            string
		version, commit string
		date            string
		want            string
	}{
		{"bare", "1.2.3", "", "", "jsstyle 1.2.3"},
		{"commit", "1.2.3", "abc123", "", "jsstyle 1.2.3 (commit abc123)"},
		{"full", "0.1.0-dev", "abc123", "2024-01-15", "jsstyle 0.1.0-dev (commit abc123) built 2024-01-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
			if got := Info(false); got != tt.want {
				t.Fatalf("Info = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColored(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })
	color.NoColor = true

	Version = "1.2.3-rc.1"
	if got := Colored(); got != "1.2.3-rc.1" {
		t.Fatalf("Colored = %q", got)
	}
	Version = "nightly"
	if got := Colored(); got != "nightly" {
		t.Fatalf("Colored = %q", got)
	}
}
