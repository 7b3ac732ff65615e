package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the jsstyle CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each of major, minor and patch coloured.
// Anything that is not a dotted triple is returned as is.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." + versionMinorColor.Sprint(parts[1]) + "." + versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Info is the one-line version banner with optional build metadata.
func Info(colored bool) string {
	v := Version
	if colored {
		v = Colored()
	}
	out := fmt.Sprintf("jsstyle %s", v)
	if GitCommit != "" {
		out += fmt.Sprintf(" (commit %s)", GitCommit)
	}
	if BuildDate != "" {
		out += fmt.Sprintf(" built %s", BuildDate)
	}
	return out
}
