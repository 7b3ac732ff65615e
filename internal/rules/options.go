package rules

import (
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultNamingPattern accepts lowerCamelCase identifiers.
const DefaultNamingPattern = `^[a-z][a-zA-Z0-9]*$`

// NamingMatchTimeout bounds a single naming match.
const NamingMatchTimeout = 100 * time.Millisecond

const defaultMaxEmptyLines = 2

// Options are the rule settings after configuration has been resolved.
type Options struct {
	// Naming is matched against declared identifiers from their first
	// character; see CompileNaming.
	Naming                 *regexp2.Regexp
	MaxEmptyLines          int
	MaxComplexity          int
	RequireSpacesOperators bool
	NoUnusedVars           bool
}

// DefaultOptions returns the built-in settings.
func DefaultOptions() Options {
	return Options{
		Naming:                 MustCompileNaming(DefaultNamingPattern),
		MaxEmptyLines:          defaultMaxEmptyLines,
		MaxComplexity:          10,
		RequireSpacesOperators: true,
		NoUnusedVars:           true,
	}
}

// CompileNaming compiles an ECMAScript naming pattern anchored at the start
// of the identifier. A trailing $ is still up to the pattern.
func CompileNaming(pattern string) (*regexp2.Regexp, error) {
	if _, err := regexp2.Compile(pattern, regexp2.ECMAScript); err != nil {
		return nil, err
	}
	re, err := regexp2.Compile(`^(?:`+pattern+`)`, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = NamingMatchTimeout
	return re, nil
}

// MustCompileNaming is CompileNaming for known-good patterns.
func MustCompileNaming(pattern string) *regexp2.Regexp {
	re, err := CompileNaming(pattern)
	if err != nil {
		panic(err)
	}
	return re
}
