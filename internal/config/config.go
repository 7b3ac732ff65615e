package config

import (
	"jsstyle/internal/rules"

	"github.com/dlclark/regexp2"
)

// DefaultPath is looked up in the working directory when no explicit
// config is given.
const DefaultPath = "style_config.json"

// Recognised keys.
const (
	KeyNamingPattern          = "naming_pattern"
	KeyMaxEmptyLines          = "max_empty_lines"
	KeyMaxComplexity          = "max_complexity"
	KeyIndentationSize        = "indentation_size"
	KeyRequireSpacesOperators = "require_spaces_operators"
	KeyNoUnusedVars           = "no_unused_vars"
	KeyAutofix                = "autofix"
)

// Config is the resolved settings set.
type Config struct {
	NamingPattern          string
	MaxEmptyLines          int
	MaxComplexity          int
	IndentationSize        int // принимается, но ни одна проверка его не использует
	RequireSpacesOperators bool
	NoUnusedVars           bool
	Autofix                bool

	// Source is the file the settings came from; empty for defaults.
	Source string

	naming *regexp2.Regexp
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		NamingPattern:          rules.DefaultNamingPattern,
		MaxEmptyLines:          2,
		MaxComplexity:          10,
		IndentationSize:        4,
		RequireSpacesOperators: true,
		NoUnusedVars:           true,
		Autofix:                false,
	}
}

// Naming returns the compiled naming pattern.
func (c Config) Naming() *regexp2.Regexp {
	if c.naming == nil {
		re, err := compilePattern(c.NamingPattern)
		if err != nil {
			re = rules.MustCompileNaming(rules.DefaultNamingPattern)
		}
		return re
	}
	return c.naming
}

// Rules converts the configuration into rule engine options.
func (c Config) Rules() rules.Options {
	return rules.Options{
		Naming:                 c.Naming(),
		MaxEmptyLines:          c.MaxEmptyLines,
		MaxComplexity:          c.MaxComplexity,
		RequireSpacesOperators: c.RequireSpacesOperators,
		NoUnusedVars:           c.NoUnusedVars,
	}
}

func compilePattern(p string) (*regexp2.Regexp, error) {
	return rules.CompileNaming(p)
}
