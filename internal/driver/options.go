package driver

import (
	"jsstyle/internal/config"
	"jsstyle/internal/rules"
)

// Options control a lint run.
type Options struct {
	Rules          rules.Options
	Autofix        bool
	MaxDiagnostics int  // 0: без лимита
	EnableTimings  bool // собирать observ.Timer по стадиям
	Jobs           int  // параллелизм LintDir; <= 0: GOMAXPROCS
	Progress       ProgressSink
}

// OptionsFromConfig takes rule settings and autofix from cfg.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Rules:   cfg.Rules(),
		Autofix: cfg.Autofix,
	}
}
