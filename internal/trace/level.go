package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only load/write failures
	LevelPhase               // driver + stage boundaries
	LevelDetail              // plus rule checks
	LevelDebug               // everything
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level.
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if name == want {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether spans of the given scope are recorded.
func (l Level) ShouldEmit(scope Scope) bool {
	switch {
	case l >= LevelDebug:
		return true
	case l == LevelDetail:
		return scope <= ScopeCheck
	case l == LevelPhase:
		return scope <= ScopeStage
	}
	return false
}

// admits decides for a concrete event; failures pass from LevelError up.
func (l Level) admits(ev *Event) bool {
	if ev == nil {
		return false
	}
	if ev.Kind == KindFailure {
		return l >= LevelError
	}
	return l.ShouldEmit(ev.Scope)
}
