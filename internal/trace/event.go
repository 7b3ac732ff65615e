package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindFailure is an instant event for a failed load or write. It is the
	// only kind shown at LevelError.
	KindFailure
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindFailure: "failure"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope indicates the granularity of the event; lower values are coarser.
type Scope uint8

const (
	// ScopeDriver covers a whole file run.
	ScopeDriver Scope = iota + 1
	// ScopeStage covers one pipeline stage (tokenize, parse, rules, fix, write).
	ScopeStage
	// ScopeCheck covers a single rule check.
	ScopeCheck
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopeStage: "stage", ScopeCheck: "check"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // global sequence number (monotonic)
	Kind     Kind              // event kind
	Scope    Scope             // granularity level
	SpanID   uint64            // unique span identifier
	ParentID uint64            // parent span (0 if root)
	Name     string            // e.g. "lint", "tokenize", "check:spacing"
	Detail   string            // optional detail message
	Extra    map[string]string // extensible key-value pairs
}
