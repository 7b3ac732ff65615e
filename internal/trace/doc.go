// Package trace provides structured tracing for lint runs.
//
// It records where a run spends its time: the driver span per file, one
// span per pipeline stage (tokenize, parse, rules, fix, write) and, at the
// detail level, one span per rule check.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	jsstyle check --trace=- --trace-level=phase src/
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr), text or NDJSON
//   - RingTracer: keeps the last N events in memory
//   - MultiTracer: fans out to several tracers
//
// Failed loads and writes are recorded with Fail as instant events.
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only load/write failures
//   - LevelPhase: driver and stage boundaries
//   - LevelDetail: plus individual rule checks
//   - LevelDebug: everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeStage, "parse", parentID)
//	defer span.End("")
package trace
