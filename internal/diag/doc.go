// Package diag defines the diagnostic model shared by all pipeline stages.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for everything a lint run
//     reports: lexical anomalies, syntax errors, style violations, config
//     warnings and persistence failures.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt; applying edits lives in internal/fix.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form (codes.go).
//     The code range decides the report category (lexical, syntax, style, ...).
//   - Line: 1-based line the finding is reported on. Style checks report on
//     lines that do not always correspond to a token (blank-line gaps), so
//     Line is stored explicitly rather than derived from Primary.
//   - Primary: byte span of the offending text; may be empty.
//   - Notes: optional secondary context.
//   - Fixes: edits that would address the finding, if any.
//
// The order in which diagnostics are added to a Bag is the report order.
// Keep the data model deterministic: no maps, no pointers to shared state.
package diag
