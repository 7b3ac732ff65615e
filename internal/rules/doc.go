// Package rules implements the style checks and the engine that runs them.
//
// Every check is a pure function over the token stream and/or the AST. The
// Engine runs them in a fixed order (naming, spacing, blank lines,
// complexity, unused variables), drops violations on suppressed lines and,
// when an edit set is attached, forwards the edits of surviving violations.
package rules
