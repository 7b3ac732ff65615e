// Package directive scans raw source lines for inline lint-disable /
// lint-enable markers and builds the set of suppressed lines.
//
// The scan works on raw text, independently of the lexer: a marker inside a
// string literal still counts.
package directive
