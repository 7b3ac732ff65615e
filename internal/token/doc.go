// Package token defines lexical token kinds for the jsstyle linter.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Whitespace tokens (including "\n") stay in the stream; the parser and
//     code-token rules filter them, the lexer never does.
//   - Line is 1-based, Col is 0-based bytes from the line start.
package token
