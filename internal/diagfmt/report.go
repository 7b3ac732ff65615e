package diagfmt

import (
	"fmt"
	"io"

	"jsstyle/internal/diag"
)

const (
	successLine = "Success: No style issues found."
	headerFmt   = "--- Linting Report for: %s ---"
)

// ReportLine renders d as a plain report entry. Timing and other
// informational entries are not part of the report and yield ok=false.
func ReportLine(d diag.Diagnostic) (line string, ok bool) {
	switch d.Code.Category() {
	case diag.CatLexical:
		return "[LEXICAL ERROR] " + d.Message, true
	case diag.CatSyntax:
		return "[SYNTAX ERROR] " + d.Message, true
	case diag.CatStyle:
		return fmt.Sprintf("Line %d: %s", d.Line, d.Message), true
	case diag.CatIO:
		if d.Code == diag.IOWriteFileError {
			return "[FIXER] " + d.Message, true
		}
		return "[IO ERROR] " + d.Message, true
	case diag.CatConfig:
		return "Warning: " + d.Message, true
	}
	return "", false
}

// ReportLines returns the report entries of bag in order.
func ReportLines(bag *diag.Bag) []string {
	if bag == nil {
		return nil
	}
	var out []string
	for _, d := range bag.Items() {
		if line, ok := ReportLine(d); ok {
			out = append(out, line)
		}
	}
	return out
}

// Plain writes the classic text report: header, one line per entry (or the
// success line) and the fixer summary.
func Plain(w io.Writer, r FileReport) error {
	lines := ReportLines(r.Bag)
	if _, err := fmt.Fprintf(w, headerFmt+"\n", r.Path); err != nil {
		return err
	}
	if len(lines) == 0 {
		if _, err := fmt.Fprintln(w, successLine); err != nil {
			return err
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if r.Applied > 0 {
		if _, err := fmt.Fprintf(w, "[FIXER] Applied %d fixes automatically.\n", r.Applied); err != nil {
			return err
		}
	}
	return nil
}
