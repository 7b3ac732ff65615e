package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"jsstyle/internal/diag"
)

// LocationJSON: место диагностики в файле.
type LocationJSON struct {
	StartByte uint32 `json:"start_byte" msgpack:"start_byte"`
	EndByte   uint32 `json:"end_byte" msgpack:"end_byte"`
	Line      uint32 `json:"line,omitempty" msgpack:"line,omitempty"`
	Col       uint32 `json:"col,omitempty" msgpack:"col,omitempty"`
}

// FixEditJSON: одна правка исправления.
type FixEditJSON struct {
	Location LocationJSON `json:"location" msgpack:"location"`
	NewText  string       `json:"new_text" msgpack:"new_text"`
}

// FixJSON: предложенное исправление.
type FixJSON struct {
	Title string        `json:"title" msgpack:"title"`
	Edits []FixEditJSON `json:"edits,omitempty" msgpack:"edits,omitempty"`
}

// DiagnosticJSON is one diagnostic in machine-readable form.
type DiagnosticJSON struct {
	Severity string       `json:"severity" msgpack:"severity"`
	Code     string       `json:"code" msgpack:"code"`
	Message  string       `json:"message" msgpack:"message"`
	Report   string       `json:"report,omitempty" msgpack:"report,omitempty"`
	Location LocationJSON `json:"location" msgpack:"location"`
	Notes    []string     `json:"notes,omitempty" msgpack:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty" msgpack:"fixes,omitempty"`
}

// FileJSON groups the diagnostics of one file.
type FileJSON struct {
	Path        string           `json:"path" msgpack:"path"`
	Diagnostics []DiagnosticJSON `json:"diagnostics" msgpack:"diagnostics"`
	Applied     int              `json:"applied_fixes" msgpack:"applied_fixes"`
}

// DiagnosticsOutput is the root of JSON / MessagePack output.
type DiagnosticsOutput struct {
	Files []FileJSON `json:"files" msgpack:"files"`
	Count int        `json:"count" msgpack:"count"`
}

// BuildDiagnosticsOutput формирует структуру вывода без сериализации.
func BuildDiagnosticsOutput(reports []FileReport, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Files: make([]FileJSON, 0, len(reports))}
	for _, r := range reports {
		fj := FileJSON{Path: r.Path, Diagnostics: []DiagnosticJSON{}, Applied: r.Applied}
		var items []diag.Diagnostic
		if r.Bag != nil {
			items = r.Bag.Items()
		}
		if opts.Max > 0 && opts.Max < len(items) {
			items = items[:opts.Max]
		}
		for _, d := range items {
			fj.Diagnostics = append(fj.Diagnostics, buildDiagnostic(r, d, opts))
		}
		out.Count += len(fj.Diagnostics)
		out.Files = append(out.Files, fj)
	}
	return out
}

func buildDiagnostic(r FileReport, d diag.Diagnostic, opts JSONOpts) DiagnosticJSON {
	dj := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Location: LocationJSON{StartByte: d.Primary.Start, EndByte: d.Primary.End},
	}
	if line, ok := ReportLine(d); ok {
		dj.Report = line
	}
	if opts.IncludePositions {
		dj.Location.Line = d.Line
		if r.File != nil && d.Line > 0 {
			pos := r.File.Position(d.Primary.Start)
			dj.Location.Line, dj.Location.Col = pos.Line, pos.Col
		}
	}
	if opts.IncludeNotes {
		for _, n := range d.Notes {
			dj.Notes = append(dj.Notes, n.Msg)
		}
	}
	if opts.IncludeFixes {
		for _, f := range d.Fixes {
			fix := FixJSON{Title: f.Title}
			for _, e := range f.Edits {
				fix.Edits = append(fix.Edits, FixEditJSON{
					Location: LocationJSON{StartByte: e.Span.Start, EndByte: e.Span.End},
					NewText:  e.NewText,
				})
			}
			dj.Fixes = append(dj.Fixes, fix)
		}
	}
	return dj
}

// JSON writes reports as indented JSON.
func JSON(w io.Writer, reports []FileReport, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(reports, opts))
}

// MsgPack writes the same structure as JSON in MessagePack encoding.
func MsgPack(w io.Writer, reports []FileReport, opts JSONOpts) error {
	return msgpack.NewEncoder(w).Encode(BuildDiagnosticsOutput(reports, opts))
}
