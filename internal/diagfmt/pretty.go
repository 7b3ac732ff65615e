package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsstyle/internal/diag"
	"jsstyle/internal/source"
)

type palette struct {
	err, warn, info, path, code, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:   mk(color.FgRed, color.Bold),
		warn:  mk(color.FgYellow, color.Bold),
		info:  mk(color.FgCyan),
		path:  mk(color.Bold),
		code:  mk(color.FgHiBlack),
		caret: mk(color.FgGreen, color.Bold),
		note:  mk(color.FgBlue),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty печатает каждую диагностику в виде
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <строка исходника>
//	  ^~~~
//
// затем заметки и правки, если они включены.
func Pretty(w io.Writer, r FileReport, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	var b strings.Builder

	shown := 0
	if r.Bag != nil {
		for _, d := range r.Bag.Items() {
			if d.Code.Category() == diag.CatObserv && !opts.Timings {
				continue
			}
			shown++
			writeOne(&b, pal, r, d, opts)
		}
	}
	if shown == 0 {
		fmt.Fprintf(&b, "%s: %s\n", pal.path.Sprint(r.Path), successLine)
	}
	if r.Applied > 0 {
		fmt.Fprintf(&b, "%s: %s\n", pal.path.Sprint(r.Path), pal.note.Sprintf("applied %d fixes", r.Applied))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeOne(b *strings.Builder, pal palette, r FileReport, d diag.Diagnostic, opts PrettyOpts) {
	line, col := d.Line, uint32(0)
	if r.File != nil && d.Line > 0 {
		pos := r.File.Position(d.Primary.Start)
		line, col = pos.Line, pos.Col
	}
	loc := r.Path
	if line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", r.Path, line, col+1)
	}
	fmt.Fprintf(b, "%s: %s %s: %s\n",
		pal.path.Sprint(loc),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message)

	if r.File != nil && line > 0 {
		writeExcerpt(b, pal, r.File, line, col, d.Primary)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(b, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, f := range d.Fixes {
			fmt.Fprintf(b, "  %s %s (%d edits)\n", pal.note.Sprint("fix:"), f.Title, len(f.Edits))
		}
	}
}

// writeExcerpt печатает строку исходника и подчёркивание под span.
// Колонки считаются в ячейках терминала, табы разворачиваются в пробел.
func writeExcerpt(b *strings.Builder, pal palette, f *source.File, line, col uint32, span source.Span) {
	text := strings.TrimRight(f.GetLine(line), "\r\n")
	text = strings.ReplaceAll(text, "\t", " ")
	if int(col) > len(text) {
		col = uint32(len(text)) // #nosec G115 -- bounded by line length
	}
	pad := runewidth.StringWidth(text[:col])

	width := 1
	if !span.Empty() {
		end := int(col) + int(span.Len())
		if end > len(text) {
			end = len(text)
		}
		if w := runewidth.StringWidth(text[col:end]); w > 1 {
			width = w
		}
	}
	marker := strings.Repeat(" ", pad) + "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(b, "  %s\n  %s\n", text, pal.caret.Sprint(marker))
}
