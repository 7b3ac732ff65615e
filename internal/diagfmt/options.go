package diagfmt

import (
	"jsstyle/internal/diag"
	"jsstyle/internal/source"
)

// FileReport is what gets rendered for one linted file.
type FileReport struct {
	Path string
	// File is the loaded source; nil when loading failed. Renderers that
	// show source excerpts skip them without it.
	File    *source.File
	Bag     *diag.Bag
	Applied int // число применённых правок
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	ShowFixes bool
	Timings   bool // печатать OBS-диагностики
}

// JSONOpts configures JSON and MessagePack output.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	IncludeNotes     bool
	IncludeFixes     bool
	Max              int // обрезка вывода на файл, не Bag
}
