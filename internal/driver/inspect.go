package driver

import (
	"fmt"

	"jsstyle/internal/lexer"
	"jsstyle/internal/parser"
	"jsstyle/internal/source"
)

// TokenizeFile loads path and runs only the lexer.
func TokenizeFile(path string) (*source.File, lexer.Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, lexer.Result{}, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(id)
	return file, lexer.Tokenize(file.Content), nil
}

// ParseFile loads path and runs the lexer and the parser.
func ParseFile(path string) (*source.File, lexer.Result, parser.Result, error) {
	file, lexed, err := TokenizeFile(path)
	if err != nil {
		return nil, lexer.Result{}, parser.Result{}, err
	}
	return file, lexed, parser.Parse(lexed.Tokens), nil
}
