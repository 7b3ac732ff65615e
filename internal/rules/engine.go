package rules

import (
	"context"

	"jsstyle/internal/ast"
	"jsstyle/internal/directive"
	"jsstyle/internal/fix"
	"jsstyle/internal/token"
	"jsstyle/internal/trace"
)

// Input is everything a check may look at.
type Input struct {
	Tokens  []token.Token
	Program *ast.Program
}

// Check is a named pure check.
type Check struct {
	Name string
	Run  func(in Input) []Violation
}

// Engine runs the enabled checks in a fixed order.
type Engine struct {
	checks []Check
}

// NewEngine builds the check list from opts. Spacing and unused-variable
// checks can be switched off; the other three always run.
func NewEngine(opts Options) *Engine {
	if opts.Naming == nil {
		opts.Naming = DefaultOptions().Naming
	}
	checks := []Check{
		{Name: "naming", Run: func(in Input) []Violation { return CheckNaming(in.Tokens, opts.Naming) }},
	}
	if opts.RequireSpacesOperators {
		checks = append(checks, Check{Name: "spacing", Run: func(in Input) []Violation { return CheckSpacing(in.Tokens) }})
	}
	checks = append(checks,
		Check{Name: "blank-lines", Run: func(in Input) []Violation { return CheckBlankLines(in.Tokens, opts.MaxEmptyLines) }},
		Check{Name: "complexity", Run: func(in Input) []Violation { return CheckComplexity(in.Program, opts.MaxComplexity) }},
	)
	if opts.NoUnusedVars {
		checks = append(checks, Check{Name: "unused", Run: func(in Input) []Violation { return CheckUnused(in.Program, in.Tokens) }})
	}
	return &Engine{checks: checks}
}

// Checks returns the names of enabled checks in run order.
func (e *Engine) Checks() []string {
	names := make([]string, len(e.checks))
	for i, c := range e.checks {
		names[i] = c.Name
	}
	return names
}

// Run executes every check, drops violations on masked lines and returns
// the rest in check order. Edits of surviving violations go to edits,
// which may be nil.
func (e *Engine) Run(ctx context.Context, in Input, mask directive.Mask, edits *fix.Set) []Violation {
	if in.Program == nil {
		in.Program = &ast.Program{}
	}
	tracer := trace.FromContext(ctx)
	parent := trace.ParentFromContext(ctx)

	var out []Violation
	for _, c := range e.checks {
		span := trace.Begin(tracer, trace.ScopeCheck, "check:"+c.Name, parent)
		found := c.Run(in)
		kept := 0
		for _, v := range found {
			if mask.Masked(v.Line) {
				continue
			}
			out = append(out, v)
			edits.Add(v.Edits...)
			kept++
		}
		span.WithCount("found", len(found)).WithCount("reported", kept).End("")
	}
	return out
}
