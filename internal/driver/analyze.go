package driver

import (
	"context"
	"fmt"

	"jsstyle/internal/ast"
	"jsstyle/internal/diag"
	"jsstyle/internal/directive"
	"jsstyle/internal/fix"
	"jsstyle/internal/lexer"
	"jsstyle/internal/observ"
	"jsstyle/internal/parser"
	"jsstyle/internal/rules"
	"jsstyle/internal/source"
	"jsstyle/internal/token"
	"jsstyle/internal/trace"
)

// Analysis is everything produced for one buffer.
type Analysis struct {
	Tokens       []token.Token
	Anomalies    []lexer.Anomaly
	Program      *ast.Program
	SyntaxErrors []parser.Error
	Mask         directive.Mask
	Violations   []rules.Violation
	Edits        []fix.Edit

	// Fixed is the patched buffer when autofix is on and at least one edit
	// survived masking; nil otherwise.
	Fixed  []byte
	FixErr error

	// Bag holds the report in order: anomalies, syntax errors, violations.
	Bag    *diag.Bag
	Timing *observ.Report
}

// Analyze runs tokenize → parse → rules → fix over src. It has no side
// effects besides tracing; persisting Fixed is up to the caller.
func Analyze(ctx context.Context, src []byte, opts Options) *Analysis {
	return analyze(ctx, "", src, opts)
}

func analyze(ctx context.Context, path string, src []byte, opts Options) *Analysis {
	tracer := trace.FromContext(ctx)
	parent := trace.ParentFromContext(ctx)

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	begin := func(stage Stage) (int, *trace.Span) {
		emit(opts.Progress, path, stage, StatusWorking, nil, 0)
		idx := -1
		if timer != nil {
			idx = timer.Begin(string(stage))
		}
		return idx, trace.Begin(tracer, trace.ScopeStage, string(stage), parent)
	}
	end := func(idx int, span *trace.Span, note string) {
		if timer != nil {
			timer.End(idx, note)
		}
		span.End(note)
	}

	a := &Analysis{Bag: diag.NewBag(opts.MaxDiagnostics)}

	idx, span := begin(StageTokenize)
	lexed := lexer.Tokenize(src)
	a.Tokens, a.Anomalies = lexed.Tokens, lexed.Anomalies
	end(idx, span, fmt.Sprintf("%d tokens", len(a.Tokens)))

	idx, span = begin(StageParse)
	parsed := parser.Parse(a.Tokens)
	a.Program, a.SyntaxErrors = parsed.Program, parsed.Errors
	end(idx, span, fmt.Sprintf("%d errors", len(a.SyntaxErrors)))

	idx, span = begin(StageRules)
	a.Mask = directive.Scan(src)
	var edits *fix.Set
	if opts.Autofix {
		edits = fix.NewSet()
	}
	engine := rules.NewEngine(opts.Rules)
	rulesCtx := trace.WithParent(ctx, span.ID())
	a.Violations = engine.Run(rulesCtx, rules.Input{Tokens: a.Tokens, Program: a.Program}, a.Mask, edits)
	a.Edits = edits.Edits()
	span.WithCount("masked_lines", a.Mask.Len())
	end(idx, span, fmt.Sprintf("%d violations", len(a.Violations)))

	if len(a.Edits) > 0 {
		idx, span = begin(StageFix)
		a.Fixed, a.FixErr = fix.Apply(src, a.Edits)
		end(idx, span, fmt.Sprintf("%d edits", len(a.Edits)))
	}

	a.fillBag()
	if timer != nil {
		report := timer.Report()
		a.Timing = &report
		appendTimingDiagnostic(a.Bag, timingPayload{Kind: "file", Path: path, TotalMS: report.TotalMS, Phases: report.Phases})
	}
	return a
}

func (a *Analysis) fillBag() {
	r := diag.BagReporter{Bag: a.Bag}
	for _, an := range a.Anomalies {
		reportAnomaly(r, an)
	}
	for _, e := range a.SyntaxErrors {
		diag.ReportError(r, e.Code, e.Line, e.Span, e.Msg).Emit()
	}
	for _, v := range a.Violations {
		r.Report(v.Diagnostic())
	}
}

func reportAnomaly(r diag.Reporter, an lexer.Anomaly) {
	if an.Unterminated() {
		diag.ReportError(r, diag.LexUnterminatedBlockComment, an.Line, an.Span,
			fmt.Sprintf("Unterminated block comment at line %d", an.Line)).Emit()
		return
	}
	diag.ReportError(r, diag.LexUnknownChar, an.Line, an.Span,
		fmt.Sprintf("Unexpected character '%c' at line %d", an.Char, an.Line)).Emit()
}

// Clean reports whether nothing lexical, syntactic or stylistic was found.
func (a *Analysis) Clean() bool {
	return len(a.Anomalies) == 0 && len(a.SyntaxErrors) == 0 && len(a.Violations) == 0
}

// ioDiagnostic builds a report entry for a failure outside the pipeline.
func ioDiagnostic(code diag.Code, msg string) diag.Diagnostic {
	return diag.NewError(code, 0, source.Span{}, msg)
}
