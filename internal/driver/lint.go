package driver

import (
	"context"
	"fmt"
	"time"

	"jsstyle/internal/diag"
	"jsstyle/internal/source"
	"jsstyle/internal/trace"
)

// Result is the outcome of linting one file on disk.
type Result struct {
	Path string
	File *source.File
	*Analysis

	// Applied is the number of edits written back; 0 when nothing was saved.
	Applied int
	// WriteErr is set when the fixed buffer could not be persisted. The
	// report is still complete.
	WriteErr error
	// LoadErr is set when the file could not be read; Analysis then holds
	// only the I/O diagnostic.
	LoadErr error
}

// Reported reports whether the file produced any report entry.
func (r *Result) Reported() bool {
	if r.LoadErr != nil || r.WriteErr != nil {
		return true
	}
	return !r.Clean()
}

// LintFile loads path, analyses it and, with autofix on, writes the fixed
// buffer back. Only a load failure is returned as an error.
func LintFile(ctx context.Context, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return lintLoaded(ctx, fs.Get(id), path, opts), nil
}

func lintLoaded(ctx context.Context, file *source.File, display string, opts Options) *Result {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "lint", trace.ParentFromContext(ctx)).
		WithExtra("path", display)
	ctx = trace.WithParent(ctx, span.ID())
	started := time.Now()

	res := &Result{Path: display, File: file}
	res.Analysis = analyze(ctx, display, file.Content, opts)

	if res.FixErr != nil {
		res.WriteErr = res.FixErr
	} else if res.Fixed != nil {
		emit(opts.Progress, display, StageWrite, StatusWorking, nil, 0)
		wspan := trace.Begin(tracer, trace.ScopeStage, string(StageWrite), span.ID())
		err := file.CheckUnchanged()
		if err == nil {
			err = writeAtomic(file.Path, file.Materialize(res.Fixed))
		}
		if err != nil {
			res.WriteErr = err
			trace.Fail(tracer, "write", err, span.ID())
		} else {
			res.Applied = len(res.Edits)
		}
		wspan.End("")
	}
	if res.WriteErr != nil {
		res.Bag.Add(ioDiagnostic(diag.IOWriteFileError, fmt.Sprintf("Error saving changes: %v", res.WriteErr)))
	}

	status := StatusDone
	if res.WriteErr != nil {
		status = StatusError
	}
	emit(opts.Progress, display, StageWrite, status, res.WriteErr, time.Since(started))
	span.WithCount("violations", len(res.Violations)).End(string(status))
	return res
}

// loadFailed builds the result for a file that could not be read.
func loadFailed(ctx context.Context, path string, err error, opts Options) *Result {
	trace.Fail(trace.FromContext(ctx), "load "+path, err, trace.ParentFromContext(ctx))
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(ioDiagnostic(diag.IOLoadFileError, "failed to load file: "+err.Error()))
	emit(opts.Progress, path, StageLoad, StatusError, err, 0)
	return &Result{Path: path, Analysis: &Analysis{Bag: bag}, LoadErr: err}
}
