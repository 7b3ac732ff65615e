package diag

import "jsstyle/internal/source"

// Reporter receives diagnostics from a pipeline stage.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adds everything it receives to Bag; a nil Bag drops it.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// ReportBuilder collects notes and fixes for one diagnostic and hands it to
// its Reporter on Emit. A builder without a Reporter is only a constructor.
type ReportBuilder struct {
	to      Reporter
	d       Diagnostic
	emitted bool
}

// NewReportBuilder starts a diagnostic bound to r (which may be nil).
func NewReportBuilder(r Reporter, sev Severity, code Code, line uint32, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{to: r, d: New(sev, code, line, primary, msg)}
}

// ReportError starts an error diagnostic.
func ReportError(r Reporter, code Code, line uint32, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, line, primary, msg)
}

// ReportWarning starts a warning diagnostic.
func ReportWarning(r Reporter, code Code, line uint32, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, line, primary, msg)
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b != nil {
		b.d = b.d.WithNote(sp, msg)
	}
	return b
}

func (b *ReportBuilder) WithFix(title string, edits ...FixEdit) *ReportBuilder {
	if b != nil && len(edits) > 0 {
		b.d = b.d.WithFix(title, edits...)
	}
	return b
}

// Emit reports the diagnostic once; later calls do nothing.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	b.emitted = true
	if b.to != nil {
		b.to.Report(b.d)
	}
}

// Diagnostic returns the diagnostic built so far without emitting it.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.d
}
