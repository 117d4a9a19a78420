package diag

import "lunar/internal/source"

// Reporter receives diagnostics as they are produced. *Bag is one.
type Reporter interface {
	Report(d Diagnostic)
}

// Report adds d, dropping it silently once the bag is full.
func (b *Bag) Report(d Diagnostic) {
	if b != nil {
		b.Add(d)
	}
}

type dedup struct {
	next Reporter
	seen map[dedupKey]struct{}
}

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

func keyOf(d Diagnostic) dedupKey {
	return dedupKey{code: d.Code, sev: d.Severity, span: d.Primary, msg: d.Message}
}

// Dedup forwards to next only the first diagnostic with a given code,
// severity, primary span and message. Notes are not compared.
func Dedup(next Reporter) Reporter {
	return &dedup{next: next, seen: map[dedupKey]struct{}{}}
}

func (r *dedup) Report(d Diagnostic) {
	key := keyOf(d)
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	r.next.Report(d)
}

// Builder collects notes for one diagnostic and sends it once.
type Builder struct {
	to   Reporter
	d    Diagnostic
	sent bool
}

// Build starts a diagnostic destined for r.
func Build(r Reporter, sev Severity, code Code, primary source.Span, msg string) *Builder {
	return &Builder{to: r, d: New(sev, code, primary, msg)}
}

// Note appends a secondary location. A nil builder stays nil.
func (b *Builder) Note(sp source.Span, msg string) *Builder {
	if b != nil {
		b.d = b.d.WithNote(sp, msg)
	}
	return b
}

// Emit reports the diagnostic; later calls do nothing.
func (b *Builder) Emit() {
	if b == nil || b.sent {
		return
	}
	b.sent = true
	if b.to != nil {
		b.to.Report(b.d)
	}
}
