// Package diag implements the append-only diagnostic accumulator
// (spec.md section 4.3, "result"): a sticky failed flag, code-based
// lookup, and a source-highlighted rendering helper.
package diag

import "github.com/db47h/langfront/token"

// Severity classifies a Diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "severity(?)"
}

// Diagnostic is one accumulated entry: severity, stable four-character
// mnemonic code, rendered message, source location (if any), and free-form
// details for the source-highlighted renderer.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Location *token.Location
	Details  string
}

// Bag is the append-only, single-writer diagnostic log held by a parse
// session. Adding an Error sets Failed; Info/Warning do not.
type Bag struct {
	entries []Diagnostic
	failed  bool
}

// New returns an empty Bag.
func New() *Bag { return &Bag{} }

// Add appends d, setting Failed if d.Severity == Error.
func (b *Bag) Add(d Diagnostic) {
	b.entries = append(b.entries, d)
	if d.Severity == Error {
		b.failed = true
	}
}

// Errorf appends an Error-severity diagnostic built from a locale-resolved
// message template.
func (b *Bag) Errorf(cat *Catalog, code string, loc *token.Location, args ...interface{}) {
	b.Add(Diagnostic{Severity: Error, Code: code, Message: cat.Render(code, args...), Location: loc})
}

// Warnf appends a Warning-severity diagnostic.
func (b *Bag) Warnf(cat *Catalog, code string, loc *token.Location, args ...interface{}) {
	b.Add(Diagnostic{Severity: Warning, Code: code, Message: cat.Render(code, args...), Location: loc})
}

// Failed reports whether any Error-severity diagnostic has been added.
func (b *Bag) Failed() bool { return b.failed }

// Entries returns the accumulated diagnostics in insertion order. The
// returned slice must not be mutated.
func (b *Bag) Entries() []Diagnostic { return b.entries }

// HasCode reports whether any entry carries the given code.
func (b *Bag) HasCode(code string) bool {
	for _, e := range b.entries {
		if e.Code == code {
			return true
		}
	}
	return false
}

// FindCode returns the first entry with the given code.
func (b *Bag) FindCode(code string) (Diagnostic, bool) {
	for _, e := range b.entries {
		if e.Code == code {
			return e, true
		}
	}
	return Diagnostic{}, false
}

// RemoveCode deletes every entry with the given code and recomputes Failed.
func (b *Bag) RemoveCode(code string) {
	kept := b.entries[:0]
	for _, e := range b.entries {
		if e.Code != code {
			kept = append(kept, e)
		}
	}
	b.entries = kept
	b.failed = false
	for _, e := range b.entries {
		if e.Severity == Error {
			b.failed = true
			break
		}
	}
}
