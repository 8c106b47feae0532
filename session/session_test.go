package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/langfront/ast"
)

// spec.md section 6's internal API: load -> tokenize -> parse -> dump_dot.
func TestRunEndToEnd(t *testing.T) {
	s := New()
	s.LoadBytes("example.lang", []byte("a := 6 * 6 + 4;\n"))
	toks := s.Tokenize()
	if s.Diags.Failed() {
		t.Fatalf("unexpected lex diagnostics: %+v", s.Diags.Entries())
	}
	if toks[len(toks)-1].Kind.String() != "end_of_input" {
		t.Fatalf("last token = %+v, want end_of_input", toks[len(toks)-1])
	}

	module := s.Parse()
	if s.Diags.Failed() {
		t.Fatalf("unexpected parse diagnostics: %+v", s.Diags.Entries())
	}
	mod := s.Arena.Get(module)
	if mod.Kind != ast.Module || mod.Name != "example.lang" {
		t.Fatalf("module = %+v, want name example.lang", mod)
	}

	var buf bytes.Buffer
	if err := s.DumpDOT(&buf, module); err != nil {
		t.Fatalf("DumpDOT() error: %v", err)
	}
	if !strings.Contains(buf.String(), "digraph") {
		t.Errorf("DOT output missing digraph header:\n%s", buf.String())
	}
}

// spec.md section 6: "A trailing \n is appended on load" and an empty
// source still yields a module with an empty block (section 8 boundary
// behavior).
func TestRunEmptySource(t *testing.T) {
	s := New()
	s.LoadBytes("", nil)
	s.Tokenize()
	module := s.Parse()
	if s.Diags.Failed() {
		t.Fatalf("unexpected diagnostics: %+v", s.Diags.Entries())
	}
	mod := s.Arena.Get(module)
	block := s.Arena.Get(mod.Block)
	if len(block.Children) != 0 {
		t.Errorf("block.Children = %v, want empty", block.Children)
	}
}

// Load of a nonexistent path surfaces S001 open_error and marks the
// session failed without panicking.
func TestLoadMissingFile(t *testing.T) {
	s := New()
	err := s.Load("/nonexistent/path/does-not-exist.lang")
	if err == nil {
		t.Fatal("Load() error = nil, want non-nil")
	}
	if !s.Diags.Failed() {
		t.Error("Diags.Failed() = false, want true after a load error")
	}
}
