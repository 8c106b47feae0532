package diag

import (
	"strings"
	"testing"

	"github.com/db47h/langfront/ansi"
	"github.com/db47h/langfront/source"
	"github.com/db47h/langfront/token"
)

func TestRenderIncludesMessageAndLocation(t *testing.T) {
	buf := source.New("t.lang", []byte("let x = 1;\n"))
	d := Diagnostic{
		Severity: Error,
		Code:     LExpectedIdentifier,
		Message:  "expected identifier",
		Location: &token.Location{
			Start: token.Position{Line: 1, Column: 5},
			End:   token.Position{Line: 1, Column: 6},
		},
	}
	out := Render(ansi.New(false), buf, d)
	if !strings.Contains(out, "expected identifier") {
		t.Errorf("Render output missing message:\n%s", out)
	}
	if !strings.Contains(out, "t.lang@1:5") {
		t.Errorf("Render output missing location header:\n%s", out)
	}
	if !strings.Contains(out, "let x = 1") {
		t.Errorf("Render output missing source line:\n%s", out)
	}
}

func TestRenderWithoutLocation(t *testing.T) {
	buf := source.New("", []byte("x\n"))
	d := Diagnostic{Severity: Error, Code: SOpenError, Message: "unable to open source: boom"}
	out := Render(ansi.New(false), buf, d)
	if !strings.Contains(out, "unable to open source: boom") {
		t.Errorf("Render output missing message:\n%s", out)
	}
}
