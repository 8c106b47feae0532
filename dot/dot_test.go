package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/langfront/ast"
	"github.com/db47h/langfront/diag"
	"github.com/db47h/langfront/token"
)

func newDiags() (*diag.Bag, *diag.Catalog) {
	return diag.New(), diag.NewCatalog(nil).WithLocale("en_US")
}

// spec.md 4.8: node labels are "<kind>|<token_value>" record shapes, and
// binary/unary operators label their outgoing edges lhs/rhs.
func TestWriteBinaryOpLabelsEdges(t *testing.T) {
	arena := ast.NewArena()
	lhs := arena.New(ast.LiteralNumber)
	arena.Get(lhs).Token = token.Token{Value: []byte("6")}
	rhs := arena.New(ast.LiteralNumber)
	arena.Get(rhs).Token = token.Token{Value: []byte("4")}
	op := arena.New(ast.BinaryOp)
	n := arena.Get(op)
	n.Token = token.Token{Value: []byte("+")}
	n.Lhs, n.Rhs = lhs, rhs

	diags, cat := newDiags()
	g := New("mod", diags, cat)
	var buf bytes.Buffer
	if err := g.Write(&buf, arena, op); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `label="binary_operator|+"`) {
		t.Errorf("output missing binary_operator record label:\n%s", out)
	}
	if !strings.Contains(out, `[label="lhs"]`) || !strings.Contains(out, `[label="rhs"]`) {
		t.Errorf("output missing lhs/rhs edge labels:\n%s", out)
	}
}

// spec.md 4.8: attribute applicability is enforced via a per-component
// bitmask; an attribute set on the wrong component raises
// G002 invalid_attribute_for_component.
func TestSetGraphAttrRejectsNodeOnlyAttribute(t *testing.T) {
	diags, cat := newDiags()
	g := New("mod", diags, cat)
	g.SetGraphAttr("shape", "record")
	if !diags.HasCode(diag.GAttributeInapplicable) {
		t.Fatalf("diagnostics = %+v, want G002", diags.Entries())
	}
	if len(g.GraphAttr) != 0 {
		t.Errorf("GraphAttr = %v, want empty after rejection", g.GraphAttr)
	}
}

// An unknown attribute name raises G001 unknown_attribute.
func TestSetGraphAttrRejectsUnknownName(t *testing.T) {
	diags, cat := newDiags()
	g := New("mod", diags, cat)
	g.SetGraphAttr("bogus", "x")
	if !diags.HasCode(diag.GUnknownAttribute) {
		t.Fatalf("diagnostics = %+v, want G001", diags.Entries())
	}
}

// spec.md 8: "DOT emission is deterministic given the same AST and
// attribute set."
func TestWriteIsDeterministic(t *testing.T) {
	arena := ast.NewArena()
	lhs := arena.New(ast.Identifier)
	arena.Get(lhs).Text = "a"
	rhs := arena.New(ast.LiteralNumber)
	op := arena.New(ast.Assignment)
	n := arena.Get(op)
	n.LhsList = []ast.NodeRef{lhs}
	n.RhsList = []ast.NodeRef{rhs}

	render := func() string {
		diags, cat := newDiags()
		g := New("mod", diags, cat)
		g.SetGraphAttr("rankdir", "TB")
		var buf bytes.Buffer
		if err := g.Write(&buf, arena, op); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
		return buf.String()
	}
	a, b := render(), render()
	if a != b {
		t.Errorf("non-deterministic output:\n%s\n---\n%s", a, b)
	}
	if !strings.HasPrefix(a, `digraph "mod" {`) {
		t.Errorf("output = %q, want digraph header", a)
	}
}
