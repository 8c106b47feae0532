package ast

import "testing"

func TestArenaNewAndGet(t *testing.T) {
	a := NewArena()
	ref := a.New(Identifier)
	n := a.Get(ref)
	if n.Kind != Identifier {
		t.Errorf("Kind = %v, want Identifier", n.Kind)
	}
	if n.Parent != NilRef {
		t.Errorf("Parent = %v, want NilRef", n.Parent)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestGetNilRef(t *testing.T) {
	a := NewArena()
	if a.Get(NilRef) != nil {
		t.Error("Get(NilRef) should return nil")
	}
}

func TestChildRefsOrdersLhsThenRhs(t *testing.T) {
	a := NewArena()
	lhs := a.New(Identifier)
	rhs := a.New(LiteralNumber)
	op := a.New(BinaryOp)
	n := a.Get(op)
	n.Lhs, n.Rhs = lhs, rhs

	refs := n.ChildRefs()
	if len(refs) != 2 || refs[0] != lhs || refs[1] != rhs {
		t.Errorf("ChildRefs() = %v, want [%v %v]", refs, lhs, rhs)
	}
	if n.EdgeLabel(lhs) != "lhs" || n.EdgeLabel(rhs) != "rhs" {
		t.Errorf("EdgeLabel(lhs)=%q EdgeLabel(rhs)=%q, want lhs/rhs", n.EdgeLabel(lhs), n.EdgeLabel(rhs))
	}
}

func TestIdentifierTrieAllowsDuplicateText(t *testing.T) {
	tr := NewIdentifierTrie()
	tr.Insert("x", NodeRef(1))
	tr.Insert("x", NodeRef(2))
	refs := tr.Lookup("x")
	if len(refs) != 2 || refs[0] != 1 || refs[1] != 2 {
		t.Errorf("Lookup(x) = %v, want [1 2]", refs)
	}
	if got := tr.Lookup("y"); got != nil {
		t.Errorf("Lookup(y) = %v, want nil", got)
	}
}

func TestKindStringCovers(t *testing.T) {
	if If.String() != "if" {
		t.Errorf("If.String() = %q, want if", If.String())
	}
	if Kind(-1).String() != "invalid" {
		t.Errorf("Kind(-1).String() = %q, want invalid", Kind(-1).String())
	}
}
