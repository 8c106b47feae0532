package ast

// Arena owns every Node allocated during a parse session; nodes are
// addressed by NodeRef (a slice index) rather than by pointer, so the
// whole tree can be freed in one step when the session ends (spec.md's
// design notes).
type Arena struct {
	nodes []Node
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// New allocates a new Node of the given kind and returns its reference.
// Every NodeRef field of the new node starts out as NilRef.
func (a *Arena) New(kind Kind) NodeRef {
	a.nodes = append(a.nodes, Node{
		Header: Header{Kind: kind, Parent: NilRef},
		Block:  NilRef, Scope: NilRef, Expr: NilRef, Lhs: NilRef, Rhs: NilRef,
		ScopeRef: NilRef, BlockRef: NilRef,
	})
	return NodeRef(len(a.nodes) - 1)
}

// Get returns a pointer to the node for ref. The pointer is only valid
// until the next call to New, which may grow the backing slice.
func (a *Arena) Get(ref NodeRef) *Node {
	if ref == NilRef {
		return nil
	}
	return &a.nodes[ref]
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int { return len(a.nodes) }
