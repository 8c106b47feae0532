package ast

// IdentifierTrie is the character-indexed trie a Scope node holds,
// mapping identifier text to the identifier AST node(s) introduced at
// that scope (spec.md section 3: "within a scope, the trie contains
// every identifier syntactically introduced there; identical text at the
// same scope is permitted").
type IdentifierTrie struct {
	root *identNode
}

type identNode struct {
	children map[rune]*identNode
	refs     []NodeRef
}

// NewIdentifierTrie returns an empty IdentifierTrie.
func NewIdentifierTrie() *IdentifierTrie {
	return &IdentifierTrie{root: &identNode{children: make(map[rune]*identNode)}}
}

// Insert records ref as an occurrence of text within this scope. Multiple
// inserts of the same text are all kept, in insertion order.
func (t *IdentifierTrie) Insert(text string, ref NodeRef) {
	n := t.root
	for _, r := range text {
		c, ok := n.children[r]
		if !ok {
			c = &identNode{children: make(map[rune]*identNode)}
			n.children[r] = c
		}
		n = c
	}
	n.refs = append(n.refs, ref)
}

// Lookup returns every node ref inserted under text in this scope.
func (t *IdentifierTrie) Lookup(text string) []NodeRef {
	n := t.root
	for _, r := range text {
		c, ok := n.children[r]
		if !ok {
			return nil
		}
		n = c
	}
	return n.refs
}
