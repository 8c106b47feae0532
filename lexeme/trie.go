// Package lexeme implements the rune-keyed prefix trie the lexer walks to
// find the longest matching lexeme (spec.md section 4.5), grounded on the
// teacher's lexer.Lang token search tree (_examples/db47h-lex/lexer/lang.go),
// generalized from single-token registration to a full lexeme-plus-
// specialized-tokenizer record.
package lexeme

import "github.com/db47h/langfront/token"

// Tokenizer is a specialized continuation a trie entry may carry instead
// of (or alongside) a plain token kind: string/number/comment lexing all
// delegate to one of these rather than being modeled as ordinary trie
// matches.
type Tokenizer int

const (
	NoTokenizer Tokenizer = iota
	DecimalNumber
	HexNumber
	OctalNumber
	BinaryNumber
	StringLiteral
	BlockString
	LineComment
	BlockComment
	IdentifierStart
)

// Lexeme is the payload a trie node may carry: the token kind to emit on
// an exact match, and/or a specialized tokenizer to delegate to.
type Lexeme struct {
	Kind      token.Kind
	Tokenizer Tokenizer
}

// Node is one node of the prefix tree.
type Node struct {
	children map[rune]*Node
	lexeme   *Lexeme
}

// Trie is a rune-keyed prefix tree mapping lexeme text to a Lexeme.
type Trie struct {
	root *Node
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: &Node{children: make(map[rune]*Node)}}
}

// Root returns the trie's root node, the starting point for Find walks.
func (t *Trie) Root() *Node { return t.root }

// Insert registers key (as a rune sequence) with the given Lexeme. Re-
// inserting the same key overwrites its Lexeme.
func (t *Trie) Insert(key string, lx Lexeme) {
	n := t.root
	for _, r := range key {
		c, ok := n.children[r]
		if !ok {
			c = &Node{children: make(map[rune]*Node)}
			n.children[r] = c
		}
		n = c
	}
	v := lx
	n.lexeme = &v
}

// Find returns the child of n reached by r, or nil if there is none.
func (t *Trie) Find(n *Node, r rune) *Node {
	if n == nil {
		return nil
	}
	return n.children[r]
}

// Lexeme returns the Lexeme stored at n, if any.
func (n *Node) Lexeme() (Lexeme, bool) {
	if n == nil || n.lexeme == nil {
		return Lexeme{}, false
	}
	return *n.lexeme, true
}
