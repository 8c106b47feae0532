// Package ast implements the AST model of spec.md section 3: a tagged sum
// type of node variants sharing a common header, stored in an arena and
// addressed by stable index rather than by owning pointer (spec.md's
// design notes: "prefer an arena of nodes addressed by stable indices;
// store child relationships as indices, not pointers").
package ast

import "github.com/db47h/langfront/token"

// Kind tags every node variant the grammar can produce. Some kinds
// (With, Family, Proc, ...) are modeled here even though the parser
// registers no production rule for their leading tokens yet — spec.md
// section 9's first Open Question is resolved by keeping the AST model
// complete while leaving those rules unregistered.
type Kind int

const (
	Invalid Kind = iota
	Module
	Block
	Scope
	Statement
	UnaryOp
	BinaryOp
	Assignment
	Identifier
	LiteralNil
	LiteralBool
	LiteralNumber
	LiteralString
	LiteralBlockString
	Directive
	Annotation
	If
	For
	While
	Switch
	Case
	Use
	With
	Defer
	Break
	Continue
	Return
	Yield
	Fallthrough
	Goto
	Ns
	Import
	ModuleDecl
	Cast
	Bitcast
	Proc
	Struct
	Union
	Enum
	Family
	TypeDecl
)

var kindNames = [...]string{
	Invalid:            "invalid",
	Module:             "module",
	Block:              "block",
	Scope:              "scope",
	Statement:          "statement",
	UnaryOp:            "unary_operator",
	BinaryOp:           "binary_operator",
	Assignment:         "assignment",
	Identifier:         "identifier",
	LiteralNil:         "nil",
	LiteralBool:        "bool",
	LiteralNumber:      "number",
	LiteralString:      "string",
	LiteralBlockString: "block_literal",
	Directive:          "directive",
	Annotation:         "annotation",
	If:                 "if",
	For:                "for",
	While:              "while",
	Switch:             "switch",
	Case:               "case",
	Use:                "use",
	With:               "with",
	Defer:              "defer",
	Break:              "break",
	Continue:           "continue",
	Return:             "return",
	Yield:              "yield",
	Fallthrough:        "fallthrough",
	Goto:               "goto",
	Ns:                 "ns",
	Import:             "import",
	ModuleDecl:         "module_decl",
	Cast:               "cast",
	Bitcast:            "bitcast",
	Proc:               "proc",
	Struct:             "struct",
	Union:              "union",
	Enum:               "enum",
	Family:             "family",
	TypeDecl:           "type_decl",
}

// String returns the mnemonic name used in diagnostics and DOT labels.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// ChildRefs returns every non-nil NodeRef this node points to, in the
// declaration order spec.md 4.8 wants for the DOT emitter's default
// "enumerate children" behavior: block/statement children first, then
// Lhs/Rhs/LhsList/RhsList, then directive/annotation attachments.
func (n *Node) ChildRefs() []NodeRef {
	var refs []NodeRef
	add := func(r NodeRef) {
		if r != NilRef {
			refs = append(refs, r)
		}
	}
	if n.Kind == Module {
		add(n.Block)
	}
	for _, c := range n.Children {
		add(c)
	}
	if n.Kind == Statement {
		add(n.Expr)
	}
	add(n.Lhs)
	add(n.Rhs)
	for _, r := range n.LhsList {
		add(r)
	}
	for _, r := range n.RhsList {
		add(r)
	}
	for _, r := range n.Directives {
		add(r)
	}
	for _, r := range n.Annotations {
		add(r)
	}
	return refs
}

// EdgeLabel names the outgoing edge to child, or "" when this node kind
// doesn't distinguish edges (spec.md 4.8: "binary/unary operators label
// their edges lhs/rhs; other node kinds simply enumerate their children").
func (n *Node) EdgeLabel(child NodeRef) string {
	switch n.Kind {
	case UnaryOp, BinaryOp, Directive, Annotation:
		switch child {
		case n.Lhs:
			return "lhs"
		case n.Rhs:
			return "rhs"
		}
	}
	return ""
}

// NodeRef is a stable index into an Arena. NilRef (-1) refers to no node;
// the zero value refers to the first node allocated.
type NodeRef int

// NilRef is the reserved "no node" reference.
const NilRef NodeRef = -1

// Header is the set of fields every node variant shares, per spec.md
// section 3: kind, originating token, parent back-reference, and the
// comments/directives/annotations syntactically attached to it.
type Header struct {
	Kind       Kind
	Token      token.Token
	Parent     NodeRef
	Comments   []*token.Comment
	Directives []NodeRef
	Annotations []NodeRef
}

// Node is one arena-resident AST node: the shared Header plus a
// kind-specific Payload. Only the field(s) matching Header.Kind are
// meaningful; this mirrors a tagged union without requiring a type switch
// on every access.
type Node struct {
	Header

	// Module
	Path, Name string
	Block      NodeRef

	// Block
	Scope    NodeRef
	Children []NodeRef

	// Scope
	Identifiers *IdentifierTrie

	// Statement
	Expr   NodeRef
	Labels []string

	// UnaryOp / Directive.Lhs / Annotation.Lhs
	Lhs NodeRef

	// BinaryOp / Directive.Rhs / Annotation.Rhs
	Rhs NodeRef

	// Assignment
	LhsList []NodeRef
	RhsList []NodeRef

	// Identifier
	ScopeRef NodeRef
	BlockRef NodeRef
	Text     string

	// Control-flow / declaration variants reuse Lhs/Rhs/Children/Block as
	// their grammar's arity requires; e.g. If.Lhs = condition,
	// If.Block = then-block, If.Rhs = else-branch node (another If, a
	// Block, or NilRef).
}
