// Package parser implements the Pratt (top-down operator-precedence)
// parser of spec.md section 4.7: per-token-kind production rules with
// left-binding-power, null-denotation, and left-denotation callbacks,
// plus scope/block/parent stacks and a per-scope identifier trie.
//
// The NuD/LeD/LBP vocabulary and the core expression(rbp) loop are
// grounded directly on the teacher's parser/parser.go
// (_examples/db47h-lex/parser/parser.go), which defines exactly this
// trio of interfaces; this package turns that sketch into a working
// engine wired to the token/ast packages instead of its toy Node type.
package parser

import (
	"github.com/db47h/langfront/ast"
	"github.com/db47h/langfront/token"
)

// Nud is a null-denotation: how a token kind behaves when it starts an
// expression (prefix position).
type Nud func(p *Parser, t token.Token) ast.NodeRef

// Led is a left-denotation: how a token kind behaves when it appears
// after a already-parsed left-hand side (infix/postfix position).
type Led func(p *Parser, t token.Token, lhs ast.NodeRef) ast.NodeRef

// Rule is the production rule registered for one token kind (and, for
// Operator/Keyword/Punctuation tokens, one specific lexeme text).
type Rule struct {
	LBP  int
	Nud  Nud
	Led  Led
	Kind ast.Kind
}

// ruleKey identifies a rule-table entry. Text only discriminates rules
// for kinds where a single token.Kind covers many distinct lexemes
// (Operator, Keyword, Punctuation); it is ignored for Identifier/Literal/
// Comment/EOF.
type ruleKey struct {
	kind token.Kind
	text string
}

func keyFor(t token.Token) ruleKey {
	switch t.Kind {
	case token.Operator, token.Keyword, token.Punctuation:
		return ruleKey{kind: t.Kind, text: string(t.Value)}
	default:
		return ruleKey{kind: t.Kind}
	}
}
