package parser

import (
	"github.com/db47h/langfront/ast"
	"github.com/db47h/langfront/diag"
	"github.com/db47h/langfront/token"
)

// Parser walks a token list with the textbook Pratt expression(rbp) loop,
// tracking stacks of scope/block/parent nodes as it goes.
type Parser struct {
	tokens []token.Token
	pos    int

	arena *ast.Arena
	diags *diag.Bag
	cat   *diag.Catalog

	rules map[ruleKey]Rule

	scopes  []ast.NodeRef
	blocks  []ast.NodeRef
	parents []ast.NodeRef
}

// New returns a Parser over tokens, sharing arena/diags/cat with the rest
// of the session.
func New(tokens []token.Token, arena *ast.Arena, diags *diag.Bag, cat *diag.Catalog) *Parser {
	p := &Parser{tokens: tokens, arena: arena, diags: diags, cat: cat, rules: make(map[ruleKey]Rule)}
	registerRules(p)
	return p
}

// current returns the token the parser is positioned on without advancing.
func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel
	}
	return p.tokens[p.pos]
}

// advance returns the current token and moves the position forward by one.
func (p *Parser) advance() token.Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) ruleFor(t token.Token) (Rule, bool) {
	r, ok := p.rules[keyFor(t)]
	return r, ok
}

// Apply precomputes the rule for every token in the stream, emitting
// P001 invalid_token for any token with no registered rule, per spec.md
// 4.7's "apply precomputes, for every token, the rule pointer, failing
// with invalid_token if any token lacks a rule."
func (p *Parser) Apply() {
	for _, t := range p.tokens {
		if _, ok := p.ruleFor(t); !ok {
			loc := t.Location
			p.diags.Errorf(p.cat, diag.PInvalidToken, &loc, t.Kind, string(t.Value))
		}
	}
}

// expression is the textbook Pratt loop.
func (p *Parser) expression(rbp int) ast.NodeRef {
	t := p.advance()
	rule, ok := p.ruleFor(t)
	if !ok || rule.Nud == nil {
		return p.undefinedRule(t)
	}
	lhs := rule.Nud(p, t)

	for {
		next := p.current()
		nrule, ok := p.ruleFor(next)
		if !ok || rbp >= nrule.LBP {
			break
		}
		t2 := p.advance()
		if nrule.Led == nil {
			return p.missingOperatorRule(t2, lhs)
		}
		lhs = nrule.Led(p, t2, lhs)
	}
	return lhs
}

func (p *Parser) undefinedRule(t token.Token) ast.NodeRef {
	loc := t.Location
	p.diags.Errorf(p.cat, diag.PUndefinedRule, &loc, t.Kind, string(t.Value))
	return ast.NilRef
}

func (p *Parser) missingOperatorRule(t token.Token, lhs ast.NodeRef) ast.NodeRef {
	loc := t.Location
	p.diags.Errorf(p.cat, diag.PMissingOperatorRule, &loc, t.Kind, string(t.Value))
	return lhs
}

// pushScope/pushBlock/pushParent and their pop counterparts maintain the
// three parallel stacks a module parse walks.
func (p *Parser) pushScope(s ast.NodeRef)  { p.scopes = append(p.scopes, s) }
func (p *Parser) popScope() ast.NodeRef {
	n := len(p.scopes) - 1
	s := p.scopes[n]
	p.scopes = p.scopes[:n]
	return s
}
func (p *Parser) currentScope() ast.NodeRef { return p.scopes[len(p.scopes)-1] }

func (p *Parser) pushBlock(b ast.NodeRef) { p.blocks = append(p.blocks, b) }
func (p *Parser) popBlock() ast.NodeRef {
	n := len(p.blocks) - 1
	b := p.blocks[n]
	p.blocks = p.blocks[:n]
	return b
}
func (p *Parser) currentBlock() ast.NodeRef { return p.blocks[len(p.blocks)-1] }

func (p *Parser) pushParent(n ast.NodeRef) { p.parents = append(p.parents, n) }
func (p *Parser) popParent() ast.NodeRef {
	i := len(p.parents) - 1
	n := p.parents[i]
	p.parents = p.parents[:i]
	return n
}
func (p *Parser) currentParent() ast.NodeRef {
	if len(p.parents) == 0 {
		return ast.NilRef
	}
	return p.parents[len(p.parents)-1]
}

// newNode allocates a node of kind, sets its originating token and parent
// from the current parent stack, and returns its ref.
func (p *Parser) newNode(kind ast.Kind, t token.Token) ast.NodeRef {
	ref := p.arena.New(kind)
	n := p.arena.Get(ref)
	n.Token = t
	n.Parent = p.currentParent()
	return ref
}

// ParseModule parses the whole token stream as a single module, per
// spec.md 4.7: "Parsing a module wraps the process: create a scope, a
// block, and a module node referencing the source's filename... push
// scope/block/parent stacks; repeatedly call expression(0) until it
// returns a null sentinel; pop stacks (each must be empty)."
func (p *Parser) ParseModule(filename string) ast.NodeRef {
	p.Apply()

	name := filename
	if name == "" {
		name = "(anonymous source)"
	}

	moduleRef := p.arena.New(ast.Module)
	module := p.arena.Get(moduleRef)
	module.Path = filename
	module.Name = name

	scopeRef := p.arena.New(ast.Scope)
	p.arena.Get(scopeRef).Identifiers = ast.NewIdentifierTrie()

	blockRef := p.arena.New(ast.Block)
	block := p.arena.Get(blockRef)
	block.Scope = scopeRef

	module.Block = blockRef

	p.pushScope(scopeRef)
	p.pushBlock(blockRef)
	p.pushParent(blockRef)

	for {
		if p.current().Kind == token.EOF {
			break
		}
		node := p.expression(0)
		if node == ast.NilRef && p.current().Kind == token.EOF {
			break
		}
		term := p.current()
		if term.Kind == token.Punctuation && string(term.Value) == ";" {
			p.advance()
		}
		if node != ast.NilRef {
			finishStatement(p, term, node)
		}
	}

	p.popParent()
	p.popBlock()
	p.popScope()

	return moduleRef
}
