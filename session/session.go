// Package session ties the front-end stages together behind the four
// functions spec.md section 6 names as "the surface the CLI driver uses":
// load, tokenize, parse, dump_dot. It owns the one source buffer, intern
// pool, lexeme trie, diagnostic bag, and message catalog a single pass
// over one file needs, per spec.md section 5's single-threaded,
// single-session resource model.
package session

import (
	"io"
	"path/filepath"

	"github.com/db47h/langfront/ast"
	"github.com/db47h/langfront/diag"
	"github.com/db47h/langfront/dot"
	"github.com/db47h/langfront/intern"
	"github.com/db47h/langfront/lexeme"
	"github.com/db47h/langfront/lexer"
	"github.com/db47h/langfront/parser"
	"github.com/db47h/langfront/source"
	"github.com/db47h/langfront/token"
)

// Session owns the buffer, intern pool, diagnostics, and AST arena for one
// load/tokenize/parse/dump_dot pass.
type Session struct {
	Buf   *source.Buffer
	Diags *diag.Bag
	Cat   *diag.Catalog
	Pool  *intern.Pool
	Arena *ast.Arena

	trie   *lexeme.Trie
	tokens []token.Token
}

// New returns an empty Session ready for Load, with en_US as the default
// catalog locale (spec section 6's fallback locale).
func New() *Session {
	return &Session{
		Diags: diag.New(),
		Cat:   diag.NewCatalog(nil).WithLocale("en_US"),
		Pool:  intern.New(64 * 1024),
		Arena: ast.NewArena(),
		trie:  lexeme.New(),
	}
}

// WithLocale overrides the session's message-catalog locale.
func (s *Session) WithLocale(locale string) *Session {
	s.Cat = s.Cat.WithLocale(locale)
	return s
}

// Load reads a file from disk into the session's source buffer. I/O
// failures surface the underlying error code (spec 4.9).
func (s *Session) Load(path string) error {
	buf, err := source.Load(path)
	if err != nil {
		loc := token.Location{}
		s.Diags.Errorf(s.Cat, diag.SOpenError, &loc, err)
		return err
	}
	s.Buf = buf
	return nil
}

// LoadBytes builds the session's source buffer directly from in-memory
// bytes, per spec section 6's "either an in-memory byte string or a
// filesystem path."
func (s *Session) LoadBytes(path string, data []byte) {
	s.Buf = source.New(path, data)
}

// Tokenize runs the trie-driven lexer over the loaded buffer, seeding the
// lexeme trie on every call (re-seeding inserts the same fixed lexicon),
// and returns the resulting token stream.
// Lexical failures are appended to s.Diags rather than returned; callers
// check s.Diags.Failed().
func (s *Session) Tokenize() []token.Token {
	lexeme.Seed(s.trie)
	lx := lexer.New(s.Buf, s.trie, s.Pool, s.Diags, s.Cat)
	s.tokens = lx.Tokenize()
	return s.tokens
}

// Parse runs the Pratt parser over the session's token stream (populated
// by a prior Tokenize call) and returns the module node reference.
func (s *Session) Parse() ast.NodeRef {
	p := parser.New(s.tokens, s.Arena, s.Diags, s.Cat)
	name := s.Buf.Path()
	if name != "" {
		name = filepath.Base(name)
	}
	return p.ParseModule(name)
}

// DumpDOT writes a Graphviz DOT rendering of the AST rooted at module to
// w, named after the module's base filename per spec section 6's "AST
// dump... with the root node named by the module's base filename."
func (s *Session) DumpDOT(w io.Writer, module ast.NodeRef) error {
	n := s.Arena.Get(module)
	name := "module"
	if n != nil && n.Name != "" {
		name = n.Name
	}
	g := dot.New(name, s.Diags, s.Cat)
	g.SetGraphAttr("rankdir", "TB")
	g.SetGraphAttr("fontsize", "10")
	return g.Write(w, s.Arena, module)
}

// Run drives the whole load -> tokenize -> parse pipeline for path,
// returning the parsed module node. It stops early (returning ast.NilRef)
// if Load or Tokenize already marked the session failed, matching spec
// 4.9's "fail-fast within a token/pass" propagation.
func (s *Session) Run(path string) ast.NodeRef {
	if err := s.Load(path); err != nil {
		return ast.NilRef
	}
	s.Tokenize()
	if s.Diags.Failed() {
		return ast.NilRef
	}
	return s.Parse()
}
