// Package lexer implements the trie-driven lexer: it walks the lexeme
// trie rune by rune, tracks the longest match, and either emits a single
// token directly or delegates to a specialized tokenizer (spec.md 4.6).
//
// The control flow is grounded on the teacher's lexer.StateAny
// (_examples/db47h-lex/lexer/state.go): try an exact trie match first,
// fall through to a filter/tokenizer, and only then treat the rune as the
// start of something else (there: a raw char; here: an identifier).
package lexer

import (
	"github.com/db47h/langfront/diag"
	"github.com/db47h/langfront/intern"
	"github.com/db47h/langfront/lexeme"
	"github.com/db47h/langfront/source"
	"github.com/db47h/langfront/token"
)

// Lexer holds everything one lexing pass over a Buffer needs.
type Lexer struct {
	buf     *source.Buffer
	trie    *lexeme.Trie
	pool    *intern.Pool
	diags   *diag.Bag
	cat     *diag.Catalog
	tokens  []token.Token
}

// New returns a Lexer ready to tokenize buf.
func New(buf *source.Buffer, trie *lexeme.Trie, pool *intern.Pool, diags *diag.Bag, cat *diag.Catalog) *Lexer {
	return &Lexer{buf: buf, trie: trie, pool: pool, diags: diags, cat: cat}
}

// Tokenize runs the lexer to completion and returns the token stream,
// always ending with a single token.EOF entry.
func (l *Lexer) Tokenize() []token.Token {
	for {
		r, err := l.buf.Curr()
		if err != nil {
			l.emitBufferError(err)
			_, _ = l.buf.Next()
			continue
		}
		if r == source.EOF {
			l.emitEOF()
			return l.tokens
		}
		if source.IsSpace(r) {
			_, _ = l.buf.Next()
			continue
		}
		l.lexOne()
	}
}

func (l *Lexer) emitEOF() {
	pos := l.buf.Pos()
	loc := l.locationAt(pos, pos)
	l.tokens = append(l.tokens, token.Token{Kind: token.EOF, Location: loc})
}

func (l *Lexer) emitBufferError(err error) {
	pos := l.buf.Pos()
	loc := l.locationAt(pos, pos+1)
	code := diag.SIllegalEncoding
	switch err {
	case source.ErrIllegalNul:
		code = diag.SIllegalNul
	case source.ErrIllegalBOM:
		code = diag.SIllegalBOM
	}
	l.diags.Add(diag.Diagnostic{Severity: diag.Error, Code: code, Message: err.Error(), Location: &loc})
}

// lexOne lexes a single token starting at the buffer's current position,
// implementing the trie-walk/longest-match/post-match-keyword-rejection
// rules of spec.md section 4.6.
func (l *Lexer) lexOne() {
	start := l.buf.Pos()
	l.buf.PushMark()
	defer l.buf.PopMark()

	node := l.trie.Root()
	var longest lexeme.Lexeme
	haveLongest := false
	longestEnd := start

	for {
		r, err := l.buf.Curr()
		if err != nil || r == source.EOF {
			break
		}
		child := l.trie.Find(node, r)
		if child == nil {
			break
		}
		if _, err := l.buf.Next(); err != nil {
			break
		}
		node = child
		if lx, ok := node.Lexeme(); ok {
			longest = lx
			haveLongest = true
			longestEnd = l.buf.Pos()
		}
	}

	if !haveLongest {
		l.buf.RestoreTopMark()
		l.lexIdentifier(start)
		return
	}

	if longest.Kind == token.Keyword {
		next := l.buf.PeekAt(longestEnd)
		if source.IsAlpha(next) || source.IsDigit(next) {
			l.buf.RestoreTopMark()
			l.lexIdentifier(start)
			return
		}
	}

	if longest.Tokenizer != lexeme.NoTokenizer {
		l.buf.RestoreTopMark()
		l.dispatchTokenizer(longest, start)
		return
	}

	l.buf.Seek(longestEnd)
	l.emitSimple(longest.Kind, start, longestEnd)
}

func (l *Lexer) dispatchTokenizer(lx lexeme.Lexeme, start int) {
	switch lx.Tokenizer {
	case lexeme.DecimalNumber:
		l.lexDecimalNumber(start)
	case lexeme.HexNumber:
		l.lexRadixNumber(start, token.Hex, '$')
	case lexeme.OctalNumber:
		l.lexRadixNumber(start, token.Octal, '@')
	case lexeme.BinaryNumber:
		l.lexBinaryOrModulo(start)
	case lexeme.StringLiteral:
		l.lexString(start)
	case lexeme.BlockString:
		l.lexBlockString(start)
	case lexeme.LineComment:
		l.lexLineComment(start)
	case lexeme.BlockComment:
		l.lexBlockComment(start)
	default:
		l.lexIdentifier(start)
	}
}

func (l *Lexer) emitSimple(kind token.Kind, start, end int) {
	loc := l.locationAt(start, end)
	val := l.pool.Intern(l.buf.Substring(start, end))
	l.tokens = append(l.tokens, token.Token{Kind: kind, Value: val, Location: loc})
}

func (l *Lexer) locationAt(start, end int) token.Location {
	sl, sc := l.buf.Position(start)
	el, ec := l.buf.Position(end)
	return token.Location{
		Start:      token.Position{Line: sl, Column: sc},
		End:        token.Position{Line: el, Column: ec},
		StartByte:  start,
		EndByte:    end,
	}
}

func (l *Lexer) errorf(start, end int, code string, args ...interface{}) {
	loc := l.locationAt(start, end)
	l.diags.Errorf(l.cat, code, &loc, args...)
}
