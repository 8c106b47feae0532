package lexer

import (
	"github.com/db47h/langfront/diag"
	"github.com/db47h/langfront/source"
	"github.com/db47h/langfront/token"
)

// lexString implements the string literal tokenizer: consume runes after
// the opening '"' until a closing '"'. Escape-sequence interpretation is
// deferred to a separate pass (spec.md 4.6); this tokenizer only detects
// the unterminated-literal and raw-newline cases.
func (l *Lexer) lexString(start int) {
	_, _ = l.buf.Next() // consume opening quote
	for {
		r, err := l.buf.Curr()
		if err != nil || r == source.EOF {
			l.errorf(start, l.buf.Pos(), diag.LUnterminatedString)
			return
		}
		if r == '\\' {
			_, _ = l.buf.Next()
			if r2, _ := l.buf.Curr(); r2 != source.EOF {
				_, _ = l.buf.Next()
			}
			continue
		}
		if r == '\n' {
			// An unescaped, unterminated newline inside a string: spec.md
			// section 9's open question about L021 resolves to reporting
			// it here rather than leaving the check unimplemented.
			l.errorf(start, l.buf.Pos(), diag.LUnescapedQuote)
			return
		}
		if r == '"' {
			_, _ = l.buf.Next()
			end := l.buf.Pos()
			loc := l.locationAt(start, end)
			val := l.pool.Intern(l.buf.Substring(start, end))
			l.tokens = append(l.tokens, token.Token{Kind: token.Literal, Value: val, Location: loc})
			return
		}
		_, _ = l.buf.Next()
	}
}

// lexBlockString implements the "{{ ... }}" block string tokenizer.
func (l *Lexer) lexBlockString(start int) {
	_, _ = l.buf.Next()
	_, _ = l.buf.Next() // consume "{{"
	for {
		r, err := l.buf.Curr()
		if err != nil || r == source.EOF {
			l.errorf(start, l.buf.Pos(), diag.LUnterminatedBlockString)
			return
		}
		if r == '}' {
			mark := l.buf.Pos()
			_, _ = l.buf.Next()
			if r2, _ := l.buf.Curr(); r2 == '}' {
				_, _ = l.buf.Next()
				end := l.buf.Pos()
				loc := l.locationAt(start, end)
				val := l.pool.Intern(l.buf.Substring(start, end))
				l.tokens = append(l.tokens, token.Token{Kind: token.Literal, Value: val, Location: loc})
				return
			}
			l.errorf(start, mark+1, diag.LExpectedClosingBlockLiteral)
			return
		}
		_, _ = l.buf.Next()
	}
}
