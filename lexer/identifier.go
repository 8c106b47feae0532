package lexer

import (
	"github.com/db47h/langfront/diag"
	"github.com/db47h/langfront/source"
	"github.com/db47h/langfront/token"
)

// lexIdentifier implements the identifier tokenizer: must start with '_'
// or an alphabetic rune, continues while alphanumeric or '_'.
func (l *Lexer) lexIdentifier(start int) {
	r, _ := l.buf.Curr()
	if !source.IsAlpha(r) {
		l.errorf(start, start+1, diag.LExpectedIdentifier)
		_, _ = l.buf.Next()
		return
	}
	_, _ = l.buf.Next()
	for {
		r, err := l.buf.Curr()
		if err != nil || r == source.EOF {
			break
		}
		if !source.IsAlpha(r) && !source.IsDigit(r) {
			break
		}
		_, _ = l.buf.Next()
	}
	l.emitSimple(token.Identifier, start, l.buf.Pos())
}
