package lexer

import (
	"github.com/db47h/langfront/diag"
	"github.com/db47h/langfront/source"
	"github.com/db47h/langfront/token"
)

// lexLineComment consumes a "//" or "--" comment until end-of-line.
func (l *Lexer) lexLineComment(start int) {
	_, _ = l.buf.Next()
	_, _ = l.buf.Next() // consume the 2-rune prefix
	for {
		r, err := l.buf.Curr()
		if err != nil || r == source.EOF || r == '\n' {
			break
		}
		_, _ = l.buf.Next()
	}
	end := l.buf.Pos()
	loc := l.locationAt(start, end)
	val := l.pool.Intern(l.buf.Substring(start, end))
	l.tokens = append(l.tokens, token.Token{Kind: token.Comment, Value: val, Location: loc})
}

// lexBlockComment consumes a "/* ... */" comment, supporting arbitrary
// nesting (spec.md 4.6): every additional "/*" opens a child capture,
// every "*/" closes the innermost. Modeled as recursive descent returning
// a subtree, per spec.md's design notes on nested comment traversal,
// rather than the teacher's parallel-stack approach.
func (l *Lexer) lexBlockComment(start int) {
	_, _ = l.buf.Next()
	_, _ = l.buf.Next() // consume "/*"
	inner, ok := l.scanBlockCommentBody()
	end := l.buf.Pos()
	if !ok {
		l.errorf(start, end, diag.LUnterminatedBlockComment)
		return
	}
	loc := l.locationAt(start, end)
	val := l.pool.Intern(l.buf.Substring(start, end))
	l.tokens = append(l.tokens, token.Token{Kind: token.Comment, Value: val, Location: loc, Comment: inner})
}

// scanBlockCommentBody scans the body of one block comment level (after
// its opening "/*" has already been consumed) up to and including its
// closing "*/", returning the Comment capture for this level. Each nested
// "/*" recurses into a child capture.
func (l *Lexer) scanBlockCommentBody() (*token.Comment, bool) {
	c := &token.Comment{}
	bodyStart := l.buf.Pos()

	for {
		r, err := l.buf.Curr()
		if err != nil || r == source.EOF {
			c.Value = l.buf.Substring(bodyStart, l.buf.Pos())
			return c, false
		}
		if r == '*' && l.buf.PeekAt(l.buf.Pos()+1) == '/' {
			c.Value = l.buf.Substring(bodyStart, l.buf.Pos())
			_, _ = l.buf.Next()
			_, _ = l.buf.Next()
			return c, true
		}
		if r == '/' && l.buf.PeekAt(l.buf.Pos()+1) == '*' {
			preNestedEnd := l.buf.Pos()
			_, _ = l.buf.Next()
			_, _ = l.buf.Next()
			child, ok := l.scanBlockCommentBody()
			c.Children = append(c.Children, child)
			if !ok {
				c.Value = l.buf.Substring(bodyStart, preNestedEnd)
				return c, false
			}
			continue
		}
		_, _ = l.buf.Next()
	}
}
