package lexer

import (
	"testing"

	"github.com/db47h/langfront/diag"
	"github.com/db47h/langfront/intern"
	"github.com/db47h/langfront/lexeme"
	"github.com/db47h/langfront/source"
	"github.com/db47h/langfront/token"
)

func newLexer(src string) (*Lexer, *source.Buffer, *diag.Bag) {
	buf := source.New("", []byte(src))
	trie := lexeme.New()
	lexeme.Seed(trie)
	pool := intern.New(1024)
	diags := diag.New()
	cat := diag.NewCatalog(nil).WithLocale("en_US")
	return New(buf, trie, pool, diags, cat), buf, diags
}

// spec.md section 8 scenario 1
func TestDecimalByteLiteral(t *testing.T) {
	l, _, diags := newLexer("32;\n")
	toks := l.Tokenize()
	if diags.Failed() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Entries())
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}
	if toks[0].Kind != token.Literal || toks[0].Number == nil {
		t.Fatalf("token[0] = %+v, want a number literal", toks[0])
	}
	if toks[0].Number.Radix != token.Decimal || toks[0].Number.Narrowed != token.Byte {
		t.Errorf("token[0].Number = %+v, want radix 10, size byte", toks[0].Number)
	}
	if toks[0].Number.U8 != 32 {
		t.Errorf("token[0].Number.U8 = %d, want 32", toks[0].Number.U8)
	}
	if toks[1].Kind != token.Punctuation || string(toks[1].Value) != ";" {
		t.Errorf("token[1] = %+v, want punctuation \";\"", toks[1])
	}
	if toks[2].Kind != token.EOF {
		t.Errorf("token[2] = %+v, want EOF", toks[2])
	}
}

// spec.md section 8 scenario 2
func TestBinaryLiteral(t *testing.T) {
	l, _, diags := newLexer("%1111_0000;\n")
	toks := l.Tokenize()
	if diags.Failed() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Entries())
	}
	if toks[0].Number == nil || toks[0].Number.Radix != token.Binary {
		t.Fatalf("token[0].Number = %+v, want radix 2", toks[0].Number)
	}
	if toks[0].Number.Narrowed != token.Byte || toks[0].Number.U8 != 0xF0 {
		t.Errorf("token[0].Number = %+v, want byte 0xF0", toks[0].Number)
	}
}

// spec.md section 8 scenario 3
func TestHexLiteral(t *testing.T) {
	l, _, diags := newLexer("$80;\n")
	toks := l.Tokenize()
	if diags.Failed() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Entries())
	}
	rec := toks[0].Number
	if rec == nil || rec.Radix != token.Hex {
		t.Fatalf("token[0].Number = %+v, want radix 16", rec)
	}
	if rec.Narrowed != token.Byte || rec.U8 != 128 {
		t.Errorf("token[0].Number = %+v, want byte 128", rec)
	}
}

// spec.md section 8 scenario 4
func TestLetterAfterDecimalNumberIsAnError(t *testing.T) {
	l, buf, diags := newLexer("123myVar: u8 := 1;\n")
	l.Tokenize()
	if !diags.Failed() {
		t.Fatal("expected a lex failure")
	}
	d, ok := diags.FindCode(diag.LUnexpectedLetterAfterDecimal)
	if !ok {
		t.Fatalf("expected diagnostic L013, got %+v", diags.Entries())
	}
	if d.Location == nil || d.Location.Start.Line != 1 || d.Location.Start.Column != 1 {
		t.Errorf("diagnostic location = %+v, want 1:1", d.Location)
	}
	_ = buf
}

// spec.md section 8 scenario 5
func TestKeywordPrefixRejectedWhenFollowedByAlnum(t *testing.T) {
	l, _, diags := newLexer("continueif: bool := false;\n")
	toks := l.Tokenize()
	if diags.Failed() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Entries())
	}
	if toks[0].Kind != token.Identifier || string(toks[0].Value) != "continueif" {
		t.Errorf("token[0] = %+v, want identifier \"continueif\"", toks[0])
	}
}

// spec.md section 8 scenario 6
func TestNestedBlockComment(t *testing.T) {
	l, _, diags := newLexer("/* a /* b */ c */ 1;\n")
	toks := l.Tokenize()
	if diags.Failed() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Entries())
	}
	if toks[0].Kind != token.Comment || toks[0].Comment == nil {
		t.Fatalf("token[0] = %+v, want a comment with a capture tree", toks[0])
	}
	root := toks[0].Comment
	if string(root.Value) != " a /* b */ c " {
		t.Errorf("root capture = %q, want %q", root.Value, " a /* b */ c ")
	}
	if len(root.Children) != 1 || string(root.Children[0].Value) != " b " {
		t.Fatalf("root children = %+v, want one child capturing \" b \"", root.Children)
	}
	if root.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", root.Depth())
	}
	if toks[1].Kind != token.Literal || toks[1].Number == nil {
		t.Errorf("token[1] = %+v, want number literal 1", toks[1])
	}
}

func TestModuloOperatorWhenNotFollowedByBinaryDigit(t *testing.T) {
	l, _, diags := newLexer("7 % 2;\n")
	toks := l.Tokenize()
	if diags.Failed() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Entries())
	}
	if toks[1].Kind != token.Operator || string(toks[1].Value) != "%" {
		t.Errorf("token[1] = %+v, want operator \"%%\"", toks[1])
	}
}

func TestEmptySourceProducesOnlyEOF(t *testing.T) {
	l, _, diags := newLexer("")
	toks := l.Tokenize()
	if diags.Failed() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Entries())
	}
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Errorf("tokens = %+v, want exactly one EOF token", toks)
	}
}

func TestLineCommentIgnoresTrailingContent(t *testing.T) {
	l, _, diags := newLexer("// hi\n1;\n")
	toks := l.Tokenize()
	if diags.Failed() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Entries())
	}
	if toks[0].Kind != token.Comment {
		t.Fatalf("token[0] = %+v, want a comment", toks[0])
	}
	if toks[1].Number == nil {
		t.Errorf("token[1] = %+v, want a number literal", toks[1])
	}
}
