package lexeme

import "github.com/db47h/langfront/token"

// punctuation is the fixed set of single-character punctuation lexemes.
var punctuation = []string{"(", ")", "{", "}", "[", "]", ",", ";", "."}

// operators is the fixed set of operator glyphs, digraphs, and trigraphs.
// Their order does not matter: the trie always prefers the longest walk
// regardless of insertion order.
var operators = []string{
	"+", "-", "*", "/", "%", "&", "|", "~",
	"**",
	":=", "+:=", "-:=", "*:=", "/:=", "%:=", "&:=", "|:=", "~:=",
	"==", "!=", ">=", "<=", ">", "<",
	"&&", "||",
	"::", "=>", "->",
	":",
	"!",
}

// keywords is the fixed set of reserved words.
var keywords = []string{
	"if", "else", "else if", "ns", "for", "nil", "use", "true", "false",
	"cast", "case", "proc", "enum", "with", "goto", "defer", "break",
	"union", "yield", "struct", "return", "switch", "family", "module",
	"import", "continue", "transmute", "fallthrough", "in", "xor", "shl",
	"shr", "rol", "ror",
}

// Seed populates t with the fixed lexicon spec.md section 4.5 describes:
// punctuation, operators, keywords, and the single-character "starter"
// entries bound to specialized tokenizers.
func Seed(t *Trie) {
	for _, p := range punctuation {
		t.Insert(p, Lexeme{Kind: token.Punctuation})
	}
	for _, op := range operators {
		t.Insert(op, Lexeme{Kind: token.Operator})
	}
	for _, kw := range keywords {
		t.Insert(kw, Lexeme{Kind: token.Keyword})
	}

	// decimal-digit and "-<digit>" starters
	for _, d := range "0123456789" {
		t.Insert(string(d), Lexeme{Kind: token.Literal, Tokenizer: DecimalNumber})
	}
	for _, d := range "0123456789" {
		t.Insert("-"+string(d), Lexeme{Kind: token.Literal, Tokenizer: DecimalNumber})
	}

	t.Insert("$", Lexeme{Kind: token.Literal, Tokenizer: HexNumber})
	t.Insert("@", Lexeme{Kind: token.Literal, Tokenizer: OctalNumber})

	// "%" is both the modulo operator and the binary-literal starter; the
	// binary tokenizer itself falls back to emitting a bare Operator token
	// when the following rune is not a binary digit, so the fallback Kind
	// recorded here is what it falls back to.
	t.Insert("%", Lexeme{Kind: token.Operator, Tokenizer: BinaryNumber})

	t.Insert(`"`, Lexeme{Kind: token.Literal, Tokenizer: StringLiteral})
	t.Insert("{{", Lexeme{Kind: token.Literal, Tokenizer: BlockString})

	t.Insert("//", Lexeme{Kind: token.Comment, Tokenizer: LineComment})
	t.Insert("--", Lexeme{Kind: token.Comment, Tokenizer: LineComment})
	t.Insert("/*", Lexeme{Kind: token.Comment, Tokenizer: BlockComment})
}
