package lexeme

import (
	"testing"

	"github.com/db47h/langfront/token"
)

func TestLongestMatchWins(t *testing.T) {
	tr := New()
	Seed(tr)

	// ":" vs ":=" vs nothing longer: walking ":=" should reach a node
	// whose Lexeme is Operator, distinct from the ":" node.
	n := tr.Root()
	for _, r := range ":=" {
		n = tr.Find(n, r)
		if n == nil {
			t.Fatalf("no trie path for \":=\"")
		}
	}
	lx, ok := n.Lexeme()
	if !ok {
		t.Fatal("\":=\" has no lexeme")
	}
	if lx.Kind != token.Operator {
		t.Errorf("\":=\" lexeme kind = %v, want Operator", lx.Kind)
	}

	n2 := tr.Find(tr.Root(), ':')
	if n2 == nil {
		t.Fatal("no trie path for \":\"")
	}
	lx2, ok := n2.Lexeme()
	if !ok {
		t.Fatal("\":\" has no lexeme of its own")
	}
	if lx2.Kind != token.Operator {
		t.Errorf("\":\" lexeme kind = %v, want Operator", lx2.Kind)
	}
}

func TestKeywordSeeded(t *testing.T) {
	tr := New()
	Seed(tr)
	n := tr.Root()
	for _, r := range "if" {
		n = tr.Find(n, r)
		if n == nil {
			t.Fatalf("no trie path for \"if\"")
		}
	}
	lx, ok := n.Lexeme()
	if !ok || lx.Kind != token.Keyword {
		t.Errorf("\"if\" lexeme = %+v, ok=%v, want Keyword", lx, ok)
	}
}

func TestPercentCarriesBinaryTokenizerAndOperatorFallback(t *testing.T) {
	tr := New()
	Seed(tr)
	n := tr.Find(tr.Root(), '%')
	if n == nil {
		t.Fatal("no trie path for \"%\"")
	}
	lx, ok := n.Lexeme()
	if !ok {
		t.Fatal("\"%\" has no lexeme")
	}
	if lx.Kind != token.Operator {
		t.Errorf("\"%%\" fallback kind = %v, want Operator", lx.Kind)
	}
	if lx.Tokenizer != BinaryNumber {
		t.Errorf("\"%%\" tokenizer = %v, want BinaryNumber", lx.Tokenizer)
	}
}
