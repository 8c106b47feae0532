package source

import "testing"

func TestLineByIndex(t *testing.T) {
	b := New("", []byte("ab\ncd\nef"))
	for i := 0; i < b.Len(); i++ {
		n, l, ok := b.LineByIndex(i)
		if !ok {
			t.Fatalf("LineByIndex(%d): not ok", i)
		}
		if i < l.Begin || i >= l.End {
			t.Errorf("LineByIndex(%d) = line %d %+v, does not contain %d", i, n, l, i)
		}
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	b := New("", []byte("abc"))
	var runes []rune
	for {
		r, err := b.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if r == EOF {
			break
		}
		runes = append(runes, r)
	}
	want := "abc\n"
	if string(runes) != want {
		t.Errorf("collected runes = %q, want %q", string(runes), want)
	}

	// The last Next returned EOF without moving the cursor, so the first
	// Prev undoes it in place; the second undoes the Next that read '\n'.
	pos := b.Pos()
	if err := b.Prev(); err != nil {
		t.Fatalf("Prev: %v", err)
	}
	if b.Pos() != pos {
		t.Errorf("Prev after EOF moved the cursor: before=%d after=%d", pos, b.Pos())
	}
	if err := b.Prev(); err != nil {
		t.Fatalf("Prev: %v", err)
	}
	if b.Pos() != pos-1 {
		t.Errorf("Prev did not move cursor backward: before=%d after=%d, want %d", pos, b.Pos(), pos-1)
	}
}

func TestMarksAreLIFO(t *testing.T) {
	b := New("", []byte("hello"))
	b.PushMark()
	_, _ = b.Next()
	_, _ = b.Next()
	b.PushMark()
	_, _ = b.Next()

	b.RestoreTopMark()
	if b.Pos() != 2 {
		t.Fatalf("after first RestoreTopMark, pos = %d, want 2", b.Pos())
	}
	if _, ok := b.PopMark(); !ok {
		t.Fatal("PopMark: expected a mark")
	}
	b.RestoreTopMark()
	if b.Pos() != 0 {
		t.Fatalf("after second RestoreTopMark, pos = %d, want 0", b.Pos())
	}
}

func TestSubstringMatchesTokenValue(t *testing.T) {
	b := New("", []byte("hello world"))
	got := string(b.Substring(0, 5))
	if got != "hello" {
		t.Errorf("Substring(0,5) = %q, want %q", got, "hello")
	}
}

func TestPeekAtDoesNotMoveCursor(t *testing.T) {
	b := New("", []byte("ab"))
	before := b.Pos()
	if r := b.PeekAt(1); r != 'b' {
		t.Errorf("PeekAt(1) = %q, want 'b'", r)
	}
	if b.Pos() != before {
		t.Errorf("PeekAt moved the cursor: before=%d after=%d", before, b.Pos())
	}
}

func TestIllegalNul(t *testing.T) {
	b := New("", []byte("a\x00b"))
	_, _ = b.Next() // 'a'
	if _, err := b.Next(); err != ErrIllegalNul {
		t.Errorf("Next over NUL byte: err = %v, want ErrIllegalNul", err)
	}
}

func TestBOMAtStartIsConsumedWithoutError(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x\n")...)
	b := New("", data)
	r, err := b.Next()
	if err != nil {
		t.Fatalf("Next after BOM: %v", err)
	}
	if r != 'x' {
		t.Errorf("first rune after BOM = %q, want 'x'", r)
	}
}

func TestEmptyBufferIndexesOneLine(t *testing.T) {
	b := New("", nil)
	if _, ok := b.LineByNumber(1); !ok {
		t.Fatal("empty buffer: expected line 1 to exist")
	}
	r, err := b.Curr()
	if err != nil {
		t.Fatalf("Curr: %v", err)
	}
	if r != '\n' {
		t.Errorf("first rune of empty buffer = %q, want sentinel newline", r)
	}
}
