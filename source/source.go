// Package source implements the UTF-8 source buffer: byte-level decoding,
// line indexing, and a reversible rune cursor with a LIFO mark stack.
//
// The design mirrors the teacher library's token.File (a binary-searchable
// line table keyed by byte offset) and its lex.State.Next/Backup pair, but
// is adapted to an in-memory, fully-loaded buffer rather than a streaming
// io.Reader: spec.md section 4.4 requires the whole file to be indexed by
// `load` before the cursor ever moves, which a streaming ring buffer cannot
// give for free.
package source

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// Error codes, spec.md section 6: S001...S006.
var (
	ErrOpen              = errors.New("S001: unable to open source")
	ErrEndOfBuffer       = errors.New("S002: end of buffer")
	ErrBeginningOfBuffer = errors.New("S003: beginning of buffer")
	ErrIllegalEncoding   = errors.New("S004: illegal_encoding")
	ErrIllegalNul        = errors.New("S005: illegal_nul_character")
	ErrIllegalBOM        = errors.New("S006: illegal_byte_order_mark")
)

// EOF is the rune returned by Curr/Next once the cursor reaches the end of
// the buffer.
const EOF rune = -1

// Invalid is the rune returned in place of a malformed UTF-8 sequence.
const Invalid rune = utf8.RuneError

const bom rune = 0xFEFF

// Line records the byte extent of one source line plus its rune-column
// count, as specified in spec.md section 4.4.
type Line struct {
	Begin, End int // byte offsets, End is exclusive and points past the \n
	Columns    int // number of runes on the line, excluding the terminator
}

// Buffer owns the raw bytes of a loaded source file and a cursor over its
// decoded rune stream.
type Buffer struct {
	path  string
	bytes []byte

	pos   int // byte offset of the next rune to decode
	lines []Line

	widths []int // width of each rune consumed by Next, for Prev
	marks  []int // LIFO stack of saved byte offsets
}

// Load reads the given path as binary and indexes it. A trailing newline
// sentinel is appended per spec.md section 4.4 so that the last line is
// always indexed.
func Load(path string) (*Buffer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	buf := New(path, b)
	return buf, nil
}

// New builds a Buffer directly from in-memory bytes, as used for
// "(anonymous source)" inputs with no backing file.
func New(path string, data []byte) *Buffer {
	data = append(append([]byte(nil), data...), '\n')
	b := &Buffer{path: path, bytes: data}
	b.indexLines()
	return b
}

// Path returns the filename the buffer was loaded from, or "" for
// in-memory sources.
func (b *Buffer) Path() string { return b.path }

// Bytes returns the full backing array, including the appended sentinel
// newline. The returned slice must not be mutated.
func (b *Buffer) Bytes() []byte { return b.bytes }

func (b *Buffer) indexLines() {
	begin := 0
	col := 0
	i := 0
	n := len(b.bytes)
	cursorStart := 0
	// BOM is only valid at offset 0 and is consumed without affecting the
	// column count of line 1; the cursor starts past it so Next never
	// re-decodes it as content.
	if n >= 3 && b.bytes[0] == 0xEF && b.bytes[1] == 0xBB && b.bytes[2] == 0xBF {
		i = 3
		begin = 3
		cursorStart = 3
	}
	for i < n {
		r, w := utf8.DecodeRune(b.bytes[i:])
		if r == '\n' {
			b.lines = append(b.lines, Line{Begin: begin, End: i + 1, Columns: col})
			begin = i + 1
			col = 0
			i += w
			continue
		}
		col++
		i += w
	}
	if begin < n || len(b.lines) == 0 {
		b.lines = append(b.lines, Line{Begin: begin, End: n, Columns: col})
	}
	b.pos = cursorStart
}

// LineByNumber returns the 1-based line entry.
func (b *Buffer) LineByNumber(n int) (Line, bool) {
	if n < 1 || n > len(b.lines) {
		return Line{}, false
	}
	return b.lines[n-1], true
}

// LineByIndex returns the 1-based line number (and entry) containing byte
// offset i via binary search over the line table.
func (b *Buffer) LineByIndex(i int) (lineNo int, l Line, ok bool) {
	lo, hi := 0, len(b.lines)
	for lo < hi {
		mid := (lo + hi) / 2
		if b.lines[mid].End <= i {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(b.lines) {
		return 0, Line{}, false
	}
	return lo + 1, b.lines[lo], true
}

// ColumnByIndex returns the 1-based rune column of byte offset i within its
// line.
func (b *Buffer) ColumnByIndex(i int) (col int, ok bool) {
	_, l, ok := b.LineByIndex(i)
	if !ok {
		return 0, false
	}
	col = 1
	for o := l.Begin; o < i && o < l.End; {
		_, w := utf8.DecodeRune(b.bytes[o:])
		o += w
		col++
	}
	return col, true
}

// Position returns the 1-based line/column for byte offset i.
func (b *Buffer) Position(i int) (line, col int) {
	n, _, ok := b.LineByIndex(i)
	if !ok {
		n = len(b.lines)
	}
	c, _ := b.ColumnByIndex(i)
	return n, c
}

// Seek moves the cursor to an absolute byte offset without validation of
// rune boundaries; callers that need rune-aligned seeking should use
// PushMark/RestoreTopMark instead.
func (b *Buffer) Seek(offset int) { b.pos = offset }

// Pos returns the current byte offset of the cursor.
func (b *Buffer) Pos() int { return b.pos }

// Curr decodes the rune at the current position without advancing.
func (b *Buffer) Curr() (rune, error) {
	r, _, err := b.decodeAt(b.pos)
	return r, err
}

// Next decodes the rune at the current position, advances the cursor by
// its encoded width, and records the width for Prev. A rune that fails to
// decode (illegal encoding, NUL, misplaced BOM) is stepped over the same
// way and its error is returned.
func (b *Buffer) Next() (rune, error) {
	r, w, err := b.decodeAt(b.pos)
	if r == EOF {
		b.widths = append(b.widths, 0)
		return EOF, nil
	}
	b.pos += w
	b.widths = append(b.widths, w)
	return r, err
}

// MoveNext is Next without returning the decoded rune, for callers that
// only care about advancing.
func (b *Buffer) MoveNext() error {
	_, err := b.Next()
	return err
}

// Prev undoes exactly the last Next, failing at the beginning of the
// buffer or if there is nothing to undo.
func (b *Buffer) Prev() error {
	if len(b.widths) == 0 {
		return ErrBeginningOfBuffer
	}
	w := b.widths[len(b.widths)-1]
	b.widths = b.widths[:len(b.widths)-1]
	b.pos -= w
	return nil
}

// MovePrev is an alias of Prev kept for symmetry with MoveNext.
func (b *Buffer) MovePrev() error { return b.Prev() }

func (b *Buffer) decodeAt(i int) (r rune, width int, err error) {
	if i >= len(b.bytes) {
		return EOF, 0, nil
	}
	if b.bytes[i] == 0 {
		return Invalid, 1, ErrIllegalNul
	}
	r, w := utf8.DecodeRune(b.bytes[i:])
	if r == utf8.RuneError && w <= 1 {
		return Invalid, 1, ErrIllegalEncoding
	}
	if r == bom && i != 0 {
		return Invalid, w, ErrIllegalBOM
	}
	return r, w, nil
}

// PushMark saves the current cursor position on the mark stack.
func (b *Buffer) PushMark() { b.marks = append(b.marks, b.pos) }

// PopMark pops the top mark without moving the cursor.
func (b *Buffer) PopMark() (int, bool) {
	if len(b.marks) == 0 {
		return 0, false
	}
	m := b.marks[len(b.marks)-1]
	b.marks = b.marks[:len(b.marks)-1]
	return m, true
}

// RestoreTopMark rewinds the cursor to the top mark without popping it.
func (b *Buffer) RestoreTopMark() bool {
	if len(b.marks) == 0 {
		return false
	}
	b.pos = b.marks[len(b.marks)-1]
	return true
}

// Substring returns the byte range [start, end) as a borrowed slice; it is
// stable for the lifetime of the buffer.
func (b *Buffer) Substring(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > len(b.bytes) {
		end = len(b.bytes)
	}
	if start >= end {
		return nil
	}
	return b.bytes[start:end]
}

// MakeSlice returns a borrowed slice of the given byte length starting at
// offset.
func (b *Buffer) MakeSlice(offset, length int) []byte {
	return b.Substring(offset, offset+length)
}

// Len returns the number of bytes in the buffer, including the appended
// sentinel newline.
func (b *Buffer) Len() int { return len(b.bytes) }

// PeekAt decodes the rune at the given absolute byte offset without
// touching the cursor or the mark/undo stacks, for lookahead that should
// not count as a Next/Prev pair.
func (b *Buffer) PeekAt(offset int) rune {
	r, _, _ := b.decodeAt(offset)
	return r
}
