package diag

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/db47h/langfront/ansi"
	"github.com/db47h/langfront/source"
)

// SourceView is the minimal slice of *source.Buffer the renderer needs, so
// tests can supply a fake without wiring a full buffer.
type SourceView interface {
	Path() string
	LineByNumber(n int) (source.Line, bool)
	Bytes() []byte
}

// Render produces the source-highlighted rendering of a single diagnostic:
// the window [line-4, line+4] around the offending location, each line
// prefixed by its 1-based number, the offending column range highlighted
// in one color and the surrounding context in another, followed by a
// `^ <message>` caret line indented to the start column (spec.md 4.3).
func Render(s ansi.Stream, buf SourceView, d Diagnostic) string {
	var b strings.Builder
	name := buf.Path()
	if name == "" {
		name = "(anonymous source)"
	}
	if d.Location == nil {
		fmt.Fprintf(&b, "(%s) %s\n", name, d.Message)
		return b.String()
	}
	loc := *d.Location
	fmt.Fprintf(&b, "(%s@%d:%d) %s\n", name, loc.Start.Line, loc.Start.Column, d.Message)

	first := loc.Start.Line - 4
	if first < 1 {
		first = 1
	}
	last := loc.Start.Line + 4

	for ln := first; ln <= last; ln++ {
		line, ok := buf.LineByNumber(ln)
		if !ok {
			break
		}
		text := strings.TrimRight(string(buf.Bytes()[line.Begin:line.End]), "\n")

		fmt.Fprintf(&b, "%4d | ", ln)
		if ln == loc.Start.Line {
			writeHighlighted(&b, s, text, loc.Start.Column, loc.End.Column, loc.Start.Line == loc.End.Line)
		} else {
			b.WriteString(s.Color(ansi.Cyan))
			b.WriteString(text)
			b.WriteString(s.Reset())
		}
		b.WriteByte('\n')

		if ln == loc.Start.Line {
			col := displayColumn(text, loc.Start.Column)
			fmt.Fprintf(&b, "%s%s^ %s%s\n", strings.Repeat(" ", col+7), s.Color(ansi.Red), d.Message, s.Reset())
		}
	}
	return b.String()
}

func writeHighlighted(b *strings.Builder, s ansi.Stream, text string, startCol, endCol int, singleLine bool) {
	runes := []rune(text)
	hiStart := startCol - 1
	hiEnd := endCol - 1
	if !singleLine || hiEnd <= hiStart {
		hiEnd = len(runes)
	}
	if hiStart > len(runes) {
		hiStart = len(runes)
	}
	if hiEnd > len(runes) {
		hiEnd = len(runes)
	}
	b.WriteString(s.Color(ansi.Cyan))
	b.WriteString(string(runes[:hiStart]))
	b.WriteString(s.Reset())
	b.WriteString(s.Color(ansi.Yellow))
	b.WriteString(string(runes[hiStart:hiEnd]))
	b.WriteString(s.Reset())
	b.WriteString(s.Color(ansi.Cyan))
	b.WriteString(string(runes[hiEnd:]))
	b.WriteString(s.Reset())
}

// displayColumn returns the terminal display-column offset (0-based) of
// the rune-column col within text, accounting for full-width/wide East
// Asian runes via golang.org/x/text/width so the `^` caret lines up
// visually, the same package the teacher's own token/file_test.go reaches
// for when formatting wide-rune positions.
func displayColumn(text string, col int) int {
	n := 0
	i := 0
	for _, r := range text {
		if i >= col-1 {
			break
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
		i++
	}
	return n
}
