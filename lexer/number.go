package lexer

import (
	"strconv"
	"strings"

	"github.com/db47h/langfront/diag"
	"github.com/db47h/langfront/source"
	"github.com/db47h/langfront/token"
)

// lexDecimalNumber implements the decimal number tokenizer of spec.md
// 4.6: optional leading '-', digits with '_' separators, an optional
// fractional part and exponent promoting the literal to floating point,
// and an optional trailing 'i' marking an imaginary literal.
func (l *Lexer) lexDecimalNumber(start int) {
	var raw strings.Builder
	signed := false

	if r, _ := l.buf.Curr(); r == '-' {
		signed = true
		raw.WriteRune(r)
		_, _ = l.buf.Next()
	}

	isFloat := false
	sawDigit := l.scanDigitRun(&raw, 10)

	if r, _ := l.buf.Curr(); r == '.' {
		isFloat = true
		raw.WriteRune(r)
		_, _ = l.buf.Next()
		if r2, _ := l.buf.Curr(); r2 == '.' {
			l.errorf(start, l.buf.Pos()+1, diag.LUnexpectedDecimalPoint)
			_, _ = l.buf.Next()
			return
		}
		sawDigit = l.scanDigitRun(&raw, 10) || sawDigit
	}

	if r, _ := l.buf.Curr(); isFloat && (r == 'e' || r == 'E') {
		raw.WriteRune('e')
		_, _ = l.buf.Next()
		if r2, _ := l.buf.Curr(); r2 == '+' || r2 == '-' {
			raw.WriteRune(r2)
			_, _ = l.buf.Next()
		}
		l.scanDigitRun(&raw, 10)
	}

	imaginary := false
	if r, _ := l.buf.Curr(); r == 'i' {
		imaginary = true
		_, _ = l.buf.Next()
	}

	if r, _ := l.buf.Curr(); !imaginary && (source.IsAlpha(r) && r != '_') {
		l.errorf(start, l.buf.Pos()+1, diag.LUnexpectedLetterAfterDecimal)
		l.skipTrailingAlnum()
		return
	}

	end := l.buf.Pos()
	if !sawDigit {
		l.errorf(start, end, diag.LUnexpectedLetterAfterDecimal)
		return
	}
	text := raw.String()

	rec := &token.NumberRecord{Radix: token.Decimal, Signed: signed, Imaginary: imaginary}
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.errorf(start, end, diag.LUnableToConvertFloat, text)
			return
		}
		rec.Type = token.FloatingPoint
		sz, f32, f64 := token.NarrowFloat(v)
		rec.Narrowed, rec.F32, rec.F64 = sz, f32, f64
	} else {
		v, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 10, 64)
		if err != nil {
			l.errorf(start, end, diag.LUnableToConvertInt, text)
			return
		}
		rec.Type = token.Integer
		sz, ok := token.NarrowInt(v, signed || v < 0)
		if !ok {
			l.errorf(start, end, diag.LUnableToNarrowInt, v)
			return
		}
		rec.Narrowed = sz
		assignNarrowedInt(rec, v, sz)
	}

	loc := l.locationAt(start, end)
	val := l.pool.Intern(l.buf.Substring(start, end))
	l.tokens = append(l.tokens, token.Token{Kind: token.Literal, Value: val, Location: loc, Number: rec})
}

func assignNarrowedInt(rec *token.NumberRecord, v int64, sz token.Size) {
	switch sz {
	case token.Byte:
		rec.U8 = uint8(v)
	case token.Word:
		rec.U16 = uint16(v)
	case token.DWord:
		rec.U32 = uint32(v)
	default:
		rec.U64 = uint64(v)
	}
}

// scanDigitRun consumes a run of digits (in the given base) and '_'
// separators into raw, returning true if at least one digit was consumed.
func (l *Lexer) scanDigitRun(raw *strings.Builder, base int) bool {
	any := false
	for {
		r, err := l.buf.Curr()
		if err != nil {
			break
		}
		if r == '_' {
			_, _ = l.buf.Next()
			continue
		}
		if !digitInBase(r, base) {
			break
		}
		raw.WriteRune(r)
		any = true
		_, _ = l.buf.Next()
	}
	return any
}

func digitInBase(r rune, base int) bool {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return false
	}
	return v < base
}

func (l *Lexer) skipTrailingAlnum() {
	for {
		r, err := l.buf.Curr()
		if err != nil || !(source.IsAlpha(r) || source.IsDigit(r)) {
			return
		}
		_, _ = l.buf.Next()
	}
}

// lexRadixNumber implements the hex ($) and octal (@) tokenizers: consume
// the one-rune prefix, then scan digits in the given radix's alphabet.
func (l *Lexer) lexRadixNumber(start int, radix token.Radix, marker rune) {
	_, _ = l.buf.Next() // consume the marker rune itself
	var raw strings.Builder
	sawDigit := l.scanDigitRun(&raw, int(radix))

	if r, _ := l.buf.Curr(); source.IsDigit(r) || (source.IsAlpha(r) && r != '_') {
		code := diag.LUnexpectedLetterAfterHex
		if radix == token.Octal {
			code = diag.LUnexpectedLetterAfterOctal
		}
		l.errorf(start, l.buf.Pos()+1, code)
		l.skipTrailingAlnum()
		return
	}

	end := l.buf.Pos()
	if !sawDigit {
		code := diag.LUnexpectedLetterAfterHex
		if radix == token.Octal {
			code = diag.LUnexpectedLetterAfterOctal
		}
		l.errorf(start, end, code)
		return
	}

	v, err := strconv.ParseUint(raw.String(), int(radix), 64)
	if err != nil {
		l.errorf(start, end, diag.LUnableToConvertInt, raw.String())
		return
	}
	rec := &token.NumberRecord{Radix: radix, Type: token.Integer}
	sz, ok := token.NarrowInt(int64(v), false)
	if !ok {
		l.errorf(start, end, diag.LUnableToNarrowInt, v)
		return
	}
	rec.Narrowed = sz
	assignNarrowedInt(rec, int64(v), sz)

	loc := l.locationAt(start, end)
	val := l.pool.Intern(l.buf.Substring(start, end))
	l.tokens = append(l.tokens, token.Token{Kind: token.Literal, Value: val, Location: loc, Number: rec})
}

// lexBinaryOrModulo handles the "%" ambiguity: if followed by a binary
// digit it lexes a binary number literal, otherwise it emits the bare "%"
// modulo operator.
func (l *Lexer) lexBinaryOrModulo(start int) {
	next := l.buf.PeekAt(start + 1)
	if next != '0' && next != '1' {
		_, _ = l.buf.Next()
		l.emitSimple(token.Operator, start, l.buf.Pos())
		return
	}
	l.lexRadixNumberBinary(start)
}

func (l *Lexer) lexRadixNumberBinary(start int) {
	_, _ = l.buf.Next() // consume '%'
	var raw strings.Builder
	sawDigit := l.scanDigitRun(&raw, 2)

	if r, _ := l.buf.Curr(); source.IsDigit(r) || (source.IsAlpha(r) && r != '_') {
		l.errorf(start, l.buf.Pos()+1, diag.LUnexpectedLetterAfterBinary)
		l.skipTrailingAlnum()
		return
	}

	end := l.buf.Pos()
	if !sawDigit {
		l.errorf(start, end, diag.LUnexpectedLetterAfterBinary)
		return
	}

	v, err := strconv.ParseUint(raw.String(), 2, 64)
	if err != nil {
		l.errorf(start, end, diag.LUnableToConvertInt, raw.String())
		return
	}
	rec := &token.NumberRecord{Radix: token.Binary, Type: token.Integer}
	sz, ok := token.NarrowInt(int64(v), false)
	if !ok {
		l.errorf(start, end, diag.LUnableToNarrowInt, v)
		return
	}
	rec.Narrowed = sz
	assignNarrowedInt(rec, int64(v), sz)

	loc := l.locationAt(start, end)
	val := l.pool.Intern(l.buf.Substring(start, end))
	l.tokens = append(l.tokens, token.Token{Kind: token.Literal, Value: val, Location: loc, Number: rec})
}
