package source

import "unicode"

// IsAlpha reports whether r is a Unicode letter or underscore, the set of
// runes an identifier may start with (spec.md section 4.6).
func IsAlpha(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit reports whether r is a valid hex digit.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsSpace reports whether r is lexer-significant whitespace.
func IsSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// IsBOM reports whether r is the UTF-8 byte-order-mark scalar value.
func IsBOM(r rune) bool {
	return r == bom
}
