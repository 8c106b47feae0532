package diag

// Codes, spec.md section 6:
//   L001...L021  lexer
//   P001...P008  parser
//   I001, I002   I/O
//   S001...S006  source buffer
//   G001, G002   graph serializer
// LUnexpectedLetterAfterDecimal is pinned to L013 by spec.md section 8's
// scenario 4 ("123myVar: u8 := 1;" fails with "L013 unexpected letter
// immediately after decimal number"), which is this repo's authoritative
// binding between that message and its numeric code.
const (
	LUnexpectedDecimalPoint        = "L001"
	LUnableToConvertInt            = "L003"
	LUnableToConvertFloat          = "L004"
	LUnableToNarrowInt             = "L005"
	LUnableToNarrowFloat           = "L006"
	LUnexpectedLetterAfterHex      = "L007"
	LUnexpectedLetterAfterOctal    = "L008"
	LUnexpectedLetterAfterBinary   = "L009"
	LExpectedIdentifier            = "L010"
	LExpectedClosingBlockLiteral   = "L011"
	LUnterminatedString            = "L012"
	LUnexpectedLetterAfterDecimal  = "L013"
	LIllegalLexeme                 = "L014"
	LUnterminatedBlockComment      = "L015"
	LUnterminatedBlockString       = "L020"
	LUnescapedQuote                = "L021"

	PInvalidToken             = "P001"
	PUndefinedRule            = "P002"
	PMissingOperatorRule      = "P003"
	PUnexpectedToken          = "P004"
	PInvalidMemberSelectLHS   = "P005"
	PInvalidMemberSelectRHS   = "P006"
	PExpectedExpression       = "P007"
	PInvalidAssignment        = "P008"

	IReadError  = "I001"
	IWriteError = "I002"

	SOpenError          = "S001"
	SEndOfBuffer        = "S002"
	SBeginningOfBuffer  = "S003"
	SIllegalEncoding    = "S004"
	SIllegalNul         = "S005"
	SIllegalBOM         = "S006"

	GUnknownAttribute      = "G001"
	GAttributeInapplicable = "G002"
)

var enUSMessages = map[string]string{
	LUnexpectedLetterAfterDecimal: "unexpected letter immediately after decimal number",
	LUnexpectedDecimalPoint:       "unexpected second decimal point in number literal",
	LUnableToConvertInt:           "unable to convert {} to an integer",
	LUnableToConvertFloat:         "unable to convert {} to a floating point value",
	LUnableToNarrowInt:            "unable to narrow integer value {} to any known size",
	LUnableToNarrowFloat:          "unable to narrow floating point value {} to any known size",
	LUnexpectedLetterAfterHex:     "unexpected letter after hexadecimal number literal",
	LUnexpectedLetterAfterOctal:   "unexpected letter after octal number literal",
	LUnexpectedLetterAfterBinary:  "unexpected letter after binary number literal",
	LExpectedIdentifier:           "expected identifier",
	LExpectedClosingBlockLiteral:  "expected closing block literal",
	LUnterminatedString:           "unterminated string literal",
	LUnterminatedBlockComment:     "unterminated block comment",
	LIllegalLexeme:                "illegal lexeme",
	LUnterminatedBlockString:      "unterminated block string literal",
	LUnescapedQuote:               "unescaped quote in string literal",

	PInvalidToken:           "invalid token: no production rule registered",
	PUndefinedRule:          "undefined rule for token",
	PMissingOperatorRule:    "missing operator rule for token",
	PUnexpectedToken:        "unexpected token {}",
	PInvalidMemberSelectLHS: "invalid member-select lvalue",
	PInvalidMemberSelectRHS: "invalid member-select rvalue",
	PExpectedExpression:     "expected expression",
	PInvalidAssignment:      "invalid assignment target",

	IReadError:  "unable to read source: {}",
	IWriteError: "unable to write output: {}",

	SOpenError:         "unable to open source: {}",
	SEndOfBuffer:       "end of buffer",
	SBeginningOfBuffer: "beginning of buffer",
	SIllegalEncoding:   "illegal encoding",
	SIllegalNul:        "illegal NUL character",
	SIllegalBOM:        "illegal byte order mark",

	GUnknownAttribute:      "unknown attribute {}",
	GAttributeInapplicable: "attribute {} is not applicable to component {}",
}
