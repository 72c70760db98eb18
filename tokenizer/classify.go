package tokenizer

// Character classifiers, ported from the CHARACTER_CLASS macros in
// upb/io/tokenizer.c. Each is a pure predicate on a single byte.

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isWhitespaceNoNewline(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isUnprintable(c byte) bool {
	return c < ' ' && c > 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isAlphanumeric(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func isEscape(c byte) bool {
	switch c {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', '?', '\'', '"':
		return true
	}
	return false
}

// kTabWidth is the display width assumed for a tab stop, per
// upb/io/tokenizer.c's kTabWidth.
const kTabWidth = 8

// asciiToInt is kAsciiToInt from upb/io/tokenizer.c: the integer value
// of a byte as a digit in any base up to 36, with 36 as the "invalid"
// sentinel.
var asciiToInt [256]int8

func init() {
	for i := range asciiToInt {
		asciiToInt[i] = 36
	}
	for c := byte('0'); c <= '9'; c++ {
		asciiToInt[c] = int8(c - '0')
	}
	for c := byte('a'); c <= 'z'; c++ {
		asciiToInt[c] = int8(c-'a') + 10
	}
	for c := byte('A'); c <= 'Z'; c++ {
		asciiToInt[c] = int8(c-'A') + 10
	}
}

// digitValue returns c's value as a digit in a base up to 36, or 36 if
// c is not a valid digit in any such base.
func digitValue(c byte) int {
	return int(asciiToInt[c])
}

// translateEscape maps a simple escape letter to the byte it
// produces, per upb/io/tokenizer.c's TranslateEscape. Callers only
// invoke this for bytes already validated by isEscape (excluding
// octal/x/u/U, which are handled separately), so the default case is
// unreachable in practice; it mirrors the original's defensive '?'.
func translateEscape(c byte) byte {
	switch c {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case '\\':
		return '\\'
	case '?':
		return '?'
	case '\'':
		return '\''
	case '"':
		return '"'
	default:
		return '?'
	}
}
