package tokenizer

import "github.com/lukeod/pbtok/token"

// recognizeIdentifier consumes the remainder of an identifier; the
// first byte (a letter) is assumed already consumed by the caller.
func (t *Tokenizer) recognizeIdentifier() {
	t.consumeRun(isAlphanumeric)
}

// recognizeNumber consumes the remainder of a numeric literal. The
// caller has already consumed whatever led to startedWithZero or
// startedWithDot, per §4.3.2.
func (t *Tokenizer) recognizeNumber(startedWithZero, startedWithDot bool) token.Type {
	isFloat := startedWithDot

	switch {
	case startedWithZero && (t.current() == 'x' || t.current() == 'X'):
		t.advance()
		if t.consumeRun(isHexDigit) == 0 {
			t.addError(`"0x" must be followed by hex digits.`)
		}
	case startedWithZero && isDigit(t.current()):
		t.consumeRun(isOctalDigit)
		if isDigit(t.current()) {
			t.addError("Numbers starting with leading zero must be in octal.")
			t.consumeRun(isDigit)
		}
	default:
		if startedWithDot {
			t.consumeRun(isDigit)
		} else {
			t.consumeRun(isDigit)
			if t.current() == '.' {
				t.advance()
				t.consumeRun(isDigit)
				isFloat = true
			}
		}
		if t.current() == 'e' || t.current() == 'E' {
			t.advance()
			if t.current() == '-' || t.current() == '+' {
				t.advance()
			}
			if t.consumeRun(isDigit) == 0 {
				t.addError(`"e" must be followed by exponent.`)
			}
			isFloat = true
		}
		if t.allowFAfterFloat && (t.current() == 'f' || t.current() == 'F') {
			t.advance()
			isFloat = true
		}
	}

	switch {
	case isLetter(t.current()) && t.requireSpaceAfterNumber:
		t.addError("Need space between number and identifier.")
	case t.current() == '.':
		if isFloat {
			t.addError("Already saw decimal point or exponent; can't have another one.")
		} else {
			t.addError("Hex and octal numbers must be integers.")
		}
	}

	if isFloat {
		return token.FLOAT
	}
	return token.INTEGER
}

// recognizeString consumes a string literal body; the opening
// delimiter has already been consumed by the caller.
func (t *Tokenizer) recognizeString(delimiter byte) {
	for {
		switch c := t.current(); {
		case c == 0:
			t.addError("Unexpected end of string.")
			return
		case c == '\n':
			if !t.allowMultilineStrings {
				t.addError("String literals cannot cross line boundaries.")
				return
			}
			t.advance()
		case c == '\\':
			t.advance()
			t.consumeStringEscape()
		case c == delimiter:
			t.advance()
			return
		default:
			t.advance()
		}
	}
}

// consumeStringEscape consumes and validates one escape sequence; the
// backslash has already been consumed by the caller.
func (t *Tokenizer) consumeStringEscape() {
	switch c := t.current(); {
	case isEscape(c):
		t.advance()
	case isOctalDigit(c):
		t.advance()
	case c == 'x':
		t.advance()
		if t.consumeRun(isHexDigit) == 0 {
			t.addError("Expected hex digits for escape sequence.")
		}
	case c == 'u':
		t.advance()
		n := 0
		for n < 4 && isHexDigit(t.current()) {
			t.advance()
			n++
		}
		if n != 4 {
			t.addError(`Expected four hex digits for \u escape sequence.`)
		}
	case c == 'U':
		t.advance()
		if !t.consumeUEscapeDigits() {
			t.addError(`Expected eight hex digits up to 10ffff for \U escape sequence`)
		}
	default:
		t.addError("Invalid escape sequence in string literal.")
		// Do not consume c: the main string loop processes it normally,
		// matching how every other error in this tokenizer defers
		// without aborting the scan.
	}
}

// consumeUEscapeDigits consumes up to 8 hex digits after \U and
// reports whether they form a valid "00(0|1)hhhhh" codepoint pattern
// (i.e. a value in [0, 0x1fffff]; values above 0x10ffff pass this check
// and are left to the decoder). It always consumes whatever hex
// digits are present, even when the pattern doesn't validate.
func (t *Tokenizer) consumeUEscapeDigits() bool {
	var digits [8]byte
	n := 0
	for n < 8 && isHexDigit(t.current()) {
		digits[n] = t.current()
		t.advance()
		n++
	}
	if n != 8 {
		return false
	}
	if digits[0] != '0' || digits[1] != '0' {
		return false
	}
	return digits[2] == '0' || digits[2] == '1'
}

type commentStatus int

const (
	noComment commentStatus = iota
	lineComment
	blockComment
	slashNotComment
)

// startComment is the comment-start disambiguator of §4.3.6. When it
// returns slashNotComment, t.current_ has already been populated with
// the finalized SYMBOL token for the lone '/'.
func (t *Tokenizer) startComment() commentStatus {
	switch t.commentStyle {
	case CommentStyleCPP:
		if t.current() != '/' {
			return noComment
		}
		t.advance()
		switch t.current() {
		case '/':
			t.advance()
			return lineComment
		case '*':
			t.advance()
			return blockComment
		default:
			tok := token.Token{
				Type:      token.SYMBOL,
				Line:      t.line,
				Column:    t.column - 1,
				EndColumn: t.column,
				Text:      "/",
			}
			t.current_ = tok
			return slashNotComment
		}
	case CommentStyleShell:
		if t.current() != '#' {
			return noComment
		}
		t.advance()
		return lineComment
	default:
		return noComment
	}
}

// consumeLineComment consumes through the end of the line (or EOF),
// including the trailing newline if present. If sink is non-nil, the
// consumed content is recorded into it (verbatim, including the
// trailing newline).
func (t *Tokenizer) consumeLineComment(sink *[]byte) {
	if sink != nil {
		t.recordTo(sink)
	}
	for {
		c := t.current()
		if c == 0 {
			break
		}
		if c == '\n' {
			t.advance()
			break
		}
		t.advance()
	}
	if sink != nil {
		t.stopRecording()
	}
}

// consumeBlockComment consumes through the matching "*/" (or EOF); the
// opening "/*" has already been consumed by the caller. If sink is
// non-nil, the body is recorded with the trailing "*/" stripped and,
// per the continuation-line convention, each line's leading run of
// whitespace-no-newline plus a single '*' excluded.
func (t *Tokenizer) consumeBlockComment(sink *[]byte) {
	startLine := t.line
	startColumn := t.column - 2
	if sink != nil {
		t.recordTo(sink)
	}
outer:
	for {
		for {
			c := t.current()
			if c == 0 || c == '*' || c == '/' || c == '\n' {
				break
			}
			t.advance()
		}
		switch t.current() {
		case '\n':
			t.advance()
			if sink != nil {
				t.stopRecording()
			}
			for isWhitespaceNoNewline(t.current()) {
				t.advance()
			}
			if t.current() == '*' {
				t.advance()
				if t.current() == '/' {
					t.advance()
					break outer
				}
			}
			if sink != nil {
				t.recordTo(sink)
			}
		case '*':
			t.advance()
			if t.current() == '/' {
				t.advance()
				if sink != nil {
					t.stopRecording()
					if n := len(*sink); n >= 2 {
						*sink = (*sink)[:n-2]
					}
				}
				return
			}
		case '/':
			t.advance()
			if t.current() == '*' {
				t.addError(`"/*" inside block comment.  Block comments cannot be nested.`)
			}
		default: // 0x00
			t.addError("End-of-file inside block comment.")
			t.addErrorAt(startLine, startColumn, "  Comment started here.")
			break outer
		}
	}
	if sink != nil {
		t.stopRecording()
	}
}
