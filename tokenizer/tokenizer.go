// Package tokenizer implements a streaming lexical scanner for
// protobuf-style textual syntax, modeled on upb's io/tokenizer.
package tokenizer

import (
	"fmt"

	"github.com/lukeod/pbtok/token"
)

// CommentStyle selects which comment syntaxes Next recognizes and
// strips from the token stream.
type CommentStyle int

const (
	// CommentStyleCPP recognizes "// line" and "/* block */" comments.
	CommentStyleCPP CommentStyle = iota
	// CommentStyleShell recognizes "# line" comments.
	CommentStyleShell
)

// CommentHandler, when installed with WithCommentHandler, is invoked
// with the text of every comment Next consumes (block-comment
// continuation markers already stripped per the recognizer's rules).
// startLine and startColumn give the position of the comment's opening
// delimiter.
type CommentHandler func(text string, startLine, startColumn int)

// Tokenizer pulls tokens out of a byte stream one at a time. A zero
// Tokenizer is not usable; construct one with New. A Tokenizer is not
// safe for concurrent use.
type Tokenizer struct {
	stream    Stream
	collector ErrorCollector

	buf         []byte
	bufPos      int
	atEOF       bool
	streamOwned bool
	err         error

	recordTarget *[]byte
	recordStart  int

	line   int
	column int

	current_  token.Token
	previous_ token.Token

	commentStyle            CommentStyle
	allowFAfterFloat        bool
	requireSpaceAfterNumber bool
	allowMultilineStrings   bool
	reportWhitespace        bool
	reportNewlines          bool
	commentHandler          CommentHandler
}

// Option configures a Tokenizer at construction time.
type Option func(*Tokenizer)

// WithCommentStyle selects the comment syntax Next recognizes. The
// default is CommentStyleCPP.
func WithCommentStyle(style CommentStyle) Option {
	return func(t *Tokenizer) { t.commentStyle = style }
}

// WithAllowFAfterFloat allows a trailing 'f'/'F' suffix on floating
// point literals (e.g. "1.5f").
func WithAllowFAfterFloat(allow bool) Option {
	return func(t *Tokenizer) { t.allowFAfterFloat = allow }
}

// WithRequireSpaceAfterNumber reports an error when a number is
// immediately followed by an identifier character with no
// intervening space, e.g. "123abc".
func WithRequireSpaceAfterNumber(require bool) Option {
	return func(t *Tokenizer) { t.requireSpaceAfterNumber = require }
}

// WithAllowMultilineStrings permits a string literal's body to span a
// raw newline instead of reporting an error.
func WithAllowMultilineStrings(allow bool) Option {
	return func(t *Tokenizer) { t.allowMultilineStrings = allow }
}

// WithReportWhitespace causes Next to emit a WHITESPACE token for
// each maximal run of inter-token whitespace instead of silently
// skipping it. Disabling it also disables WithReportNewlines, since a
// caller that doesn't want to see whitespace has no use for seeing
// newlines carved out of it either.
func WithReportWhitespace(report bool) Option {
	return func(t *Tokenizer) {
		t.reportWhitespace = report
		if !report {
			t.reportNewlines = false
		}
	}
}

// WithReportNewlines causes Next to emit a NEWLINE token for each
// line break instead of folding it into surrounding whitespace.
// Enabling this implies WithReportWhitespace, since a caller that
// cares about line breaks also needs to see the non-newline
// whitespace runs around them.
func WithReportNewlines(report bool) Option {
	return func(t *Tokenizer) {
		t.reportNewlines = report
		if report {
			t.reportWhitespace = true
		}
	}
}

// WithCommentHandler installs a callback invoked with the text of
// every comment Next consumes.
func WithCommentHandler(handler CommentHandler) Option {
	return func(t *Tokenizer) { t.commentHandler = handler }
}

// New constructs a Tokenizer reading initial followed by whatever
// stream produces. Either may be empty/nil: initial may be nil, and a
// nil stream behaves as an immediately exhausted one. A nil collector
// discards all error and warning reports.
func New(initial []byte, stream Stream, collector ErrorCollector, opts ...Option) *Tokenizer {
	if collector == nil {
		collector = NewNopCollector()
	}
	if stream == nil {
		stream = emptyStream{}
	}
	t := &Tokenizer{
		stream:       stream,
		collector:    collector,
		buf:          initial,
		commentStyle: CommentStyleCPP,
		current_:     token.Token{Type: token.START},

		requireSpaceAfterNumber: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.buf) == 0 {
		t.refresh()
	}
	return t
}

// Current returns the most recently produced token. Before the first
// call to Next it is the zero-valued START token.
func (t *Tokenizer) Current() token.Token { return t.current_ }

// Previous returns the token produced by the call to Next before the
// most recent one.
func (t *Tokenizer) Previous() token.Token { return t.previous_ }

// Err returns the first non-EOF error reported by the underlying
// Stream, if any. It has nothing to do with lexical errors, which go
// through the ErrorCollector instead.
func (t *Tokenizer) Err() error { return t.err }

// Close returns any unread suffix of the current buffer to the
// underlying Stream via BackUp, so a subsequent reader can resume
// tokenizing from the exact byte position this Tokenizer stopped at.
// It is a no-op once the stream is exhausted, or if every buffer in
// play came from the initial in-memory argument to New rather than a
// stream pull. Safe to call more than once.
func (t *Tokenizer) Close() {
	if !t.streamOwned || t.atEOF {
		return
	}
	if n := len(t.buf) - t.bufPos; n > 0 {
		t.stream.BackUp(n)
	}
	t.streamOwned = false
}

// Next scans and returns the next token, advancing the cursor past
// it. Lexical problems are reported through the ErrorCollector given
// to New and never stop the scan; Next always returns a token, ending
// with a sequence of END tokens once the stream is exhausted.
func (t *Tokenizer) Next() token.Token {
	t.previous_ = t.current_

	for {
		if tok, ok := t.tryWhitespaceOrNewline(); ok {
			t.current_ = tok
			return tok
		}

		commentLine, commentColumn := t.line, t.column
		switch t.startComment() {
		case slashNotComment:
			return t.current_
		case lineComment:
			t.consumeComment(t.consumeLineComment, commentLine, commentColumn)
			continue
		case blockComment:
			t.consumeComment(t.consumeBlockComment, commentLine, commentColumn)
			continue
		}

		if t.atEOF {
			tok := token.Token{Type: token.END, Line: t.line, Column: t.column, EndColumn: t.column}
			t.current_ = tok
			return tok
		}

		if c := t.current(); c == 0 || isUnprintable(c) {
			t.addError("Invalid control characters encountered in text.")
			t.advance()
			for !t.atEOF && (t.current() == 0 || isUnprintable(t.current())) {
				t.advance()
			}
			continue
		}

		tok := t.scanToken()
		t.current_ = tok
		return tok
	}
}

// tryWhitespaceOrNewline consumes a run of whitespace (or, when
// newline reporting is on, a single newline) at the cursor and, if
// the caller asked to see it, returns it as a token.
func (t *Tokenizer) tryWhitespaceOrNewline() (token.Token, bool) {
	startLine, startColumn := t.line, t.column

	if t.reportNewlines && t.current() == '\n' {
		t.advance()
		return token.Token{
			Type: token.NEWLINE, Line: startLine, Column: startColumn,
			EndColumn: t.column, Text: "\n",
		}, true
	}

	pred := isWhitespace
	if t.reportNewlines {
		pred = isWhitespaceNoNewline
	}
	var text []byte
	t.recordTo(&text)
	n := t.consumeRun(pred)
	t.stopRecording()
	if n == 0 {
		return token.Token{}, false
	}
	if !t.reportWhitespace {
		return token.Token{}, false
	}
	return token.Token{
		Type: token.WHITESPACE, Line: startLine, Column: startColumn,
		EndColumn: t.column, Text: string(text),
	}, true
}

// consumeComment runs a comment recognizer, optionally recording and
// forwarding its text to the installed CommentHandler.
func (t *Tokenizer) consumeComment(recognize func(*[]byte), startLine, startColumn int) {
	var sink *[]byte
	var buf []byte
	if t.commentHandler != nil {
		sink = &buf
	}
	recognize(sink)
	if sink != nil {
		t.commentHandler(string(buf), startLine, startColumn)
	}
}

// scanToken recognizes exactly one non-whitespace, non-comment token
// starting at the cursor.
func (t *Tokenizer) scanToken() token.Token {
	startLine, startColumn := t.line, t.column
	var text []byte
	t.recordTo(&text)
	typ := t.scanTokenBody()
	t.stopRecording()
	return token.Token{
		Type: typ, Line: startLine, Column: startColumn,
		EndColumn: t.column, Text: string(text),
	}
}

func (t *Tokenizer) scanTokenBody() token.Type {
	startLine, startColumn := t.line, t.column
	switch c := t.current(); {
	case isLetter(c):
		t.advance()
		t.recognizeIdentifier()
		return token.IDENTIFIER
	case c == '0':
		t.advance()
		return t.recognizeNumber(true, false)
	case c == '.':
		t.advance()
		if isDigit(t.current()) {
			if t.previous_.Type == token.IDENTIFIER &&
				t.previous_.Line == startLine &&
				startColumn == t.previous_.EndColumn {
				t.addErrorAt(startLine, startColumn, "Need space between identifier and decimal point.")
			}
			return t.recognizeNumber(false, true)
		}
		return token.SYMBOL
	case isDigit(c):
		t.advance()
		return t.recognizeNumber(false, false)
	case c == '\'' || c == '"':
		t.advance()
		t.recognizeString(c)
		return token.STRING
	default:
		if c >= 0x80 {
			t.addError(fmt.Sprintf("Interpreting non ascii codepoint %d.", c))
		}
		t.advance()
		return token.SYMBOL
	}
}

// addError reports msg at the cursor's current position.
func (t *Tokenizer) addError(msg string) {
	t.collector.AddError(t.line, t.column, msg)
}

// addErrorAt reports msg at an explicit position, for errors that
// refer back to where a multi-line construct began.
func (t *Tokenizer) addErrorAt(line, column int, msg string) {
	t.collector.AddError(line, column, msg)
}
