// Package token defines the lexical token vocabulary produced by
// package tokenizer.
package token

import "fmt"

// Type identifies the lexical class of a Token.
type Type int

const (
	// START is the sentinel value of Tokenizer.Previous before the first
	// call to Next.
	START Type = iota
	// END marks end of input. Text is always empty.
	END
	IDENTIFIER
	INTEGER
	FLOAT
	STRING
	SYMBOL
	WHITESPACE
	NEWLINE
)

var names = [...]string{
	START:      "START",
	END:        "END",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	STRING:     "STRING",
	SYMBOL:     "SYMBOL",
	WHITESPACE: "WHITESPACE",
	NEWLINE:    "NEWLINE",
}

// String returns the canonical name of t, or "Type(n)" for an
// out-of-range value.
func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Symbols maps every Type to its canonical name, for callers (such as
// a participle lexer.Definition) that need the full vocabulary rather
// than a single name lookup.
var Symbols = map[Type]string{
	START:      "START",
	END:        "END",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	STRING:     "STRING",
	SYMBOL:     "SYMBOL",
	WHITESPACE: "WHITESPACE",
	NEWLINE:    "NEWLINE",
}

// Token is an immutable-after-emission lexeme: its type, the exact
// bytes consumed, and its source position.
//
// Line, Column and EndColumn are zero-based. Column and EndColumn are
// display columns (tabs expand to the next multiple of 8). For any
// emitted token other than END, Text is non-empty; END carries an
// empty Text at the post-EOF cursor position.
type Token struct {
	Type      Type
	Line      int
	Column    int
	EndColumn int
	Text      string
}

// String renders a Token for diagnostics, truncating long text.
func (t Token) String() string {
	text := t.Text
	if len(text) > 32 {
		text = text[:29] + "..."
	}
	return fmt.Sprintf("%s@%d:%d-%d %q", t.Type, t.Line, t.Column, t.EndColumn, text)
}
