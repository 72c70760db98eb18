// Package textproto parses protobuf text format using the tokenizer
// package's Tokenizer as a participle/v2 lexer, instead of participle's
// own regexp-based one.
package textproto

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/lukeod/pbtok/tokenizer"
)

// Document is a sequence of top-level fields, the root of a parsed
// text-format message.
type Document struct {
	Pos lexer.Position

	Fields []*Field `parser:"@@*"`
}

// Field is a single "name: value" (or "name { ... }") entry. The
// colon is optional, matching proto text format's convention for
// message-typed fields.
type Field struct {
	Pos lexer.Position

	Name  string `parser:"@IDENTIFIER \":\"?"`
	Value *Value `parser:"@@"`
}

// Value is one of the scalar literal kinds the tokenizer recognizes,
// or a nested message. Exactly one field is non-nil after a
// successful parse.
//
// Str holds already-decoded string content: a participle.Map rule
// rewrites the raw STRING token (quotes, escapes and all) through
// tokenizer.ParseString before participle ever copies it into this
// field. RawInt and RawFloat stay in their original source form;
// Value.Int and Value.Float decode them on demand through
// tokenizer.ParseInteger and tokenizer.ParseFloat, since proto text
// format's integer literals (hex, octal, decimal) aren't something
// participle's own scalar conversion can be trusted to replicate
// exactly.
type Value struct {
	Pos lexer.Position

	Str      *string   `parser:"  @STRING"`
	RawFloat *string   `parser:"| @FLOAT"`
	RawInt   *string   `parser:"| @INTEGER"`
	Ident    *string   `parser:"| @IDENTIFIER"`
	Message  *Document `parser:"| \"{\" @@ \"}\""`
}

// Int decodes a RawInt literal. It panics if v does not hold an
// integer; callers should check RawInt != nil first.
func (v *Value) Int() (uint64, error) {
	return tokenizer.ParseInteger(*v.RawInt, tokenizer.MaxUint64)
}

// Float decodes a RawFloat literal. It panics if v does not hold a
// float; callers should check RawFloat != nil first.
func (v *Value) Float() (float64, error) {
	return tokenizer.ParseFloat(*v.RawFloat)
}
