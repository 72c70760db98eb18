package tokenizer

import (
	"io"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/lukeod/pbtok/token"
)

// Definition adapts this package's streaming Tokenizer to
// participle/v2's lexer.Definition, so a participle grammar can
// consume tokens straight from New's scanner instead of participle's
// own regexp-based lexer.
type Definition struct {
	collector ErrorCollector
	opts      []Option

	symbolsOnce sync.Once
	symbols     map[string]lexer.TokenType
}

// NewDefinition returns a lexer.Definition that builds a fresh
// Tokenizer configured with opts for each file participle lexes.
// Every Tokenizer it builds reports through collector; pass nil to
// discard all lexical diagnostics.
func NewDefinition(collector ErrorCollector, opts ...Option) *Definition {
	return &Definition{collector: collector, opts: opts}
}

func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.lex(filename, data), nil
}

func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return d.lex(filename, []byte(input)), nil
}

func (d *Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	return d.lex(filename, input), nil
}

func (d *Definition) lex(filename string, data []byte) *participleLexer {
	return &participleLexer{
		filename: filename,
		tok:      New(data, nil, d.collector, d.opts...),
	}
}

// Symbols implements lexer.Definition, caching the result.
func (d *Definition) Symbols() map[string]lexer.TokenType {
	d.symbolsOnce.Do(func() {
		d.symbols = make(map[string]lexer.TokenType, len(token.Symbols)+1)
		d.symbols["EOF"] = lexer.EOF
		for tt, name := range token.Symbols {
			if tt == token.END {
				// END already maps to participle's own EOF sentinel above.
				continue
			}
			d.symbols[name] = lexer.TokenType(tt)
		}
	})
	return d.symbols
}

// participleLexer adapts one Tokenizer run to participle's
// lexer.Lexer interface.
type participleLexer struct {
	filename string
	tok      *Tokenizer
}

// Next implements lexer.Lexer.
func (l *participleLexer) Next() (lexer.Token, error) {
	t := l.tok.Next()

	typ := lexer.TokenType(t.Type)
	if t.Type == token.END {
		typ = lexer.EOF
	}

	return lexer.Token{
		Type:  typ,
		Value: t.Text,
		Pos: lexer.Position{
			Filename: l.filename,
			Line:     t.Line + 1,
			Column:   t.Column + 1,
		},
	}, nil
}
