package textproto

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/lukeod/pbtok/tokenizer"
)

var (
	lexerDefinition = tokenizer.NewDefinition(nil, tokenizer.WithCommentStyle(tokenizer.CommentStyleCPP))

	documentParser = participle.MustBuild[Document](
		participle.Lexer(lexerDefinition),
		participle.Map(func(tok lexer.Token) (lexer.Token, error) {
			decoded, err := tokenizer.ParseString(tok.Value)
			if err != nil {
				return tok, fmt.Errorf("decode string literal %q: %w", tok.Value, err)
			}
			tok.Value = decoded
			return tok, nil
		}, "STRING"),
	)
)

// Parse parses a complete text-format document from r. filename is
// used only for error messages and position reporting.
func Parse(filename string, r io.Reader) (*Document, error) {
	return documentParser.Parse(filename, r)
}

// ParseString parses a complete text-format document already held in
// memory.
func ParseString(filename, input string) (*Document, error) {
	return documentParser.ParseString(filename, input)
}

// ParseFile opens and parses the text-format document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}
