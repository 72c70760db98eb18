package tokenizer

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/pbtok/token"
)

// lexAll tokenizes input to completion (including the trailing END
// token) using the given options, and returns every token along with
// whatever the ErrorCollector captured.
func lexAll(t *testing.T, input string, opts ...Option) ([]token.Token, *Collector) {
	t.Helper()
	collector := NewCollector()
	tok := New(nil, NewSliceStream([]byte(input)), collector, opts...)

	var tokens []token.Token
	for {
		got := tok.Next()
		tokens = append(tokens, got)
		if got.Type == token.END {
			break
		}
		if len(tokens) > 10000 {
			t.Fatal("tokenizer produced too many tokens, possible infinite loop")
		}
	}
	return tokens, collector
}

func TestNextBasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "identifiers and symbols",
			input: "foo_bar + baz",
			expected: []token.Token{
				{Type: token.IDENTIFIER, Text: "foo_bar"},
				{Type: token.SYMBOL, Text: "+"},
				{Type: token.IDENTIFIER, Text: "baz"},
				{Type: token.END},
			},
		},
		{
			name:  "decimal integer",
			input: "12345",
			expected: []token.Token{
				{Type: token.INTEGER, Text: "12345"},
				{Type: token.END},
			},
		},
		{
			name:  "hex integer",
			input: "0x1A2b",
			expected: []token.Token{
				{Type: token.INTEGER, Text: "0x1A2b"},
				{Type: token.END},
			},
		},
		{
			name:  "octal integer",
			input: "0755",
			expected: []token.Token{
				{Type: token.INTEGER, Text: "0755"},
				{Type: token.END},
			},
		},
		{
			name:  "float with exponent",
			input: "6.02e23",
			expected: []token.Token{
				{Type: token.FLOAT, Text: "6.02e23"},
				{Type: token.END},
			},
		},
		{
			name:  "float starting with dot",
			input: ".5",
			expected: []token.Token{
				{Type: token.FLOAT, Text: ".5"},
				{Type: token.END},
			},
		},
		{
			name:  "lone dot is a symbol",
			input: ".",
			expected: []token.Token{
				{Type: token.SYMBOL, Text: "."},
				{Type: token.END},
			},
		},
		{
			name:  "double quoted string",
			input: `"hello world"`,
			expected: []token.Token{
				{Type: token.STRING, Text: `"hello world"`},
				{Type: token.END},
			},
		},
		{
			name:  "single quoted string",
			input: `'hello'`,
			expected: []token.Token{
				{Type: token.STRING, Text: `'hello'`},
				{Type: token.END},
			},
		},
		{
			name:  "empty input",
			input: "",
			expected: []token.Token{
				{Type: token.END},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, collector := lexAll(t, tt.input)
			require.Len(t, tokens, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.Type, tokens[i].Type, "token %d", i)
				assert.Equal(t, want.Text, tokens[i].Text, "token %d", i)
			}
			assert.Empty(t, collector.Issues)
		})
	}
}

func TestNextSkipsCppComments(t *testing.T) {
	tokens, collector := lexAll(t, "a // line comment\nb /* block\ncomment */ c")
	require.Len(t, tokens, 4)
	assert.Equal(t, "a", tokens[0].Text)
	assert.Equal(t, "b", tokens[1].Text)
	assert.Equal(t, "c", tokens[2].Text)
	assert.Equal(t, token.END, tokens[3].Type)
	assert.Empty(t, collector.Issues)
}

func TestNextShellComments(t *testing.T) {
	tokens, collector := lexAll(t, "a # shell comment\nb", WithCommentStyle(CommentStyleShell))
	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].Text)
	assert.Equal(t, "b", tokens[1].Text)
	assert.Empty(t, collector.Issues)
}

func TestNextSlashNotComment(t *testing.T) {
	tokens, collector := lexAll(t, "a / b")
	require.Len(t, tokens, 4)
	assert.Equal(t, token.SYMBOL, tokens[1].Type)
	assert.Equal(t, "/", tokens[1].Text)
	assert.Empty(t, collector.Issues)
}

func TestCommentHandlerReceivesText(t *testing.T) {
	var got []string
	collector := NewCollector()
	tok := New(nil, NewSliceStream([]byte("// hello\nx")), collector,
		WithCommentHandler(func(text string, line, column int) {
			got = append(got, text)
		}))
	for {
		if tok.Next().Type == token.END {
			break
		}
	}
	require.Len(t, got, 1)
	assert.Equal(t, " hello\n", got[0])
}

func TestBlockCommentStripsContinuationMarkers(t *testing.T) {
	var got string
	collector := NewCollector()
	tok := New(nil, NewSliceStream([]byte("/* a\n * b\n */x")), collector,
		WithCommentHandler(func(text string, line, column int) { got = text }))
	tok.Next() // the trailing identifier 'x'
	assert.Equal(t, " a\n b\n", got)
}

func TestNextReportsWhitespace(t *testing.T) {
	tokens, _ := lexAll(t, "a  b", WithReportWhitespace(true))
	require.Len(t, tokens, 4)
	assert.Equal(t, token.WHITESPACE, tokens[1].Type)
}

func TestNextReportsNewlines(t *testing.T) {
	tokens, _ := lexAll(t, "a\nb", WithReportNewlines(true))
	var sawNewline bool
	for _, tok := range tokens {
		if tok.Type == token.NEWLINE {
			sawNewline = true
			assert.Equal(t, "\n", tok.Text)
		}
	}
	assert.True(t, sawNewline)
}

func TestReportWhitespaceFalseForcesReportNewlinesFalse(t *testing.T) {
	tokens, _ := lexAll(t, "a\nb", WithReportNewlines(true), WithReportWhitespace(false))
	for _, tok := range tokens {
		assert.NotEqual(t, token.NEWLINE, tok.Type)
		assert.NotEqual(t, token.WHITESPACE, tok.Type)
	}
}

func TestNextUnterminatedStringReportsError(t *testing.T) {
	tokens, collector := lexAll(t, `"unterminated`)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Type)
	require.NotEmpty(t, collector.Issues)
	assert.Contains(t, collector.Issues[0].Message, "end of string")
}

func TestNextMultilineStringRejectedByDefault(t *testing.T) {
	_, collector := lexAll(t, "\"a\nb\"")
	require.NotEmpty(t, collector.Issues)
	assert.Contains(t, collector.Issues[0].Message, "cannot cross line boundaries")
}

func TestNextMultilineStringAllowed(t *testing.T) {
	tokens, collector := lexAll(t, "\"a\nb\"", WithAllowMultilineStrings(true))
	require.Len(t, tokens, 2)
	assert.Equal(t, "\"a\nb\"", tokens[0].Text)
	assert.Empty(t, collector.Issues)
}

func TestNextNumberErrors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantSubstring string
	}{
		{"bad hex", "0x", "hex digits"},
		{"leading zero octal overflow", "08", "Numbers starting with leading zero"},
		{"trailing dot after float", "1.0.0", "decimal point or exponent"},
		{"bad exponent", "1e", "exponent"},
		{"space required after number", "123abc", "Need space"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, collector := lexAll(t, tt.input, WithRequireSpaceAfterNumber(true))
			require.NotEmpty(t, collector.Issues)
			assert.Contains(t, collector.Issues[0].Message, tt.wantSubstring)
		})
	}
}

func TestNextAllowFAfterFloat(t *testing.T) {
	tokens, collector := lexAll(t, "1.5f", WithAllowFAfterFloat(true))
	require.Len(t, tokens, 2)
	assert.Equal(t, token.FLOAT, tokens[0].Type)
	assert.Equal(t, "1.5f", tokens[0].Text)
	assert.Empty(t, collector.Issues)
}

func TestNextUnprintableCharacterReportsAndSkips(t *testing.T) {
	tokens, collector := lexAll(t, "a\x01b")
	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].Text)
	assert.Equal(t, "b", tokens[1].Text)
	require.NotEmpty(t, collector.Issues)
	assert.Contains(t, collector.Issues[0].Message, "Invalid control characters encountered in text.")
}

func TestNextDrainsRunOfControlCharactersWithOneError(t *testing.T) {
	tokens, collector := lexAll(t, "a\x01\x02\x03b")
	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].Text)
	assert.Equal(t, "b", tokens[1].Text)
	assert.Len(t, collector.Issues, 1)
}

func TestNextEmbeddedNullReportsInvalidControlCharacters(t *testing.T) {
	tokens, collector := lexAll(t, "a\x00b")
	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].Text)
	assert.Equal(t, "b", tokens[1].Text)
	require.NotEmpty(t, collector.Issues)
	assert.Contains(t, collector.Issues[0].Message, "Invalid control characters encountered in text.")
}

func TestCurrentAndPrevious(t *testing.T) {
	collector := NewCollector()
	tok := New(nil, NewSliceStream([]byte("a b")), collector)

	assert.Equal(t, token.START, tok.Current().Type)
	first := tok.Next()
	assert.Equal(t, first, tok.Current())
	assert.Equal(t, token.START, tok.Previous().Type)

	second := tok.Next()
	assert.Equal(t, second, tok.Current())
	assert.Equal(t, first, tok.Previous())
}

func TestTokenizerHonorsInitialBuffer(t *testing.T) {
	collector := NewCollector()
	tok := New([]byte("pre"), NewSliceStream([]byte("fix")), collector)
	got := tok.Next()
	assert.Equal(t, token.IDENTIFIER, got.Type)
	assert.Equal(t, "prefix", got.Text)
}

func TestTokenizerRefillAcrossStreamChunks(t *testing.T) {
	collector := NewCollector()
	tok := New(nil, &chunkStream{chunks: [][]byte{[]byte("ab"), []byte("cd"), []byte("ef")}}, collector)
	got := tok.Next()
	assert.Equal(t, "abcdef", got.Text)
}

// chunkStream serves a fixed sequence of chunks, one per Next call,
// then io.EOF.
type chunkStream struct {
	chunks [][]byte
	i      int
}

func (s *chunkStream) Next() ([]byte, error) {
	if s.i >= len(s.chunks) {
		return nil, io.EOF
	}
	c := s.chunks[s.i]
	s.i++
	return c, nil
}

func (s *chunkStream) BackUp(int) {}

// backUpSpy wraps a Stream, recording every call to BackUp.
type backUpSpy struct {
	Stream
	calls []int
}

func (s *backUpSpy) BackUp(n int) {
	s.calls = append(s.calls, n)
	s.Stream.BackUp(n)
}

func TestCloseBacksUpUnreadBufferSuffix(t *testing.T) {
	spy := &backUpSpy{Stream: NewReaderStream(strings.NewReader("ab cd"), 64)}
	tok := New(nil, spy, NewCollector())

	got := tok.Next()
	assert.Equal(t, "ab", got.Text)
	tok.Close()

	require.Len(t, spy.calls, 1)
	assert.Equal(t, len("ab cd")-len("ab"), spy.calls[0])
}

func TestCloseIsNoopOnceStreamExhausted(t *testing.T) {
	spy := &backUpSpy{Stream: NewSliceStream([]byte("x"))}
	tok := New(nil, spy, NewCollector())

	for {
		if tok.Next().Type == token.END {
			break
		}
	}
	tok.Close()
	assert.Empty(t, spy.calls)
}

func TestNonAsciiByteReportedAsSymbol(t *testing.T) {
	tokens, collector := lexAll(t, "a\xc3b")
	require.Len(t, tokens, 4) // "a", the non-ASCII symbol byte, "b", END
	assert.Equal(t, token.IDENTIFIER, tokens[0].Type)
	assert.Equal(t, token.SYMBOL, tokens[1].Type)
	assert.Equal(t, "\xc3", tokens[1].Text)
	assert.Equal(t, token.IDENTIFIER, tokens[2].Type)
	require.NotEmpty(t, collector.Issues)
	assert.Contains(t, collector.Issues[0].Message, "Interpreting non ascii codepoint")
}

func TestIdentifierAdjacentToDecimalPointReportsError(t *testing.T) {
	tokens, collector := lexAll(t, "foo.5")
	require.Len(t, tokens, 3) // IDENTIFIER "foo", FLOAT ".5", END
	assert.Equal(t, token.IDENTIFIER, tokens[0].Type)
	assert.Equal(t, "foo", tokens[0].Text)
	assert.Equal(t, token.FLOAT, tokens[1].Type)
	assert.Equal(t, ".5", tokens[1].Text)
	require.NotEmpty(t, collector.Issues)
	assert.Contains(t, collector.Issues[0].Message, "Need space between identifier and decimal point.")
	assert.Equal(t, 3, collector.Issues[0].Column) // column of the '.' in "foo.5"
}

func TestDotNotAdjacentToIdentifierReportsNoAdjacencyError(t *testing.T) {
	_, collector := lexAll(t, "foo .5")
	assert.Empty(t, collector.Issues)
}
