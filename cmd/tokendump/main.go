// Command tokendump tokenizes a file and prints its token stream,
// for inspecting how the tokenizer package breaks down a given input.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/lukeod/pbtok/token"
	"github.com/lukeod/pbtok/tokenizer"
)

func main() {
	log.SetFlags(0)

	inputPath := flag.String("input", "", "Path to the file to tokenize")
	format := flag.String("format", "repr", "Output format: repr or json")
	commentStyle := flag.String("comments", "cpp", "Comment syntax to recognize: cpp or shell")
	reportWhitespace := flag.Bool("whitespace", false, "Emit WHITESPACE tokens instead of skipping them")
	reportNewlines := flag.Bool("newlines", false, "Emit NEWLINE tokens instead of folding them into whitespace")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("Error: -input flag is required")
	}
	if *format != "repr" && *format != "json" {
		log.Fatalf("Error: invalid -format %q. Must be 'repr' or 'json'", *format)
	}

	var style tokenizer.CommentStyle
	switch *commentStyle {
	case "cpp":
		style = tokenizer.CommentStyleCPP
	case "shell":
		style = tokenizer.CommentStyleShell
	default:
		log.Fatalf("Error: invalid -comments %q. Must be 'cpp' or 'shell'", *commentStyle)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("Error opening %s: %v", *inputPath, err)
	}
	defer f.Close()

	collector := tokenizer.NewCollector()
	tok := tokenizer.New(nil, tokenizer.NewReaderStream(f, 4096), collector,
		tokenizer.WithCommentStyle(style),
		tokenizer.WithReportWhitespace(*reportWhitespace),
		tokenizer.WithReportNewlines(*reportNewlines),
	)

	var tokens []token.Token
	for {
		t := tok.Next()
		tokens = append(tokens, t)
		if t.Type == token.END {
			break
		}
	}
	tok.Close()

	switch *format {
	case "repr":
		for _, t := range tokens {
			repr.Println(t)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tokens); err != nil {
			log.Fatalf("Error encoding JSON: %v", err)
		}
	}

	if err := tok.Err(); err != nil {
		log.Printf("Stream error: %v", err)
	}
	for _, issue := range collector.Issues {
		kind := "error"
		if issue.Warning {
			kind = "warning"
		}
		fmt.Fprintf(os.Stderr, "%d:%d: %s: %s\n", issue.Line+1, issue.Column+1, kind, issue.Message)
	}
	if collector.HasErrors() {
		os.Exit(1)
	}
}
