// Command example is a minimal end-to-end demonstration of tinybpe: train a
// small model from a corpus, then encode and decode text with it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tinybpe-go/tinybpe"
)

func main() {
	var (
		corpusPath = flag.String("corpus", "", "path to a training corpus (required)")
		vocabSize  = flag.Int("vocab-size", 512, "target vocabulary size")
		text       = flag.String("text", "", "text to encode")
		decode     = flag.String("decode", "", "comma-separated token ids to decode")
		interactive = flag.Bool("i", false, "interactive mode")
		verbose    = flag.Bool("v", false, "verbose output")
	)
	flag.Parse()

	if *corpusPath == "" {
		fmt.Fprintln(os.Stderr, "error: -corpus is required")
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading corpus: %v\n", err)
		os.Exit(1)
	}

	trainer := tinybpe.NewTrainer(whitespaceChunks(data))
	if err := trainer.Train(*vocabSize); err != nil {
		fmt.Fprintf(os.Stderr, "error training: %v\n", err)
		os.Exit(1)
	}

	tok, err := tinybpe.New(tinybpe.WithMerges(trainer.Merges()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating tokenizer: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Trained %d merges. Vocabulary size: %d\n", trainer.MergesSize(), tok.Vocab().Len())
	}

	if *decode != "" {
		fmt.Println(string(tok.Decode(parseTokens(*decode))))
		return
	}

	if *interactive {
		runInteractive(tok, *verbose)
		return
	}

	if *text != "" {
		tokens := tok.Encode([]byte(*text))
		if *verbose {
			fmt.Printf("Text: %s\n", *text)
			fmt.Printf("Tokens (%d): %v\n", len(tokens), tokens)
			fmt.Printf("Decoded: %s\n", tok.Decode(tokens))
		} else {
			fmt.Println(formatTokens(tokens))
		}
		return
	}

	flag.Usage()
}

func runInteractive(tok *tinybpe.Tokenizer, verbose bool) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("tinybpe interactive mode")
	fmt.Println("Type 'quit' to exit, or 'decode <ids>' to decode")
	fmt.Println()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "quit" || line == "exit" {
			break
		}
		if strings.HasPrefix(line, "decode ") {
			fmt.Printf("Decoded: %s\n", tok.Decode(parseTokens(strings.TrimPrefix(line, "decode "))))
			continue
		}

		tokens := tok.Encode([]byte(line))
		if verbose {
			fmt.Printf("Tokens (%d): %v\n", len(tokens), tokens)
			fmt.Printf("Decoded: %s\n", tok.Decode(tokens))
		} else {
			fmt.Println(formatTokens(tokens))
		}
	}
}

func parseTokens(s string) []int {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	tokens := make([]int, 0, len(parts))
	for _, part := range parts {
		if t, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func formatTokens(tokens []int) string {
	strs := make([]string, len(tokens))
	for i, t := range tokens {
		strs[i] = strconv.Itoa(t)
	}
	return strings.Join(strs, ", ")
}

func whitespaceChunks(b []byte) [][]byte {
	if len(b) == 0 {
		return nil
	}
	var out [][]byte
	start := 0
	inSpace := isSpace(b[0])
	for i := 1; i < len(b); i++ {
		s := isSpace(b[i])
		if s != inSpace {
			out = append(out, b[start:i])
			start = i
			inSpace = s
		}
	}
	out = append(out, b[start:])
	return out
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
