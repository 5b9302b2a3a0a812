package tinybpe

import (
	"io"

	"github.com/tinybpe-go/tinybpe/internal/scanner"
)

// Scanner streams token ids out of a reader, following the bufio.Scanner
// pattern.
type Scanner = scanner.Scanner

// ScannerOption configures scanner behavior, re-exported from
// internal/scanner.
type ScannerOption = scanner.Option

// WithBufferSize sets the scanner's read buffer size.
var WithBufferSize = scanner.WithBufferSize

// WithMaxBuffer bounds how much input accumulates before a forced
// tokenization pass.
var WithMaxBuffer = scanner.WithMaxBuffer

type tokenizerAdapter struct{ *Tokenizer }

func (a tokenizerAdapter) Encode(text []byte) []int { return a.Tokenizer.Encode(text) }

// NewScanner creates a scanner for streaming tokenization with default
// options.
func (t *Tokenizer) NewScanner(r io.Reader) Scanner {
	return scanner.New(tokenizerAdapter{t}, r)
}

// NewScannerOptions creates a scanner with custom options.
func (t *Tokenizer) NewScannerOptions(r io.Reader, opts ...ScannerOption) Scanner {
	return scanner.NewWithOptions(tokenizerAdapter{t}, r, opts...)
}
