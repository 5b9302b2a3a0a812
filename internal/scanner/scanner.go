// Package scanner provides buffered, bufio.Scanner-style streaming
// tokenization over an io.Reader.
package scanner

import (
	"bufio"
	"io"
)

// Tokenizer is the minimal interface the scanner needs from a tokenizer.
type Tokenizer interface {
	Encode(text []byte) []int
}

// Scanner streams token ids out of a reader, following the bufio.Scanner
// pattern: Scan advances, Token reads the current token id, Err reports
// what went wrong. Text always returns the empty string; the scanner does
// not decode tokens back to text.
type Scanner interface {
	Scan() bool
	Token() int
	Text() string
	Err() error
}

type scanner struct {
	t Tokenizer
	r *bufio.Reader

	pending []byte // bytes read but not yet handed to the tokenizer
	tokens  []int
	idx     int
	curText string

	bufSize   int
	maxBuffer int
	done      bool
	err       error
}

// Option configures scanner behavior.
type Option func(*scanner)

// WithBufferSize sets the read buffer size. Default 4096 bytes.
func WithBufferSize(size int) Option {
	return func(s *scanner) {
		if size > 0 {
			s.bufSize = size
		}
	}
}

// WithMaxBuffer bounds how much unprocessed input accumulates before the
// scanner forces a tokenization pass, to keep pathological inputs from
// growing memory unboundedly. Default 1MB.
func WithMaxBuffer(size int) Option {
	return func(s *scanner) {
		if size > 0 {
			s.maxBuffer = size
		}
	}
}

// New creates a scanner with default options.
func New(t Tokenizer, r io.Reader) Scanner {
	return NewWithOptions(t, r)
}

// NewWithOptions creates a scanner with the given options applied.
func NewWithOptions(t Tokenizer, r io.Reader, opts ...Option) Scanner {
	s := &scanner{
		t:         t,
		bufSize:   4096,
		maxBuffer: 1024 * 1024,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.r = bufio.NewReaderSize(r, s.bufSize)
	return s
}

func (s *scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.idx < len(s.tokens) {
		s.idx++
		return true
	}

	for {
		if s.done {
			return false
		}
		buf := make([]byte, s.bufSize)
		n, err := s.r.Read(buf)
		if n > 0 {
			s.pending = append(s.pending, buf[:n]...)
		}
		if err == io.EOF {
			s.done = true
		} else if err != nil {
			s.err = err
			return false
		}

		if len(s.pending) == 0 {
			continue
		}
		if !s.done && len(s.pending) < s.maxBuffer {
			continue
		}

		s.tokens = s.t.Encode(s.pending)
		s.pending = nil
		s.idx = 0
		if len(s.tokens) > 0 {
			s.idx = 1
			return true
		}
		if s.done {
			return false
		}
	}
}

func (s *scanner) Token() int {
	if s.idx == 0 || s.idx > len(s.tokens) {
		return 0
	}
	return s.tokens[s.idx-1]
}

func (s *scanner) Text() string {
	return s.curText
}

func (s *scanner) Err() error {
	return s.err
}
