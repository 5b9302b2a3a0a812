package scanner

import (
	"strings"
	"testing"
)

type upperTokenizer struct{}

func (upperTokenizer) Encode(text []byte) []int {
	ids := make([]int, len(text))
	for i, b := range text {
		ids[i] = int(b)
	}
	return ids
}

func TestScannerIteratesAllTokens(t *testing.T) {
	s := New(upperTokenizer{}, strings.NewReader("abc"))
	var got []int
	for s.Scan() {
		got = append(got, s.Token())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := []int{'a', 'b', 'c'}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestScannerEmptyReaderYieldsNoTokens(t *testing.T) {
	s := New(upperTokenizer{}, strings.NewReader(""))
	if s.Scan() {
		t.Fatalf("Scan() should return false immediately on empty input")
	}
}

func TestScannerForcesPassAtMaxBuffer(t *testing.T) {
	s := NewWithOptions(upperTokenizer{}, strings.NewReader("abcdef"), WithBufferSize(2), WithMaxBuffer(4))
	count := 0
	for s.Scan() {
		count++
	}
	if count != 6 {
		t.Errorf("count = %d, want 6", count)
	}
}
