package tinybpe

import (
	"strings"
	"testing"
)

func TestTokenizerScannerStreamsAllTokens(t *testing.T) {
	merges := trainMerges(t, []string{"the quick brown fox"}, FirstMergeID+8)
	tok, err := New(WithMerges(merges))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	text := "the quick brown fox"
	want := tok.Encode([]byte(text))

	sc := tok.NewScanner(strings.NewReader(text))
	var got []int
	for sc.Scan() {
		got = append(got, sc.Token())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
