package tinybpe

import (
	"reflect"
	"testing"
)

func TestNewSpecialTokensRejectsDuplicateID(t *testing.T) {
	_, err := NewSpecialTokens(map[string]int{
		"<a>": 300,
		"<b>": 300,
	})
	if err == nil {
		t.Fatalf("expected an error for two tokens sharing id 300")
	}
}

func TestNewSpecialTokensRejectsEmptyToken(t *testing.T) {
	_, err := NewSpecialTokens(map[string]int{"": 300})
	if err == nil {
		t.Fatalf("expected an error for an empty token string")
	}
}

func TestSplitPrefersLongestMatch(t *testing.T) {
	st, err := NewSpecialTokens(map[string]int{
		"<|endoftext|>": 300,
		"<|endof":       301, // a prefix of the token above
	})
	if err != nil {
		t.Fatalf("NewSpecialTokens: %v", err)
	}

	got := st.Split([]byte("hello <|endoftext|> world"))
	want := []Segment{
		{Text: []byte("hello ")},
		{Text: []byte("<|endoftext|>"), IsSpecial: true, ID: 300},
		{Text: []byte(" world")},
	}
	if len(got) != len(want) {
		t.Fatalf("Split() = %+v, want %+v", got, want)
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("Split()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitNoSpecialsReturnsWholeInput(t *testing.T) {
	st, _ := NewSpecialTokens(nil)
	got := st.Split([]byte("plain text"))
	if len(got) != 1 || string(got[0].Text) != "plain text" || got[0].IsSpecial {
		t.Errorf("Split() = %+v, want a single plain segment", got)
	}
}
