package pretokenize

import (
	"reflect"
	"testing"
)

func chunkStrings(chunks [][]byte) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = string(c)
	}
	return out
}

func TestGPT4SplitWordsAndPunctuation(t *testing.T) {
	got := chunkStrings(GPT4Split([]byte("Hello, world!")))
	want := []string{"Hello", ",", " world", "!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GPT4Split = %v, want %v", got, want)
	}
}

func TestGPT4SplitContraction(t *testing.T) {
	got := chunkStrings(GPT4Split([]byte("don't")))
	want := []string{"don", "'t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GPT4Split = %v, want %v", got, want)
	}
}

func TestGPT4SplitNumberRuns(t *testing.T) {
	got := chunkStrings(GPT4Split([]byte("12345")))
	want := []string{"123", "45"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GPT4Split = %v, want %v", got, want)
	}
}

func TestGPT4SplitTrailingWhitespaceConsumedWhole(t *testing.T) {
	// \s+(?!\S): trailing whitespace with nothing non-whitespace after it
	// (here, end of string) is consumed as a single run.
	got := chunkStrings(GPT4Split([]byte("hi   ")))
	want := []string{"hi", "   "}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GPT4Split = %v, want %v", got, want)
	}
}

func TestGPT4SplitWhitespaceBeforeWordLeavesOneSpaceForNext(t *testing.T) {
	// "a  b": the run of 2 spaces is followed by a non-whitespace char, so
	// \s+(?!\S) only consumes 1 space, leaving the word's own optional
	// prefix to claim the other.
	got := chunkStrings(GPT4Split([]byte("a  b")))
	want := []string{"a", " ", " b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GPT4Split = %v, want %v", got, want)
	}
}

func TestGPT4SplitNewline(t *testing.T) {
	got := chunkStrings(GPT4Split([]byte("a\nb")))
	want := []string{"a", "\n", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GPT4Split = %v, want %v", got, want)
	}
}

func TestGPT4SplitReassemblesInput(t *testing.T) {
	text := "Hello, world! don't 123 go\nnow  please"
	chunks := GPT4Split([]byte(text))
	var rebuilt []byte
	for _, c := range chunks {
		rebuilt = append(rebuilt, c...)
	}
	if string(rebuilt) != text {
		t.Errorf("reassembled = %q, want %q", rebuilt, text)
	}
}
