package tinybpe

import (
	"bytes"
	"testing"
)

func TestBuildVocabExpandsTransitively(t *testing.T) {
	merges := []Merge{
		{Left: int('a'), Right: int('a')}, // 256 = "aa"
		{Left: 256, Right: 256},           // 257 = "aaaa"
	}
	v := BuildVocab(merges, nil)

	if b, ok := v.Lookup(int('a')); !ok || !bytes.Equal(b, []byte{'a'}) {
		t.Errorf("Lookup('a') = %q, want \"a\"", b)
	}
	if b, ok := v.Lookup(256); !ok || !bytes.Equal(b, []byte("aa")) {
		t.Errorf("Lookup(256) = %q, want \"aa\"", b)
	}
	if b, ok := v.Lookup(257); !ok || !bytes.Equal(b, []byte("aaaa")) {
		t.Errorf("Lookup(257) = %q, want \"aaaa\"", b)
	}
	if v.Len() != FirstMergeID+2 {
		t.Errorf("Len() = %d, want %d", v.Len(), FirstMergeID+2)
	}
}

func TestBuildVocabHonorsByteRemap(t *testing.T) {
	var forward [256]int
	for i := 0; i < 256; i++ {
		forward[i] = 255 - i
	}
	remap, err := NewByteRemap(forward)
	if err != nil {
		t.Fatalf("NewByteRemap: %v", err)
	}
	v := BuildVocab(nil, remap)

	// token id 255 should resolve back to byte value 0.
	b, ok := v.Lookup(255)
	if !ok || len(b) != 1 || b[0] != 0 {
		t.Errorf("Lookup(255) = %v, want [0]", b)
	}
}

func TestVocabDecodeSkipsUnknownIDs(t *testing.T) {
	v := BuildVocab(nil, nil)
	out := v.Decode([]int{int('h'), int('i'), 9999})
	if !bytes.Equal(out, []byte("hi")) {
		t.Errorf("Decode = %q, want \"hi\"", out)
	}
}
