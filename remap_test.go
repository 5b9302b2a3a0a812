package tinybpe

import "testing"

func TestIdentityRemapRoundTrip(t *testing.T) {
	r := IdentityRemap()
	for v := 0; v < 256; v++ {
		id := r.ToToken(byte(v))
		back, ok := r.ToByte(id)
		if !ok || int(back) != v {
			t.Fatalf("round trip failed at byte %d: id=%d back=%d ok=%v", v, id, back, ok)
		}
	}
}

func TestNewByteRemapRoundTripPermutation(t *testing.T) {
	var forward [256]int
	for v := 0; v < 256; v++ {
		forward[v] = 255 - v // reverse permutation, still a bijection
	}
	r, err := NewByteRemap(forward)
	if err != nil {
		t.Fatalf("NewByteRemap: %v", err)
	}
	for v := 0; v < 256; v++ {
		id := r.ToToken(byte(v))
		back, ok := r.ToByte(id)
		if !ok || int(back) != v {
			t.Errorf("round trip failed at byte %d: id=%d back=%d", v, id, back)
		}
	}
}

func TestNewByteRemapRejectsNonBijection(t *testing.T) {
	var forward [256]int
	for v := 0; v < 256; v++ {
		forward[v] = 0 // every byte maps to id 0: not a bijection
	}
	if _, err := NewByteRemap(forward); err == nil {
		t.Fatalf("NewByteRemap should reject a non-bijective table")
	}
}

func TestByteRemapToByteOutOfRange(t *testing.T) {
	r := IdentityRemap()
	if _, ok := r.ToByte(-1); ok {
		t.Errorf("ToByte(-1) should fail")
	}
	if _, ok := r.ToByte(256); ok {
		t.Errorf("ToByte(256) should fail")
	}
}
