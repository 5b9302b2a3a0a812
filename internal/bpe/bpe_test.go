package bpe

import "testing"

func TestCorpusStepAAAA(t *testing.T) {
	c := NewCorpus([][]byte{[]byte("aaaa")})

	res, ok := c.Step(256)
	if !ok {
		t.Fatalf("Step() reported no pair left, want a merge")
	}
	if res.Pair != (Pair{Left: 97, Right: 97}) {
		t.Errorf("Pair = %v, want (97,97)", res.Pair)
	}
	if res.Count != 3 {
		t.Errorf("Count = %d, want 3", res.Count)
	}

	segs := c.Segments()
	if len(segs) != 1 || len(segs[0]) != 2 || segs[0][0] != 256 || segs[0][1] != 256 {
		t.Errorf("Segments() = %v, want [[256 256]]", segs)
	}
}

func TestCorpusStepBananaTieBreak(t *testing.T) {
	// "banana": pairs (b,a)=1, (a,n)=2, (n,a)=2. (a,n) wins the tie since
	// 97 ("a") < 110 ("n") as the left member.
	c := NewCorpus([][]byte{[]byte("banana")})

	res, ok := c.Step(256)
	if !ok {
		t.Fatalf("Step() reported no pair left")
	}
	want := Pair{Left: int('a'), Right: int('n')}
	if res.Pair != want {
		t.Errorf("Pair = %v, want %v", res.Pair, want)
	}
	if res.Count != 2 {
		t.Errorf("Count = %d, want 2", res.Count)
	}

	segs := c.Segments()
	// b a-n a n a -> b 256 a n a? no: both "an" occurrences merge:
	// b(an)(an)a? "banana" = b a n a n a, occurrences at (1,2) and (3,4).
	if len(segs) != 1 {
		t.Fatalf("want 1 segment, got %d", len(segs))
	}
	got := segs[0]
	want2 := []int{int('b'), 256, 256, int('a')}
	if len(got) != len(want2) {
		t.Fatalf("Segments()[0] = %v, want %v", got, want2)
	}
	for i := range want2 {
		if got[i] != want2[i] {
			t.Errorf("Segments()[0][%d] = %d, want %d", i, got[i], want2[i])
		}
	}
}

func TestCorpusStepExhausted(t *testing.T) {
	c := NewCorpus([][]byte{[]byte("a"), []byte("b")})
	if _, ok := c.Step(256); ok {
		t.Fatalf("Step() should report no pair for single-byte segments")
	}
}

type fakeTable struct {
	rank map[Pair]int
	id   map[Pair]int
}

func (f fakeTable) Rank(left, right int) (int, bool) {
	r, ok := f.rank[Pair{Left: left, Right: right}]
	return r, ok
}

func (f fakeTable) IDFor(left, right int) (int, bool) {
	id, ok := f.id[Pair{Left: left, Right: right}]
	return id, ok
}

func TestEncodeSegmentFullPass(t *testing.T) {
	// merges: (a,a)->256 rank0, (256,256)->257 rank1
	table := fakeTable{
		rank: map[Pair]int{{97, 97}: 0, {256, 256}: 1},
		id:   map[Pair]int{{97, 97}: 256, {256, 256}: 257},
	}
	ids := []int{97, 97, 97, 97} // "aaaa"
	got := EncodeSegment(ids, table)
	want := []int{257}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("EncodeSegment = %v, want %v", got, want)
	}
}

func TestEncodeSegmentNoMerges(t *testing.T) {
	table := fakeTable{rank: map[Pair]int{}, id: map[Pair]int{}}
	ids := []int{1, 2, 3}
	got := EncodeSegment(ids, table)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("EncodeSegment = %v, want unchanged %v", got, ids)
	}
}

func TestArenaRemoveKeepsHandlesStable(t *testing.T) {
	a := NewArena([][]byte{[]byte("abc")})
	h0, _ := a.Head(0)
	h1, _ := a.Next(h0)
	h2, _ := a.Next(h1)

	a.Remove(h1)
	if a.IsAlive(h1) {
		t.Errorf("h1 should be dead after Remove")
	}
	if !a.IsAlive(h0) || !a.IsAlive(h2) {
		t.Errorf("h0 and h2 should remain alive")
	}
	next, ok := a.Next(h0)
	if !ok || next != h2 {
		t.Errorf("Next(h0) = %v, want h2 after h1 removed", next)
	}
}
