package tinybpe

// Merge is one learned BPE rule: the pair (Left, Right) merges into a single
// new token. Left and Right are token ids already known at the time the rule
// was learned (either raw byte ids 0..255 or earlier merge ids); the id
// produced by a Merge at position i in a merge list is FirstMergeID+i.
type Merge struct {
	Left  int
	Right int
}

// pairKey packs a (left, right) token-id pair into a single comparable value
// for use as a map key. Token ids stay well under 32 bits for any realistic
// vocabulary, so this never collides.
type pairKey uint64

func makePairKey(left, right int) pairKey {
	return pairKey(uint64(uint32(left))<<32 | uint64(uint32(right)))
}

func (k pairKey) split() (left, right int) {
	return int(int32(uint32(k >> 32))), int(int32(uint32(k)))
}

// RankTable is an immutable lookup from a (left, right) token pair to the
// rank (lower is preferred) at which it was learned, and from a rank back to
// its constituent pair. It is built once from a merge list and
// shared read-only across encoders.
type RankTable struct {
	rank   map[pairKey]int   // pair -> rank (== index into merges, == id-FirstMergeID)
	pair   []Merge           // rank -> (left, right), i.e. the merge list itself
	idToID map[pairKey]int   // pair -> produced token id (rank + FirstMergeID)
}

// NewRankTable builds a RankTable from an ordered merge list. The order is
// significant: merges earlier in the list were learned first and always
// win ties against later ones.
func NewRankTable(merges []Merge) *RankTable {
	t := &RankTable{
		rank:   make(map[pairKey]int, len(merges)),
		pair:   append([]Merge(nil), merges...),
		idToID: make(map[pairKey]int, len(merges)),
	}
	for i, m := range merges {
		k := makePairKey(m.Left, m.Right)
		t.rank[k] = i
		t.idToID[k] = FirstMergeID + i
	}
	return t
}

// Rank reports the merge rank for a (left, right) pair, if any has been
// learned for it.
func (t *RankTable) Rank(left, right int) (rank int, ok bool) {
	rank, ok = t.rank[makePairKey(left, right)]
	return
}

// IDFor reports the token id a (left, right) pair merges into, if learned.
func (t *RankTable) IDFor(left, right int) (id int, ok bool) {
	id, ok = t.idToID[makePairKey(left, right)]
	return
}

// MergeAt returns the merge learned at the given rank.
func (t *RankTable) MergeAt(rank int) (Merge, bool) {
	if rank < 0 || rank >= len(t.pair) {
		return Merge{}, false
	}
	return t.pair[rank], true
}

// Len reports how many merges the table holds.
func (t *RankTable) Len() int { return len(t.pair) }

// Merges returns a copy of the underlying ordered merge list.
func (t *RankTable) Merges() []Merge {
	return append([]Merge(nil), t.pair...)
}
