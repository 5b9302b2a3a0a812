package bpe

// Pair is an adjacent (left, right) token-id pair as seen somewhere in the
// corpus.
type Pair struct {
	Left  int
	Right int
}

func pairLess(a, b Pair) bool {
	if a.Left != b.Left {
		return a.Left < b.Left
	}
	return a.Right < b.Right
}

// PairIndex tracks, for every adjacent live pair anywhere in an Arena, its
// count and the set of locations (the left node of each occurrence). It
// need not be a strict heap: counts live in a hash map and a count-bucketed
// max-track gives top() without a full rescan on every mutation, matching
// the "hash map plus a max-track on mutation" latitude the design allows.
type PairIndex struct {
	count     map[Pair]int
	locations map[Pair][]NodeHandle
	byCount   map[int]map[Pair]struct{}
	maxCount  int
}

// NewPairIndex scans every segment of a once, emitting (prev.id, cur.id) for
// each adjacent live pair.
func NewPairIndex(a *Arena) *PairIndex {
	idx := &PairIndex{
		count:     make(map[Pair]int),
		locations: make(map[Pair][]NodeHandle),
		byCount:   make(map[int]map[Pair]struct{}),
	}
	for s := 0; s < a.NumSegments(); s++ {
		h, ok := a.Head(s)
		if !ok {
			continue
		}
		for {
			nh, ok := a.Next(h)
			if !ok {
				break
			}
			idx.add(Pair{Left: a.ID(h), Right: a.ID(nh)}, h)
			h = nh
		}
	}
	return idx
}

func (idx *PairIndex) add(p Pair, loc NodeHandle) {
	idx.removeFromBucket(p, idx.count[p])
	idx.count[p]++
	idx.locations[p] = append(idx.locations[p], loc)
	idx.addToBucket(p, idx.count[p])
	if idx.count[p] > idx.maxCount {
		idx.maxCount = idx.count[p]
	}
}

// decrement lowers p's count by one without touching its locations slice;
// stale locations are discarded lazily when encountered in apply, matching
// the design's lazy-validation invariant.
func (idx *PairIndex) decrement(p Pair) {
	c, ok := idx.count[p]
	if !ok || c <= 0 {
		return
	}
	idx.removeFromBucket(p, c)
	c--
	if c == 0 {
		delete(idx.count, p)
		delete(idx.locations, p)
		return
	}
	idx.count[p] = c
	idx.addToBucket(p, c)
}

func (idx *PairIndex) addToBucket(p Pair, c int) {
	b := idx.byCount[c]
	if b == nil {
		b = make(map[Pair]struct{})
		idx.byCount[c] = b
	}
	b[p] = struct{}{}
}

func (idx *PairIndex) removeFromBucket(p Pair, c int) {
	if c <= 0 {
		return
	}
	if b, ok := idx.byCount[c]; ok {
		delete(b, p)
		if len(b) == 0 {
			delete(idx.byCount, c)
		}
	}
}

// Top returns the pair with maximum count, tie-broken by smaller Left then
// smaller Right. ok is false only when the index holds no pair at all.
func (idx *PairIndex) Top() (p Pair, count int, ok bool) {
	for idx.maxCount > 0 {
		b, exists := idx.byCount[idx.maxCount]
		if !exists || len(b) == 0 {
			idx.maxCount--
			continue
		}
		best, found := Pair{}, false
		for cand := range b {
			if !found || pairLess(cand, best) {
				best = cand
				found = true
			}
		}
		return best, idx.maxCount, true
	}
	return Pair{}, 0, false
}

// Count reports the current count for p (0 if absent).
func (idx *PairIndex) Count(p Pair) int { return idx.count[p] }

// ApplyMerge merges every still-live occurrence of pair P into new id N
// inside the arena, validating each recorded location against the arena's
// live state before touching it (§4.3's local rewrite).
func (idx *PairIndex) ApplyMerge(a *Arena, p Pair, newID int) {
	locs := idx.locations[p]
	delete(idx.locations, p)
	idx.removeFromBucket(p, idx.count[p])
	delete(idx.count, p)

	for _, L := range locs {
		if !a.IsAlive(L) {
			continue
		}
		R, ok := a.Next(L)
		if !ok {
			continue
		}
		if a.ID(L) != p.Left || a.ID(R) != p.Right {
			continue
		}

		P, hasP := a.Prev(L)
		Q, hasQ := a.Next(R)

		if hasP {
			idx.decrement(Pair{Left: a.ID(P), Right: a.ID(L)})
		}
		if hasQ {
			idx.decrement(Pair{Left: a.ID(R), Right: a.ID(Q)})
		}

		a.SetID(L, newID)
		a.Remove(R)

		if hasP {
			idx.add(Pair{Left: a.ID(P), Right: newID}, P)
		}
		if hasQ {
			idx.add(Pair{Left: newID, Right: a.ID(Q)}, L)
		}
	}
}
