// Package bpe implements the trainer's mutable corpus representation (a
// doubly-linked token sequence stored as parallel arrays) and the
// pair-frequency index used to pick the next merge, plus the encoder's
// greedy lowest-rank merge loop.
package bpe

// NodeHandle identifies a single node inside an Arena. It stays valid for
// the lifetime of the Arena even after the node dies (IsAlive reports false,
// but the handle itself never gets reused or invalidated as a Go value).
type NodeHandle struct {
	Seq  int // which segment this node belongs to
	Node int // index within that segment's arrays
}

// Arena holds every training segment as a set of parallel index arrays:
// id[h], prev[h], next[h], alive[h]. Nodes are never physically freed during
// training; a removed node is unlinked and marked dead so that a
// PairIndex's recorded locations can still be looked up and lazily
// invalidated.
type Arena struct {
	id    [][]int
	prev  [][]int
	next  [][]int
	alive [][]bool
}

// NewArena builds one node per byte of every segment in corpus, wiring each
// segment into its own doubly-linked chain.
func NewArena(corpus [][]byte) *Arena {
	a := &Arena{
		id:    make([][]int, len(corpus)),
		prev:  make([][]int, len(corpus)),
		next:  make([][]int, len(corpus)),
		alive: make([][]bool, len(corpus)),
	}
	for s, seg := range corpus {
		n := len(seg)
		ids := make([]int, n)
		prev := make([]int, n)
		next := make([]int, n)
		alive := make([]bool, n)
		for i, b := range seg {
			ids[i] = int(b)
			prev[i] = i - 1
			next[i] = i + 1
			alive[i] = true
		}
		if n > 0 {
			next[n-1] = -1
		}
		a.id[s] = ids
		a.prev[s] = prev
		a.next[s] = next
		a.alive[s] = alive
	}
	return a
}

// NumSegments reports how many training sequences the arena holds.
func (a *Arena) NumSegments() int { return len(a.id) }

// Head returns the handle of the first live node of segment s, or ok=false
// if the segment is empty.
func (a *Arena) Head(s int) (NodeHandle, bool) {
	for i := 0; i < len(a.id[s]); i++ {
		if a.alive[s][i] {
			return NodeHandle{Seq: s, Node: i}, true
		}
	}
	return NodeHandle{}, false
}

// ID returns the token id currently stored at h.
func (a *Arena) ID(h NodeHandle) int { return a.id[h.Seq][h.Node] }

// SetID replaces the token id stored at h.
func (a *Arena) SetID(h NodeHandle, id int) { a.id[h.Seq][h.Node] = id }

// IsAlive reports whether h has not been removed.
func (a *Arena) IsAlive(h NodeHandle) bool { return a.alive[h.Seq][h.Node] }

// Next returns the live successor of h, if any.
func (a *Arena) Next(h NodeHandle) (NodeHandle, bool) {
	n := a.next[h.Seq][h.Node]
	if n == -1 {
		return NodeHandle{}, false
	}
	return NodeHandle{Seq: h.Seq, Node: n}, true
}

// Prev returns the live predecessor of h, if any.
func (a *Arena) Prev(h NodeHandle) (NodeHandle, bool) {
	p := a.prev[h.Seq][h.Node]
	if p == -1 {
		return NodeHandle{}, false
	}
	return NodeHandle{Seq: h.Seq, Node: p}, true
}

// Remove unlinks h from its chain and marks it dead. It does not touch h's
// own id/prev/next slots beyond the alive flag, so a stale NodeHandle that
// still points at h can detect the removal via IsAlive.
func (a *Arena) Remove(h NodeHandle) {
	s, i := h.Seq, h.Node
	p, n := a.prev[s][i], a.next[s][i]
	if p != -1 {
		a.next[s][p] = n
	}
	if n != -1 {
		a.prev[s][n] = p
	}
	a.alive[s][i] = false
}

// Segment materializes the live ids of segment s in order, for output once
// training or encoding on that segment is done.
func (a *Arena) Segment(s int) []int {
	out := make([]int, 0, len(a.id[s]))
	h, ok := a.Head(s)
	for ok {
		out = append(out, a.ID(h))
		h, ok = a.Next(h)
	}
	return out
}
