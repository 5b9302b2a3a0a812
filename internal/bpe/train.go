package bpe

import "fmt"

// Corpus drives training over a set of byte segments: it owns the Arena and
// PairIndex and exposes the single-step contract the public Trainer wraps.
type Corpus struct {
	arena *Arena
	index *PairIndex
}

// NewCorpus initializes one node per byte of every segment and builds the
// initial pair-frequency index.
func NewCorpus(segments [][]byte) *Corpus {
	a := NewArena(segments)
	return &Corpus{arena: a, index: NewPairIndex(a)}
}

// StepResult is what one trainer step produced.
type StepResult struct {
	Pair  Pair
	NewID int
	Count int
}

// Step chooses the top pair, merges every live occurrence of it into a
// fresh id, and reports what it did. ok is false once no adjacent pair
// remains anywhere in the corpus.
func (c *Corpus) Step(newID int) (StepResult, bool) {
	p, count, ok := c.index.Top()
	if !ok {
		return StepResult{}, false
	}
	c.index.ApplyMerge(c.arena, p, newID)
	return StepResult{Pair: p, NewID: newID, Count: count}, true
}

// ApplyKnownMerge replays a previously learned merge (used by LoadMerges):
// it merges every live occurrence of p into id without consulting Top, since
// the pair to merge is already decided.
func (c *Corpus) ApplyKnownMerge(p Pair, id int) {
	c.index.ApplyMerge(c.arena, p, id)
}

// MaxTokenID reports the largest token id referenced anywhere in the live
// corpus, or 255 if no larger id is present.
func (c *Corpus) MaxTokenID() int {
	max := 255
	for s := 0; s < c.arena.NumSegments(); s++ {
		h, ok := c.arena.Head(s)
		for ok {
			if id := c.arena.ID(h); id > max {
				max = id
			}
			h, ok = c.arena.Next(h)
		}
	}
	return max
}

// Segments materializes the current token ids of every segment, in order.
func (c *Corpus) Segments() [][]int {
	out := make([][]int, c.arena.NumSegments())
	for s := range out {
		out[s] = c.arena.Segment(s)
	}
	return out
}

// ErrOutOfRangeMerge reports that a loaded merge referenced a token id that
// had not yet been produced at that point in the replay.
type ErrOutOfRangeMerge struct {
	Index int
	Pair  Pair
	Max   int
}

func (e *ErrOutOfRangeMerge) Error() string {
	return fmt.Sprintf("bpe: merge %d references out-of-range id in pair %v (max known id %d)", e.Index, e.Pair, e.Max)
}
