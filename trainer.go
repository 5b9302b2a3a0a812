package tinybpe

import (
	"fmt"

	"github.com/tinybpe-go/tinybpe/internal/bpe"
)

// Trainer learns a BPE merge list from a corpus of byte segments, one merge
// per Step call.
type Trainer struct {
	corpus *bpe.Corpus
	merges []Merge
}

// NewTrainer initializes training sequences from corpus, one node per byte,
// and builds the pair-frequency index.
func NewTrainer(corpus [][]byte) *Trainer {
	return &Trainer{
		corpus: bpe.NewCorpus(corpus),
	}
}

// LoadMerges replays a previously saved merge list before any new Step call,
// for continuation training. Each loaded merge is applied with id
// 256+position; it fails if a merge references an id that has not yet been
// produced at that point in the replay.
func (t *Trainer) LoadMerges(merges []Merge) error {
	for i, m := range merges {
		id := FirstMergeID + len(t.merges)
		if m.Left < 0 || m.Right < 0 || m.Left >= id || m.Right >= id {
			return NewTrainError("load_merges", &bpe.ErrOutOfRangeMerge{
				Index: i,
				Pair:  bpe.Pair{Left: m.Left, Right: m.Right},
				Max:   id - 1,
			})
		}
		t.corpus.ApplyKnownMerge(bpe.Pair{Left: m.Left, Right: m.Right}, id)
		t.merges = append(t.merges, m)
	}
	return nil
}

// StepOutcome reports what Step learned.
type StepOutcome struct {
	Pair  Merge
	NewID int
	Count int
}

// Step chooses the most frequent adjacent pair across the whole corpus
// (ties broken by smaller left, then smaller right), rewrites the corpus to
// replace every live occurrence of it with a fresh id, appends the pair to
// the merge list, and returns what it did. It returns ErrEmptyCorpus once no
// adjacent pair remains anywhere in the corpus.
func (t *Trainer) Step() (StepOutcome, error) {
	newID := FirstMergeID + len(t.merges)
	res, ok := t.corpus.Step(newID)
	if !ok {
		return StepOutcome{}, ErrEmptyCorpus
	}
	m := Merge{Left: res.Pair.Left, Right: res.Pair.Right}
	t.merges = append(t.merges, m)
	return StepOutcome{Pair: m, NewID: res.NewID, Count: res.Count}, nil
}

// Train repeatedly calls Step until the corpus has no pair left or until
// vocabSize-FirstMergeID merges have been learned (a vocabulary of vocabSize
// ids), whichever comes first. A vocabSize below FirstMergeID trains until
// the corpus has no pair left.
func (t *Trainer) Train(vocabSize int) error {
	target := vocabSize - FirstMergeID
	for target < 0 || len(t.merges) < target {
		if _, err := t.Step(); err != nil {
			if err == ErrEmptyCorpus {
				return nil
			}
			return err
		}
	}
	return nil
}

// Merges returns a copy of the merge list learned so far.
func (t *Trainer) Merges() []Merge {
	return append([]Merge(nil), t.merges...)
}

// MergesSize reports how many merges have been learned so far.
func (t *Trainer) MergesSize() int { return len(t.merges) }

// Segments materializes the current token ids of every training segment, in
// order. Exposed mainly for tests asserting against spec scenarios.
func (t *Trainer) Segments() [][]int { return t.corpus.Segments() }

// Save writes the merge list to prefix+".tinybpe" via SaveMerges.
func (t *Trainer) Save(prefix string) error {
	if err := SaveMerges(prefix+".tinybpe", t.merges); err != nil {
		return fmt.Errorf("tinybpe: save: %w", err)
	}
	return nil
}
