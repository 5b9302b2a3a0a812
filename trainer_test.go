package tinybpe

import "testing"

func TestTrainerStepAAAA(t *testing.T) {
	tr := NewTrainer([][]byte{[]byte("aaaa")})
	out, err := tr.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if out.Pair != (Merge{Left: 97, Right: 97}) || out.NewID != 256 || out.Count != 3 {
		t.Errorf("Step() = %+v, want {Pair:{97 97} NewID:256 Count:3}", out)
	}
}

func TestTrainerStepExhaustionReturnsErrEmptyCorpus(t *testing.T) {
	tr := NewTrainer([][]byte{[]byte("a"), []byte("b")})
	if _, err := tr.Step(); err != ErrEmptyCorpus {
		t.Fatalf("Step() err = %v, want ErrEmptyCorpus", err)
	}
}

func TestTrainerTrainStopsAtVocabSize(t *testing.T) {
	tr := NewTrainer([][]byte{[]byte("aaaaaaaa")})
	if err := tr.Train(FirstMergeID + 2); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if tr.MergesSize() != 2 {
		t.Errorf("MergesSize() = %d, want 2", tr.MergesSize())
	}
}

func TestTrainerContinuationMatchesOneShot(t *testing.T) {
	corpus := [][]byte{[]byte("the quick brown fox the quick brown fox")}

	oneShot := NewTrainer(corpus)
	if err := oneShot.Train(FirstMergeID + 6); err != nil {
		t.Fatalf("Train (one-shot): %v", err)
	}

	partial := NewTrainer(corpus)
	if err := partial.Train(FirstMergeID + 3); err != nil {
		t.Fatalf("Train (partial): %v", err)
	}
	continued := NewTrainer(corpus)
	if err := continued.LoadMerges(partial.Merges()); err != nil {
		t.Fatalf("LoadMerges: %v", err)
	}
	if err := continued.Train(FirstMergeID + 6); err != nil {
		t.Fatalf("Train (continued): %v", err)
	}

	want := oneShot.Merges()
	got := continued.Merges()
	if len(got) != len(want) {
		t.Fatalf("len(Merges()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Merges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTrainerLoadMergesRejectsOutOfRangeMerge(t *testing.T) {
	tr := NewTrainer([][]byte{[]byte("ab")})
	err := tr.LoadMerges([]Merge{{Left: 9999, Right: 1}})
	if err == nil {
		t.Fatalf("LoadMerges should reject a merge referencing an unknown id")
	}
}
