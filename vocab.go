package tinybpe

// Vocab is the transitively-expanded byte representation of the byte and
// merge token ids: ids 0..255 for raw bytes (through the inverse byte
// permutation, if configured) and ids FirstMergeID.. for learned merges.
// Special-token ids are not part of a Vocab; Tokenizer.BytesOf resolves them
// from the special-token table.
type Vocab struct {
	bytes [][]byte // index = id, for id < FirstMergeID+len(merges)
}

// BuildVocab walks the merge list in order, expanding vocab[256+i] =
// vocab[left_i] + vocab[right_i], seeded with the 256 single-byte entries
// (through the inverse byte permutation when remap is non-nil).
func BuildVocab(merges []Merge, remap *ByteRemap) *Vocab {
	v := &Vocab{bytes: make([][]byte, FirstMergeID+len(merges))}
	for id := 0; id < FirstMergeID; id++ {
		b := byte(id)
		if remap != nil {
			if raw, ok := remap.ToByte(id); ok {
				b = raw
			}
		}
		v.bytes[id] = []byte{b}
	}
	for i, m := range merges {
		v.bytes[FirstMergeID+i] = concatBytes(v.bytes[m.Left], v.bytes[m.Right])
	}
	return v
}

func concatBytes(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Lookup returns the byte representation of id, if known to this vocab.
func (v *Vocab) Lookup(id int) ([]byte, bool) {
	if id < 0 || id >= len(v.bytes) {
		return nil, false
	}
	return v.bytes[id], true
}

// Len reports how many ids this vocab covers (256 + number of merges).
func (v *Vocab) Len() int { return len(v.bytes) }

// Decode concatenates vocab[id] for every id in ids and returns the raw
// bytes. Ids not present in vocab (e.g. registered special tokens) are
// skipped; Tokenizer.Decode is the decoder that also resolves special ids.
func (v *Vocab) Decode(ids []int) []byte {
	out := make([]byte, 0, len(ids)*2)
	for _, id := range ids {
		if b, ok := v.Lookup(id); ok {
			out = append(out, b...)
		}
	}
	return out
}
