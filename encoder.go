package tinybpe

import "github.com/tinybpe-go/tinybpe/internal/bpe"

// EncodeBytes applies the byte permutation (if any) and the greedy
// lowest-rank merge algorithm to one pre-chunked segment, returning the
// resulting token ids.
func EncodeBytes(segment []byte, table *RankTable, remap *ByteRemap) []int {
	ids := make([]int, len(segment))
	for i, b := range segment {
		if remap != nil {
			ids[i] = remap.ToToken(b)
		} else {
			ids[i] = int(b)
		}
	}
	return bpe.EncodeSegment(ids, table)
}
