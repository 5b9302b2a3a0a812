package tinybpe

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	modelMagic  = "tinybpe model"
	remapsMagic = "tinybpe remaps"
	vocabMagic  = "tinybpe vocab"
)

// SaveMerges writes merges to path in the .tinybpe/.tinymodel format: a
// magic line, a count line, then one "left right" line per merge, in order.
func SaveMerges(path string, merges []Merge) error {
	f, err := os.Create(path)
	if err != nil {
		return NewModelFileError("create", path, 0, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, modelMagic)
	fmt.Fprintln(w, len(merges))
	for _, m := range merges {
		fmt.Fprintf(w, "%d %d\n", m.Left, m.Right)
	}
	if err := w.Flush(); err != nil {
		return NewModelFileError("flush", path, 0, err)
	}
	return nil
}

// LoadMergesFile reads a .tinybpe/.tinymodel file written by SaveMerges.
func LoadMergesFile(path string) ([]Merge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewModelFileError("open", path, 0, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 1
	if !sc.Scan() {
		return nil, NewModelFileError("read magic", path, line, sc.Err())
	}
	if strings.TrimSpace(sc.Text()) != modelMagic {
		return nil, NewModelFileError("read magic", path, line, fmt.Errorf("unexpected magic %q", sc.Text()))
	}

	line++
	if !sc.Scan() {
		return nil, NewModelFileError("read count", path, line, sc.Err())
	}
	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, NewModelFileError("read count", path, line, err)
	}

	merges := make([]Merge, 0, count)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		parts := strings.Fields(text)
		if len(parts) != 2 {
			return nil, NewModelFileError("parse merge line", path, line, fmt.Errorf("want 2 fields, got %d", len(parts)))
		}
		left, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, NewModelFileError("parse merge line", path, line, err)
		}
		right, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, NewModelFileError("parse merge line", path, line, err)
		}
		merges = append(merges, Merge{Left: left, Right: right})
	}
	if err := sc.Err(); err != nil {
		return nil, NewModelFileError("scan", path, line, err)
	}
	if len(merges) != count {
		return nil, NewModelFileError("parse", path, 0, fmt.Errorf("declared %d merges, found %d", count, len(merges)))
	}
	return merges, nil
}

// SaveRemaps writes a ByteRemap's forward permutation to path in the
// .remaps/.map format: a magic line, then one token id per line, indexed by
// raw byte value 0..255.
func SaveRemaps(path string, remap *ByteRemap) error {
	f, err := os.Create(path)
	if err != nil {
		return NewRemapError("create", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, remapsMagic)
	forward := remap.Forward()
	for _, id := range forward {
		fmt.Fprintln(w, id)
	}
	if err := w.Flush(); err != nil {
		return NewRemapError("flush", path, err)
	}
	return nil
}

// LoadRemapsFile reads a .remaps/.map file written by SaveRemaps.
func LoadRemapsFile(path string) (*ByteRemap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewRemapError("open", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, NewRemapError("read magic", path, sc.Err())
	}
	if strings.TrimSpace(sc.Text()) != remapsMagic {
		return nil, NewRemapError("read magic", path, fmt.Errorf("unexpected magic %q", sc.Text()))
	}

	var forward [256]int
	n := 0
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if n >= 256 {
			return nil, NewRemapError("parse", path, fmt.Errorf("more than 256 entries"))
		}
		id, err := strconv.Atoi(text)
		if err != nil {
			return nil, NewRemapError("parse", path, err)
		}
		forward[n] = id
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, NewRemapError("scan", path, err)
	}
	if n != 256 {
		return nil, NewRemapError("parse", path, fmt.Errorf("expected 256 entries, found %d", n))
	}
	return NewByteRemap(forward)
}

// SaveVocab writes a human-readable dump of a vocab: a magic line, a count
// line, then one "<id>: <byte repr>" line per id, matching the Python
// original's `bytes` repr closely enough to be useful for inspection.
func SaveVocab(path string, v *Vocab) error {
	f, err := os.Create(path)
	if err != nil {
		return NewModelFileError("create", path, 0, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, vocabMagic)
	fmt.Fprintln(w, v.Len())
	for id := 0; id < v.Len(); id++ {
		b, _ := v.Lookup(id)
		fmt.Fprintf(w, "%d: %s\n", id, pyBytesRepr(b))
	}
	if err := w.Flush(); err != nil {
		return NewModelFileError("flush", path, 0, err)
	}
	return nil
}

// pyBytesRepr renders b the way Python's bytes.__repr__ would, e.g.
// b'hello\n' for "hello" plus a newline, and b"it's" (double quotes) when b
// holds a single quote but no double quote, so a .vocab dump reads the same
// regardless of which implementation produced it.
func pyBytesRepr(b []byte) string {
	quote := byte('\'')
	if strings.IndexByte(string(b), '\'') >= 0 && strings.IndexByte(string(b), '"') < 0 {
		quote = '"'
	}
	var sb strings.Builder
	sb.WriteByte('b')
	sb.WriteByte(quote)
	for _, c := range b {
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case quote:
			sb.WriteByte('\\')
			sb.WriteByte(quote)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c >= 0x20 && c < 0x7f {
				sb.WriteByte(c)
			} else {
				fmt.Fprintf(&sb, `\x%02x`, c)
			}
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}

// FromRanks converts an externally-trained vocabulary (e.g. tiktoken's
// mergeable_ranks: token bytes -> rank) into a tinybpe merge list, mirroring
// scripts/tools_tiktoken.py's bpe_get_merges_and_remaps: every multi-byte
// token is decomposed back into the two constituent ranks that must have
// produced it by re-running the same greedy lowest-rank merge the trainer
// would have used, stopping as soon as the candidate rank would be at least
// the token's own rank.
func FromRanks(ranks map[string]int) ([]Merge, error) {
	byRank := make(map[int]Merge, len(ranks))
	maxRank := -1
	for tok, rank := range ranks {
		if rank > maxRank {
			maxRank = rank
		}
		if len(tok) == 1 {
			continue
		}
		left, right, ok := bpePair(tok, ranks, rank)
		if !ok {
			return nil, fmt.Errorf("tinybpe: could not decompose token %q into a constituent pair", tok)
		}
		byRank[rank] = Merge{Left: left, Right: right}
	}

	merges := make([]Merge, 0, len(byRank))
	for i := 0; FirstMergeID+i <= maxRank; i++ {
		m, ok := byRank[FirstMergeID+i]
		if !ok {
			break
		}
		merges = append(merges, m)
	}
	return merges, nil
}

// bpePair decomposes token into the two parts whose own ranks must have
// been merged to create it: repeatedly merge the lowest-rank adjacent pair
// of parts until exactly two parts remain, refusing to perform a merge
// whose rank is not strictly below the token's own rank (a merge that
// happened at or after this token could not have produced it).
func bpePair(token string, ranks map[string]int, ownRank int) (left, right int, ok bool) {
	parts := make([]string, len(token))
	for i := 0; i < len(token); i++ {
		parts[i] = token[i : i+1]
	}

	for {
		bestIdx, bestRank := -1, -1
		for i := 0; i+1 < len(parts); i++ {
			merged := parts[i] + parts[i+1]
			r, found := ranks[merged]
			if !found {
				continue
			}
			if bestIdx == -1 || r < bestRank {
				bestIdx, bestRank = i, r
			}
		}
		if bestIdx == -1 || bestRank >= ownRank {
			break
		}
		parts = append(append(append([]string(nil), parts[:bestIdx]...), parts[bestIdx]+parts[bestIdx+1]), parts[bestIdx+2:]...)
	}

	if len(parts) != 2 {
		return 0, 0, false
	}
	l, lok := ranks[parts[0]]
	r, rok := ranks[parts[1]]
	if !lok || !rok {
		return 0, 0, false
	}
	return l, r, true
}
