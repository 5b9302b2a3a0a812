package tinybpe

import (
	"sort"
	"strings"
)

// SpecialTokens is an ordered mapping from literal byte strings to reserved
// ids disjoint from the merge id range. Encoding splits input on the
// alternation of the registered strings; matching chunks become their
// reserved id directly, everything else goes through the BPE encoder.
type SpecialTokens struct {
	idByToken map[string]int
	tokenByID map[int]string
	sorted    []string // longest first, for greedy alternation matching
}

// NewSpecialTokens validates that every id is unique and every token string
// is non-empty before building the lookup tables.
func NewSpecialTokens(table map[string]int) (*SpecialTokens, error) {
	st := &SpecialTokens{
		idByToken: make(map[string]int, len(table)),
		tokenByID: make(map[int]string, len(table)),
	}
	for tok, id := range table {
		if tok == "" {
			return nil, NewTokenError("register", tok, ErrInvalidToken)
		}
		if other, exists := st.tokenByID[id]; exists {
			return nil, NewTokenIDError("register", id, &TokenError{Op: "duplicate id", Token: other})
		}
		st.idByToken[tok] = id
		st.tokenByID[id] = tok
		st.sorted = append(st.sorted, tok)
	}
	sort.Slice(st.sorted, func(i, j int) bool { return len(st.sorted[i]) > len(st.sorted[j]) })
	return st, nil
}

// ID reports the reserved id for a literal special-token string.
func (st *SpecialTokens) ID(token string) (int, bool) {
	id, ok := st.idByToken[token]
	return id, ok
}

// Token reports the literal bytes for a special token id.
func (st *SpecialTokens) Token(id int) (string, bool) {
	tok, ok := st.tokenByID[id]
	return tok, ok
}

// Len reports how many special tokens are registered.
func (st *SpecialTokens) Len() int { return len(st.idByToken) }

// Segment is one piece produced by Split: either a literal special token
// (IsSpecial true, ID set) or an ordinary run of text to hand to the BPE
// encoder.
type Segment struct {
	Text      []byte
	IsSpecial bool
	ID        int
}

// Split breaks input on every occurrence of a registered special token,
// scanning left to right and preferring the longest match at each position
// so that one special token string that is a prefix of another is never
// matched short.
func (st *SpecialTokens) Split(input []byte) []Segment {
	if st == nil || len(st.sorted) == 0 {
		return []Segment{{Text: input}}
	}
	var segs []Segment
	var plain []byte
	s := string(input)
	for i := 0; i < len(s); {
		matched := ""
		for _, tok := range st.sorted {
			if strings.HasPrefix(s[i:], tok) {
				matched = tok
				break
			}
		}
		if matched == "" {
			plain = append(plain, s[i])
			i++
			continue
		}
		if len(plain) > 0 {
			segs = append(segs, Segment{Text: plain})
			plain = nil
		}
		segs = append(segs, Segment{Text: []byte(matched), IsSpecial: true, ID: st.idByToken[matched]})
		i += len(matched)
	}
	if len(plain) > 0 {
		segs = append(segs, Segment{Text: plain})
	}
	return segs
}
