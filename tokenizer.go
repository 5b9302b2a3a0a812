package tinybpe

import "github.com/tinybpe-go/tinybpe/internal/pretokenize"

// Chunker splits raw text into the segments that get BPE-encoded
// independently. The default performs only whitespace-preserving runs
// (no regex); pretokenize.GPT4Split is a drop-in replacement that matches
// the cl100k_base-style split pattern.
type Chunker func([]byte) [][]byte

// Tokenizer ties together a merge table, its derived vocab, an optional
// byte permutation, and a set of special tokens into the full
// encode/decode/stream-decode contract.
type Tokenizer struct {
	table    *RankTable
	vocab    *Vocab
	remap    *ByteRemap
	specials *SpecialTokens
	cache    encodeCache
	chunker  Chunker
}

func defaultChunker(b []byte) [][]byte {
	if len(b) == 0 {
		return nil
	}
	var out [][]byte
	start := 0
	inSpace := isSpace(b[0])
	for i := 1; i < len(b); i++ {
		s := isSpace(b[i])
		if s != inSpace {
			out = append(out, b[start:i])
			start = i
			inSpace = s
		}
	}
	out = append(out, b[start:])
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// New builds a Tokenizer from functional options. At least one of
// WithMerges or WithModelFile must supply a merge list.
func New(opts ...Option) (*Tokenizer, error) {
	cfg := &tokenizerConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	merges := cfg.merges
	if cfg.modelPath != "" {
		loaded, err := LoadMergesFile(cfg.modelPath)
		if err != nil {
			return nil, err
		}
		merges = loaded
	}
	if len(merges) == 0 {
		return nil, NewConfigError("merges", nil, ErrInvalidToken)
	}

	remap := cfg.remap
	if cfg.remapPath != "" {
		loaded, err := LoadRemapsFile(cfg.remapPath)
		if err != nil {
			return nil, err
		}
		remap = loaded
	}

	for tok, id := range cfg.specialTokens {
		if id < FirstMergeID+len(merges) {
			return nil, &TokenError{Op: "register", Token: tok, TokenID: id, Err: errSpecialCollidesWithMerge}
		}
	}
	specials, err := NewSpecialTokens(cfg.specialTokens)
	if err != nil {
		return nil, err
	}

	cacheSize := DefaultCacheSize
	if cfg.cacheSizeSet {
		cacheSize = cfg.cacheSize
	}
	var cache encodeCache
	if cacheSize == 0 {
		cache = noCache{}
	} else {
		cache = newLRUCache(cacheSize)
	}

	table := NewRankTable(merges)
	return &Tokenizer{
		table:    table,
		vocab:    BuildVocab(merges, remap),
		remap:    remap,
		specials: specials,
		cache:    cache,
		chunker:  defaultChunker,
	}, nil
}

// NewGPT4Compatible builds a Tokenizer from a .tinybpe merge file and a
// .remaps byte-permutation file, registering the fixed cl100k_base-style
// special token table and the GPT-4 split pattern chunker
// (pretokenize.GPT4Split), the way models/gpt4.py composes them in the
// original. A non-nil chunker replaces the GPT-4 split pattern chunker.
func NewGPT4Compatible(modelPath, remapPath string, chunker Chunker) (*Tokenizer, error) {
	merges, err := LoadMergesFile(modelPath)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithMerges(merges)}
	if remapPath != "" {
		opts = append(opts, WithRemapFile(remapPath))
	}
	for tok, id := range GPT4SpecialTokens() {
		opts = append(opts, WithSpecialToken(tok, id))
	}
	t, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if chunker == nil {
		chunker = pretokenize.GPT4Split
	}
	t.chunker = chunker
	return t, nil
}

// WithChunker overrides the default whitespace-run chunker.
func (t *Tokenizer) WithChunker(c Chunker) { t.chunker = c }

// Encode splits input on registered special tokens, BPE-encodes every
// ordinary chunk independently through the configured chunker, and returns
// the concatenated token ids in order.
func (t *Tokenizer) Encode(input []byte) []int {
	var out []int
	for _, seg := range t.specials.Split(input) {
		if seg.IsSpecial {
			out = append(out, seg.ID)
			continue
		}
		for _, chunk := range t.chunker(seg.Text) {
			out = append(out, t.encodeChunk(chunk)...)
		}
	}
	return out
}

func (t *Tokenizer) encodeChunk(chunk []byte) []int {
	if len(chunk) == 0 {
		return nil
	}
	key := string(chunk)
	if ids, ok := t.cache.get(key); ok {
		return ids
	}
	ids := EncodeBytes(chunk, t.table, t.remap)
	t.cache.put(key, ids)
	return ids
}

// Decode concatenates the byte representation of every id (vocab entries
// first, then registered special tokens) and returns the raw bytes.
// Invalid UTF-8 is tolerated; the caller decides how to handle it.
func (t *Tokenizer) Decode(ids []int) []byte {
	out := make([]byte, 0, len(ids)*2)
	for _, id := range ids {
		b, ok := t.BytesOf(id)
		if !ok {
			continue
		}
		out = append(out, b...)
	}
	return out
}

// BytesOf resolves a single token id to its raw bytes, checking the vocab
// (bytes and merges) first and the special-token table second.
func (t *Tokenizer) BytesOf(id int) ([]byte, bool) {
	if b, ok := t.vocab.Lookup(id); ok {
		return b, true
	}
	if tok, ok := t.specials.Token(id); ok {
		return []byte(tok), true
	}
	return nil, false
}

// NewStreamDecoder returns a streaming decoder bound to this tokenizer's
// vocab and special tokens.
func (t *Tokenizer) NewStreamDecoder() *StreamDecoder {
	return NewStreamDecoder(t.BytesOf)
}

// Vocab exposes the tokenizer's transitively-expanded vocab table.
func (t *Tokenizer) Vocab() *Vocab { return t.vocab }

// RankTable exposes the tokenizer's merge rank table.
func (t *Tokenizer) RankTable() *RankTable { return t.table }

// SpecialTokens exposes the tokenizer's registered special-token set.
func (t *Tokenizer) SpecialTokens() *SpecialTokens { return t.specials }
