package tinybpe

// Option is a functional option for configuring a Tokenizer.
type Option func(*tokenizerConfig) error

type tokenizerConfig struct {
	merges        []Merge
	remap         *ByteRemap
	specialTokens map[string]int
	cacheSize     int
	cacheSizeSet  bool
	modelPath     string
	remapPath     string
}

// WithMerges supplies an already-loaded merge list directly, bypassing
// WithModelFile.
func WithMerges(merges []Merge) Option {
	return func(cfg *tokenizerConfig) error {
		if len(merges) == 0 {
			return NewConfigError("merges", "empty", ErrInvalidToken)
		}
		cfg.merges = merges
		return nil
	}
}

// WithModelFile loads the merge list from a .tinybpe/.tinymodel file.
func WithModelFile(path string) Option {
	return func(cfg *tokenizerConfig) error {
		if path == "" {
			return NewConfigError("model_file", path, ErrInvalidToken)
		}
		cfg.modelPath = path
		return nil
	}
}

// WithByteRemap supplies a byte-permutation map directly.
func WithByteRemap(remap *ByteRemap) Option {
	return func(cfg *tokenizerConfig) error {
		if remap == nil {
			return NewConfigError("byte_remap", nil, ErrInvalidToken)
		}
		cfg.remap = remap
		return nil
	}
}

// WithRemapFile loads a byte-permutation map from a .remaps/.map file.
func WithRemapFile(path string) Option {
	return func(cfg *tokenizerConfig) error {
		if path == "" {
			return NewConfigError("remap_file", path, ErrInvalidToken)
		}
		cfg.remapPath = path
		return nil
	}
}

// WithSpecialToken registers one special token string to a reserved id,
// disjoint from the merge id range (FirstMergeID + len(merges)..).
func WithSpecialToken(token string, id int) Option {
	return func(cfg *tokenizerConfig) error {
		if token == "" {
			return NewConfigError("special_token", token, ErrInvalidToken)
		}
		if cfg.specialTokens == nil {
			cfg.specialTokens = make(map[string]int)
		}
		for existingTok, existingID := range cfg.specialTokens {
			if existingID == id && existingTok != token {
				return NewConfigError("special_token", token, NewTokenIDError("duplicate id", id, ErrInvalidToken))
			}
		}
		cfg.specialTokens[token] = id
		return nil
	}
}

// WithCacheSize bounds the encode-result cache to size entries; 0 disables
// caching entirely. Default, when this option is never given, is
// DefaultCacheSize.
func WithCacheSize(size int) Option {
	return func(cfg *tokenizerConfig) error {
		if size < 0 {
			return NewConfigError("cache_size", size, ErrInvalidToken)
		}
		cfg.cacheSize = size
		cfg.cacheSizeSet = true
		return nil
	}
}
