// Package tinybpe implements a byte-pair encoding tokenizer: a trainer that
// learns a merge vocabulary from a corpus of byte segments, a greedy
// encoder and a decoder that apply it, a streaming decoder that buffers
// partial UTF-8 as token ids arrive, and a byte-permutation map for
// compatibility with externally-trained vocabularies such as tiktoken's
// cl100k_base.
//
// # Overview
//
// Training repeatedly finds the most frequent adjacent token pair across a
// corpus and merges every occurrence of it into a fresh id, recording the
// pair in an ordered merge list:
//
//	trainer := tinybpe.NewTrainer(corpus)
//	if err := trainer.Train(512); err != nil {
//	    log.Fatal(err)
//	}
//	merges := trainer.Merges()
//
// Encoding and decoding use the learned merge list through a Tokenizer:
//
//	tok, err := tinybpe.New(tinybpe.WithMerges(merges))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ids := tok.Encode([]byte("hello tinybpe"))
//	text := tok.Decode(ids)
//
// # Architecture
//
//	Corpus bytes -> Arena (doubly-linked token sequence)
//	            -> PairIndex (count + locations per adjacent pair)
//	            -> Trainer.Step (top() -> ApplyMerge -> append to merge list)
//
//	Input bytes -> SpecialTokens.Split -> Chunker -> RankTable-driven
//	            greedy lowest-rank merge -> token ids
//
//	Token ids -> Vocab (transitive expansion) -> raw bytes
//	          -> StreamDecoder (buffers partial UTF-8 across Feed calls)
//
// # Byte permutation
//
// Some external vocabularies (tiktoken's cl100k_base among them) assign ids
// 0..255 to a permutation of the 256 raw byte values rather than to the
// identity mapping. WithByteRemap / WithRemapFile configure this; it is
// unrelated to the GPT-2 byte-to-unicode rune mapping used elsewhere to
// print a vocabulary as JSON-safe text.
//
// # Error handling
//
// The package defines typed errors for each failure domain: ModelFileError,
// RemapError, TokenError, ConfigError, TrainError, plus sentinel values for
// simple conditions such as ErrEmptyCorpus. The typed errors wrap an inner
// error and support errors.Unwrap.
package tinybpe
