package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinybpe-go/tinybpe"
	"github.com/tinybpe-go/tinybpe/internal/pretokenize"
)

var (
	trainVocabSize int
	trainOutput    string
	trainContinue  string
	trainSplit     bool
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train [files...]",
		Short: "Learn a merge list from a corpus",
		Long: `Train a BPE merge list from one or more corpus files.

Each file is read whole and chunked on whitespace runs (or, with --split,
the cl100k_base-style split pattern) before training; every chunk becomes
an independent training segment.`,
		Example: `  tinybpe train --vocab-size 512 -o model corpus.txt
  tinybpe train --vocab-size 1024 --continue model.tinybpe -o model2 corpus.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTrain,
	}

	cmd.Flags().IntVar(&trainVocabSize, "vocab-size", 512, "target vocabulary size (256 + number of merges)")
	cmd.Flags().StringVarP(&trainOutput, "output", "o", "model", "output file prefix")
	cmd.Flags().StringVar(&trainContinue, "continue", "", "replay merges from this .tinybpe file before training further")
	cmd.Flags().BoolVar(&trainSplit, "split", false, "chunk the corpus with the cl100k_base-style split pattern instead of whitespace runs")

	return cmd
}

func runTrain(cmd *cobra.Command, args []string) error {
	var corpus [][]byte
	chunker := pretokenize.GPT4Split
	if !trainSplit {
		chunker = whitespaceChunks
	}
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		corpus = append(corpus, chunker(data)...)
	}

	trainer := tinybpe.NewTrainer(corpus)
	if trainContinue != "" {
		merges, err := tinybpe.LoadMergesFile(trainContinue)
		if err != nil {
			return fmt.Errorf("load continuation merges: %w", err)
		}
		if err := trainer.LoadMerges(merges); err != nil {
			return fmt.Errorf("replay continuation merges: %w", err)
		}
	}

	if err := trainer.Train(trainVocabSize); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	if err := trainer.Save(trainOutput); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "learned %d merges, wrote %s.tinybpe\n", trainer.MergesSize(), trainOutput)
	return nil
}

func whitespaceChunks(b []byte) [][]byte {
	if len(b) == 0 {
		return nil
	}
	var out [][]byte
	start := 0
	inSpace := isSpaceByte(b[0])
	for i := 1; i < len(b); i++ {
		s := isSpaceByte(b[i])
		if s != inSpace {
			out = append(out, b[start:i])
			start = i
			inSpace = s
		}
	}
	out = append(out, b[start:])
	return out
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
