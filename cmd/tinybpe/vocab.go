package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinybpe-go/tinybpe"
)

var (
	vocabModel  string
	vocabRemap  string
	vocabOutput string
)

func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Dump the expanded vocabulary for a model",
		Long:  `Write the transitively-expanded byte vocabulary of a model to a .vocab file.`,
		Example: `  tinybpe vocab --model model.tinybpe -o model
  # writes model.vocab`,
		RunE: runVocab,
	}

	addModelFlags(cmd, &vocabModel, &vocabRemap)
	cmd.Flags().StringVarP(&vocabOutput, "output", "o", "model", "output file prefix")
	return cmd
}

func runVocab(cmd *cobra.Command, args []string) error {
	tok, err := loadTokenizer(vocabModel, vocabRemap)
	if err != nil {
		return err
	}

	path := vocabOutput + ".vocab"
	if err := tinybpe.SaveVocab(path, tok.Vocab()); err != nil {
		return fmt.Errorf("write vocab: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
