package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	infoModel string
	infoRemap string
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "info",
		Short:   "Display model information",
		Long:    `Display information about a trained model: vocabulary size, merge count, and registered special tokens.`,
		Example: `  tinybpe info --model model.tinybpe`,
		RunE:    runInfo,
	}

	addModelFlags(cmd, &infoModel, &infoRemap)
	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	tok, err := loadTokenizer(infoModel, infoRemap)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "tinybpe model information")
	fmt.Fprintln(out, "=========================")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Merges:          %d\n", tok.RankTable().Len())
	fmt.Fprintf(out, "Vocabulary size: %d\n", tok.Vocab().Len())
	fmt.Fprintf(out, "Byte permutation: %v\n", infoRemap != "")
	fmt.Fprintf(out, "Special tokens:  %d\n", tok.SpecialTokens().Len())
	return nil
}
