// Command tinybpe is a CLI for training and running the tinybpe tokenizer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tinybpe",
	Short: "A byte-pair encoding tokenizer CLI",
	Long: `tinybpe trains and runs a byte-level BPE tokenizer.

Available commands:
  train  - Learn a merge list from a corpus
  encode - Convert text to token IDs
  decode - Convert token IDs back to text
  stream - Decode a token stream incrementally
  vocab  - Dump the expanded vocabulary for a merge file
  info   - Display model information`,
	Example: `  # Train a model from a text file
  tinybpe train --vocab-size 512 -o model corpus.txt

  # Encode text with a trained model
  tinybpe encode --model model.tinybpe "Hello, world!"

  # Decode tokens back to text
  tinybpe decode --model model.tinybpe 104 256

  # Inspect a model
  tinybpe info --model model.tinybpe`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tinybpe version %s\n", version)
		if commit != "none" {
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", buildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newStreamCmd())
	rootCmd.AddCommand(newVocabCmd())
	rootCmd.AddCommand(newInfoCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
