package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	decModel string
	decRemap string
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [token_ids...]",
		Short: "Decode token IDs to text",
		Long: `Decode token IDs back to text using a trained model.

Token IDs can be given as arguments or piped from stdin, separated by any
whitespace.`,
		Example: `  tinybpe decode --model model.tinybpe 104 256
  echo "104 256" | tinybpe decode --model model.tinybpe`,
		RunE: runDecode,
	}

	addModelFlags(cmd, &decModel, &decRemap)
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	tok, err := loadTokenizer(decModel, decRemap)
	if err != nil {
		return err
	}

	var ids []int
	if len(args) > 0 {
		for _, a := range args {
			id, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("invalid token id %q: %w", a, err)
			}
			ids = append(ids, id)
		}
	} else {
		sc := bufio.NewScanner(os.Stdin)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			id, err := strconv.Atoi(sc.Text())
			if err != nil {
				return fmt.Errorf("invalid token id %q: %w", sc.Text(), err)
			}
			ids = append(ids, id)
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	if len(ids) == 0 {
		return fmt.Errorf("no token ids provided")
	}

	cmd.OutOrStdout().Write(tok.Decode(ids))
	return nil
}
