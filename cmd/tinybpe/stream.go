package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	streamModel string
	streamRemap string
)

func newStreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream [token_ids...]",
		Short: "Decode a token stream incrementally",
		Long: `Feed token IDs one at a time through the streaming decoder and print
each completed chunk of text as soon as it is available.

This exercises the same UTF-8-boundary buffering that a long-running
decode-as-you-go consumer would use, instead of decoding the whole id list
at once.`,
		Example: `  tinybpe stream --model model.tinybpe 104 256
  echo "104 256" | tinybpe stream --model model.tinybpe`,
		RunE: runStream,
	}

	addModelFlags(cmd, &streamModel, &streamRemap)
	return cmd
}

func runStream(cmd *cobra.Command, args []string) error {
	tok, err := loadTokenizer(streamModel, streamRemap)
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

	dec := tok.NewStreamDecoder()
	out := cmd.OutOrStdout()
	for _, id := range ids {
		if text, ok := dec.Feed(id); ok {
			out.Write(text)
		}
	}
	return nil
}
