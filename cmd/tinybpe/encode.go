package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	encModel   string
	encRemap   string
	encOutput  string
	encCount   bool
	encMetrics bool
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text to token IDs",
		Long: `Encode text into token IDs using a trained model.

If no text is provided as an argument, reads from stdin. Output format can
be: space (default), newline, or json.`,
		Example: `  tinybpe encode --model model.tinybpe "Hello, world!"
  echo "Hello" | tinybpe encode --model model.tinybpe --output json`,
		RunE: runEncode,
	}

	addModelFlags(cmd, &encModel, &encRemap)
	cmd.Flags().StringVarP(&encOutput, "output", "o", "space", "output format: space, newline, json")
	cmd.Flags().BoolVar(&encCount, "count", false, "show token count with output")
	cmd.Flags().BoolVar(&encMetrics, "metrics", false, "show performance metrics")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	var start time.Time
	if encMetrics {
		start = time.Now()
	}

	tok, err := loadTokenizer(encModel, encRemap)
	if err != nil {
		return err
	}

	var input []byte
	var inputBytes int
	if len(args) > 0 {
		text := strings.Join(args, " ")
		input = []byte(text)
		inputBytes = len(input)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = data
		inputBytes = len(data)
	}

	tokens := tok.Encode(input)

	var elapsed time.Duration
	if encMetrics {
		elapsed = time.Since(start)
	}

	out := cmd.OutOrStdout()
	switch encOutput {
	case "json":
		payload := map[string]any{"tokens": tokens}
		if encCount {
			payload["count"] = len(tokens)
		}
		if encMetrics {
			payload["metrics"] = map[string]any{
				"latency":     formatLatency(elapsed),
				"tps":         calculateTPS(len(tokens), elapsed),
				"input_bytes": inputBytes,
			}
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "newline":
		if encCount {
			fmt.Fprintf(out, "count: %d\n", len(tokens))
		}
		for _, t := range tokens {
			fmt.Fprintln(out, t)
		}
	default: // space
		if encCount {
			fmt.Fprintf(out, "count: %d\ntokens: ", len(tokens))
		}
		for i, t := range tokens {
			if i > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprint(out, t)
		}
		fmt.Fprintln(out)
	}

	if encMetrics {
		fmt.Fprintf(out, "metrics:\n  latency: %s\n  tps: %d\n  input_bytes: %d\n",
			formatLatency(elapsed), calculateTPS(len(tokens), elapsed), inputBytes)
	}
	return nil
}
