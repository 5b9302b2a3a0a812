package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tinybpe-go/tinybpe"
)

func addModelFlags(cmd *cobra.Command, modelPath, remapPath *string) {
	cmd.Flags().StringVar(modelPath, "model", "", "path to a .tinybpe/.tinymodel merge file (required)")
	cmd.Flags().StringVar(remapPath, "remap", "", "path to a .remaps/.map byte-permutation file")
	cmd.MarkFlagRequired("model")
}

func loadTokenizer(modelPath, remapPath string) (*tinybpe.Tokenizer, error) {
	opts := []tinybpe.Option{tinybpe.WithModelFile(modelPath)}
	if remapPath != "" {
		opts = append(opts, tinybpe.WithRemapFile(remapPath))
	}
	t, err := tinybpe.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}
	return t, nil
}

func formatLatency(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

func calculateTPS(tokenCount int, d time.Duration) int {
	if d == 0 {
		return 0
	}
	return int(float64(tokenCount) / d.Seconds())
}
