package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davidgmz15/tagsense/internal/classifier"
)

func NewClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify TRAIN_FILE [TEXT...]",
		Short: "Classify ad-hoc texts against a freshly trained model",
		Long: `Trains on TRAIN_FILE and predicts a tag for every TEXT argument.
With no TEXT arguments, texts are read from stdin, one per line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := trainFromFile(args[0])
			if err != nil {
				return err
			}

			texts := args[1:]
			if len(texts) == 0 {
				texts, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read texts from stdin: %w", err)
				}
			}

			preds, err := classifier.PredictAll(cmd.Context(), m, texts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, p := range preds {
				fmt.Fprintf(w, "%s\t%.3g\t%s\n", p.Label, p.Score, texts[i])
			}
			return nil
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
