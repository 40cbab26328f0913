package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidgmz15/tagsense/internal/classifier"
	"github.com/davidgmz15/tagsense/internal/corpus"
	"github.com/davidgmz15/tagsense/internal/logger"
	"github.com/davidgmz15/tagsense/internal/report"
	"github.com/davidgmz15/tagsense/internal/store"
)

func NewRootCmd(db *sql.DB) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tagsense TRAIN_FILE [TEST_FILE]",
		Short: "Train a Naive Bayes tagger on labeled posts, then inspect or evaluate it",
		Long: `Trains a Naive Bayes classifier on a CSV file of labeled posts
(columns "tag" and "content", header row required).

With only TRAIN_FILE, prints the training data and the classifier
parameters. With TEST_FILE as well, predicts a tag for every test post
and reports accuracy.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, db, args)
		},
	}

	cmd.AddCommand(NewClassifyCmd())
	cmd.AddCommand(NewRunsCmd(db))
	cmd.AddCommand(NewTuiCmd())

	return cmd
}

func runRoot(cmd *cobra.Command, db *sql.DB, args []string) error {
	m, err := trainFromFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		report.WriteTrainingData(out, m)
		report.WriteParameters(out, m)
		return nil
	}

	posts, err := corpus.ReadPostsFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to load test file: %w", err)
	}

	ev, err := report.Evaluate(out, m, posts)
	if err != nil {
		return err
	}

	recordRun(cmd.Context(), db, args[0], args[1], ev)
	return nil
}

func trainFromFile(path string) (*classifier.Model, error) {
	posts, err := corpus.ReadPostsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load training file: %w", err)
	}

	m := classifier.NewModel()
	for _, p := range posts {
		m.Train(p.Label, p.Content)
	}
	return m, nil
}

// recordRun saves the evaluation outcome best-effort: a missing or failing
// run database never fails the evaluation itself.
func recordRun(ctx context.Context, db *sql.DB, trainFile, testFile string, ev report.Evaluation) {
	if db == nil {
		logger.WarnStoreOnce()
		return
	}

	err := store.NewSQLRunStore(db).SaveRun(ctx, store.EvalRun{
		TrainFile: trainFile,
		TestFile:  testFile,
		Correct:   ev.Correct,
		Total:     ev.Total,
		Accuracy:  ev.Accuracy(),
	})
	if err != nil {
		logger.Warn("failed to record evaluation run: %v", err)
	}
}

func Execute(db *sql.DB) error {
	cmd := NewRootCmd(db)
	return cmd.Execute()
}
