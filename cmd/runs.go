package cmd

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidgmz15/tagsense/internal/store"
)

func NewRunsCmd(db *sql.DB) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded evaluation runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if db == nil {
				return errors.New("run database is unavailable")
			}

			runs, err := store.NewSQLRunStore(db).ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(w, "no evaluation runs recorded yet")
				return nil
			}

			for _, r := range runs {
				fmt.Fprintf(w, "%s  %s -> %s  %d/%d (%.1f%%)\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.TrainFile, r.TestFile,
					r.Correct, r.Total, r.Accuracy*100)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum runs to show")

	return cmd
}
