package cmd_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidgmz15/tagsense/internal/store"
)

func TestRunsEmpty(t *testing.T) {
	db := openTestDB(t)

	out, err := runCommand(t, db, "runs")
	require.NoError(t, err)
	require.Equal(t, "no evaluation runs recorded yet\n", out)
}

func TestRunsListsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	s := store.NewSQLRunStore(db)

	base := time.Unix(1700000000, 0)
	require.NoError(t, s.SaveRun(context.Background(), store.EvalRun{
		ID: "old", TrainFile: "t1.csv", TestFile: "e1.csv",
		Correct: 1, Total: 2, Accuracy: 0.5, CreatedAt: base,
	}))
	require.NoError(t, s.SaveRun(context.Background(), store.EvalRun{
		ID: "new", TrainFile: "t2.csv", TestFile: "e2.csv",
		Correct: 2, Total: 2, Accuracy: 1.0, CreatedAt: base.Add(time.Hour),
	}))

	out, err := runCommand(t, db, "runs", "-n", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "t2.csv -> e2.csv  2/2 (100.0%)")
}

func TestRunsWithoutDB(t *testing.T) {
	_, err := runCommand(t, nil, "runs")
	require.Error(t, err)
	require.Contains(t, err.Error(), "run database is unavailable")
}
