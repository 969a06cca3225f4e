package verify_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gotraps/internal/catalog"
	"gotraps/internal/traps"
	"gotraps/internal/verify"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFullCatalogVerifies(t *testing.T) {
	report := verify.Catalog(context.Background(), traps.Catalog(), 4)

	require.True(t, report.OK(), report.String())
	assert.Len(t, report.Results, traps.Catalog().Len())

	var skipped int
	for _, res := range report.Results {
		if res.Skipped {
			skipped++
			assert.Contains(t, res.Reason, "terminates the process")
		}
	}
	// The two crash demonstrations are documented, never executed.
	assert.Equal(t, 2, skipped)
}

func TestMismatchIsReportedWithDiff(t *testing.T) {
	lying, err := catalog.New(catalog.Section{
		ID:    "s",
		Title: "S",
		Entries: []catalog.Entry{{
			ID:     "liar",
			Title:  "Liar",
			Doc:    "claims the wrong output",
			Code:   "package main\n",
			Output: "claimed\n",
			Run:    func(w io.Writer) { _, _ = io.WriteString(w, "actual\n") },
		}},
	})
	require.NoError(t, err)

	report := verify.Catalog(context.Background(), lying, 1)

	require.False(t, report.OK())
	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "liar", failed[0].ID)
	assert.NotEmpty(t, failed[0].Diff)
	assert.Contains(t, report.String(), "FAIL liar")
}

func TestCancelledContextSkipsEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := verify.Catalog(ctx, traps.Catalog(), 2)

	assert.True(t, report.OK())
	for _, res := range report.Results {
		assert.True(t, res.Skipped, res.ID)
	}
}

func TestSequentialAndParallelAgree(t *testing.T) {
	seq := verify.Catalog(context.Background(), traps.Catalog(), 0)
	par := verify.Catalog(context.Background(), traps.Catalog(), 8)

	assert.Equal(t, seq.String(), par.String())
}
