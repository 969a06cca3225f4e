// Package verify checks documentation fidelity: every runnable entry must
// print exactly what its document claims.
package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"gotraps/internal/catalog"
)

// Result is one entry's verification outcome.
type Result struct {
	ID      string
	Skipped bool
	Reason  string // set when Skipped
	Diff    string // empty when the output matched
}

// OK reports whether the entry passed (skips count as passing).
func (r Result) OK() bool {
	return r.Skipped || r.Diff == ""
}

// Report collects results in catalog order.
type Report struct {
	Results []Result
}

// Failed returns the mismatched entries.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every entry passed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// String renders the report one line per entry, with diffs indented under
// their entry.
func (r *Report) String() string {
	var b strings.Builder
	for _, res := range r.Results {
		switch {
		case res.Skipped:
			fmt.Fprintf(&b, "skip %-32s %s\n", res.ID, res.Reason)
		case res.Diff == "":
			fmt.Fprintf(&b, "ok   %s\n", res.ID)
		default:
			fmt.Fprintf(&b, "FAIL %s\n", res.ID)
			for _, line := range strings.Split(strings.TrimSuffix(res.Diff, "\n"), "\n") {
				fmt.Fprintf(&b, "     %s\n", line)
			}
		}
	}
	return b.String()
}

// Catalog runs every entry in the registry with bounded parallelism and
// compares outputs. parallelism <= 0 means sequential.
func Catalog(ctx context.Context, reg *catalog.Registry, parallelism int) *Report {
	entries := reg.Entries()
	results := make([]Result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	if parallelism <= 0 {
		parallelism = 1
	}
	g.SetLimit(parallelism)

	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			results[i] = one(ctx, e)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; mismatches live in results

	return &Report{Results: results}
}

func one(ctx context.Context, e catalog.Entry) Result {
	if err := ctx.Err(); err != nil {
		return Result{ID: e.ID, Skipped: true, Reason: err.Error()}
	}
	if !e.Runnable() {
		return Result{ID: e.ID, Skipped: true, Reason: "terminates the process; documented only"}
	}
	got := catalog.Capture(e)
	return Result{ID: e.ID, Diff: cmp.Diff(e.Output, got)}
}
