package deferred_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotraps/internal/catalog"
	"gotraps/internal/traps/deferred"
)

func entry(t *testing.T, id string) catalog.Entry {
	t.Helper()
	for _, e := range deferred.Section().Entries {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("entry %q not found", id)
	return catalog.Entry{}
}

func TestDeferredClosureRewritesNamedResult(t *testing.T) {
	e := entry(t, "defer-named-result")
	got := catalog.Capture(e)

	require.Equal(t, e.Output, got)
	assert.Equal(t, "bar\n", got)
}

func TestDeferredArgumentsEvaluateAtDeferTime(t *testing.T) {
	e := entry(t, "defer-arg-evaluation")
	got := catalog.Capture(e)

	require.Equal(t, e.Output, got)
	// Body prints the incremented value first, the pending call still
	// prints the value captured at the defer statement.
	assert.Equal(t, "1\n0\n", got)
}
