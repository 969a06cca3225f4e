package panics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotraps/internal/catalog"
	"gotraps/internal/traps/panics"
)

func entry(t *testing.T, id string) catalog.Entry {
	t.Helper()
	for _, e := range panics.Section().Entries {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("entry %q not found", id)
	return catalog.Entry{}
}

func TestRecoverOnlyWorksInDeferredFunction(t *testing.T) {
	e := entry(t, "recover-placement")
	got := catalog.Capture(e)

	require.Equal(t, e.Output, got)
	assert.Equal(t, "recovered: runtime error: integer divide by zero\n<nil>\n", got)
}

func TestGoroutinePanicEntryIsNeverRunInProcess(t *testing.T) {
	e := entry(t, "goroutine-panic")

	assert.True(t, e.Crashes)
	assert.False(t, e.Runnable())
	assert.Nil(t, e.Run)
	assert.Empty(t, e.Output)
	// The shown program really does panic in the child.
	assert.Contains(t, e.Code, `panic("boom")`)
}
