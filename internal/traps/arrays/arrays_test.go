package arrays_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotraps/internal/catalog"
	"gotraps/internal/traps/arrays"
)

func TestAssignmentCopiesElements(t *testing.T) {
	s := arrays.Section()
	require.Len(t, s.Entries, 1)
	e := s.Entries[0]

	got := catalog.Capture(e)
	require.Equal(t, e.Output, got)

	// Mutating the copy leaves the original's element at zero.
	assert.Equal(t, "0\n100\n", got)
}
