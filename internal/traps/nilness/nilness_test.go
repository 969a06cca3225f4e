package nilness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotraps/internal/catalog"
	"gotraps/internal/traps/nilness"
)

func TestTypedNilInErrorInterface(t *testing.T) {
	s := nilness.Section()
	require.Len(t, s.Entries, 1)
	e := s.Entries[0]

	got := catalog.Capture(e)
	require.Equal(t, e.Output, got)

	// Pointer nil, interface not nil, asserted pointer nil again.
	assert.Equal(t, "true\nfalse\ntrue\n", got)
}
