package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"gotraps/internal/logging"
)

func TestNewRespectsLevel(t *testing.T) {
	l, err := logging.New("error", false)
	require.NoError(t, err)
	defer func() { _ = l.Sync() }()

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestVerboseWinsOverLevel(t *testing.T) {
	l, err := logging.New("error", true)
	require.NoError(t, err)
	defer func() { _ = l.Sync() }()

	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestBadLevelFails(t *testing.T) {
	_, err := logging.New("chatty", false)
	assert.Error(t, err)
}
