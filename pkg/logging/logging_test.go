package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetupLevels(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	require.NoError(t, Setup(false, "consolidate", "test"))
	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zap.WarnLevel))

	require.NoError(t, Setup(true, "consolidate", "test"))
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))
	assert.Same(t, Logger, zap.L())
}
