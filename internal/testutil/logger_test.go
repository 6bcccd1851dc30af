package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureLogger(t *testing.T) {
	logger, capture := NewCaptureLogger()
	passLogger := logger.With("pass", "abc")

	passLogger.Warn("ignoring property", "module", "ImportOrder")
	logger.Info("done")
	passLogger.Warn("ignoring property", "module", "LeftCurly")

	assert.Equal(t, 2, capture.Count(slog.LevelWarn))
	assert.Equal(t, 1, capture.Count(slog.LevelInfo))

	records := capture.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "abc", records[0].Attrs["pass"])
	assert.Equal(t, "ImportOrder", records[0].Attrs["module"])
	assert.NotContains(t, records[1].Attrs, "pass")
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	assert.NotPanics(t, func() { logger.Debug("visible with -v") })
}
