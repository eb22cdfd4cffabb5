package logging

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ontoscope.log")
	logger, err := New(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	_, err = uuid.Parse(logger.RunID())
	assert.NoError(t, err, "run id should be a uuid")
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := &Logger{
		Logger:     zap.New(core),
		categories: map[string]bool{"engine": false, "cli": true},
	}

	assert.False(t, logger.IsCategoryEnabled(CategoryEngine))
	assert.True(t, logger.IsCategoryEnabled(CategoryCLI))
	assert.True(t, logger.IsCategoryEnabled(CategoryInspect), "missing categories default to enabled")

	logger.Get(CategoryEngine).Info("dropped")
	logger.Get(CategoryCLI).Info("kept")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, "cli", entry.LoggerName)
}

func TestNilLoggerGetIsNop(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() { logger.Get(CategoryCLI).Info("nothing") })
}

func TestTimer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	StartTimer(l, "parse").Stop()
	StartTimer(l, "slow").StopWithThreshold(-time.Second)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	assert.Equal(t, "parse", logs.All()[0].ContextMap()["op"])
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}
