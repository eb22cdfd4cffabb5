// Package logging builds the zap loggers used by ontoscope.
// Logs go to stderr by default so stdout only carries the rendered table.
package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryCLI     Category = "cli"     // Argument handling, dispatch
	CategoryEngine  Category = "engine"  // Parser construction and engine calls
	CategoryInspect Category = "inspect" // Row building and rendering
)

// Config mirrors config.LoggingConfig to avoid an import cycle.
type Config struct {
	Level      string          // debug, info, warn, error
	Format     string          // console, json
	Output     string          // stderr, stdout or a file path
	Categories map[string]bool // per-category toggles, missing means enabled
}

// Logger is a zap logger that knows which categories are enabled.
type Logger struct {
	*zap.Logger
	categories map[string]bool
	runID      string
}

// New builds a Logger from cfg. Each logger carries a fresh run_id field.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case "json":
		zc = zap.NewProductionConfig()
	case "", "console", "text":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q (valid: console, json)", cfg.Format)
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	base, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	runID := uuid.NewString()
	return &Logger{
		Logger:     base.With(zap.String("run_id", runID)),
		categories: cfg.Categories,
		runID:      runID,
	}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Wrap adapts an existing zap logger, for tests.
func Wrap(l *zap.Logger) *Logger {
	return &Logger{Logger: l}
}

// RunID returns the identifier attached to every entry of this run.
func (l *Logger) RunID() string {
	return l.runID
}

// IsCategoryEnabled returns whether logging is enabled for a category.
func (l *Logger) IsCategoryEnabled(c Category) bool {
	if l.categories == nil {
		return true
	}
	enabled, exists := l.categories[string(c)]
	return !exists || enabled
}

// Get returns the named logger for a category, or a no-op logger when the
// category is disabled.
func (l *Logger) Get(c Category) *zap.Logger {
	if l == nil || !l.IsCategoryEnabled(c) {
		return zap.NewNop()
	}
	return l.Logger.Named(string(c))
}

// Timer tracks the duration of an operation.
type Timer struct {
	logger *zap.Logger
	op     string
	start  time.Time
}

// StartTimer starts timing op on logger.
func StartTimer(logger *zap.Logger, op string) *Timer {
	return &Timer{logger: logger, op: op, start: time.Now()}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Debug("operation completed", zap.String("op", t.op), zap.Duration("elapsed", elapsed))
	return elapsed
}

// StopWithThreshold logs a warning if the duration exceeds threshold.
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		t.logger.Warn("slow operation",
			zap.String("op", t.op),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", threshold))
	} else {
		t.logger.Debug("operation completed", zap.String("op", t.op), zap.Duration("elapsed", elapsed))
	}
	return elapsed
}
