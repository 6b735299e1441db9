// Package obslog is the package-internal structured logger for strmetric:
// one *zap.Logger built from a small Config, with an optional rotating
// file sink. This is a deliberately trimmed version of the teacher's
// multi-sink/middleware/policy logging package (gofulmen's logging/
// package) — this library has no requests, no PII, and no per-sink policy
// enforcement to carry, so only the level + sink construction survives
// (see DESIGN.md).
package obslog

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config configures the package-level logger built by Configure.
type Config struct {
	// Level is one of "debug", "info", "warn", "error"; default "info".
	Level string
	// FilePath, if non-empty, adds a rotating file sink (via lumberjack)
	// alongside stderr.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// SetLogger installs l as the package-wide logger directly, bypassing
// Config construction. Used by callers that already have a *zap.Logger
// they want strmetric to log through.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Configure builds a logger from cfg and installs it. The optional file sink
// is opened by lumberjack on first write, so an unusable FilePath is not
// reported here; the returned error is always nil.
func Configure(cfg Config) error {
	l, err := build(cfg)
	if err != nil {
		return fmt.Errorf("obslog: %w", err)
	}
	SetLogger(l)
	return nil
}

// L returns the currently installed logger (a no-op logger until Configure
// or SetLogger has been called).
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func build(cfg Config) (*zap.Logger, error) {
	level := parseLevel(cfg.Level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level),
	}
	if cfg.FilePath != "" {
		lumber := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(lumber), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.Fields(zap.String("component", "strmetric"))), nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
