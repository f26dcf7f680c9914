// Package logger wraps zap behind a small wrapper shared by every
// component. New returns a no-op logger so packages stay quiet until
// Init is called with the configured level.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerI interface {
	Info(msg string, keysAndValues ...interface{})
	Init(lvl string) error
}

type Logger struct {
	Log *zap.Logger
}

func New() *Logger {
	return &Logger{
		Log: zap.NewNop(),
	}
}

// Init replaces the no-op core with a JSON production logger at the
// given level. Level names follow zap ("debug", "info", "warn", ...).
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl
	return nil
}

// Named returns a child logger tagged with the component name, so
// storage and transport lines are distinguishable in aggregated output.
func (l *Logger) Named(component string) *zap.Logger {
	return l.Log.Named(component)
}

// Sync flushes buffered entries. Meant to be deferred from main.
func (l *Logger) Sync() {
	_ = l.Log.Sync()
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	sugar := l.Log.Sugar()

	sugar.Infow(msg, keysAndValues...)
}
