// Package logging provides the navigation core's Logger interface, a thin
// wrapper over zap.SugaredLogger in the style of go.viam.com/rdk/logging,
// trimmed of the teacher's remote net-appender/proto-conversion machinery:
// this core has no cloud collaborator to stream logs to (spec §5 — no
// persisted state, no network service boundary other than the firmware
// transport).
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface used throughout the navigation core.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) Logger
	Sync() error
}

type sugaredLogger struct {
	*zap.SugaredLogger
}

func (s *sugaredLogger) With(keysAndValues ...interface{}) Logger {
	return &sugaredLogger{s.SugaredLogger.With(keysAndValues...)}
}

// NewLogger returns a new Logger that writes Info+ logs to stdout.
func NewLogger(name string) Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stdout"}
	z, err := cfg.Build()
	if err != nil {
		// Config is static and known-good; this would only fail on a
		// misconfigured build environment.
		panic(err)
	}
	return &sugaredLogger{z.Named(name).Sugar()}
}

// NewTestLogger returns a Logger that writes to the test's own output via
// zaptest, matching go.viam.com/rdk/logging.NewTestLogger's role in tests.
func NewTestLogger(tb zaptest.TestingT) Logger {
	return &sugaredLogger{zaptest.NewLogger(tb).Sugar()}
}

// NewRotatingLogger returns a Logger that writes Info+ logs to a
// lumberjack-rotated file at path, for long-running, unattended on-robot
// deployment where a plain file would grow without bound.
func NewRotatingLogger(name, path string, maxSizeMB, maxBackups, maxAgeDays int) Logger {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)
	z := zap.New(core).Named(name)
	return &sugaredLogger{z.Sugar()}
}
