package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "info"

// Logger printf-style logger on top of zap.
// Every layer of the service logs through the Info/Warn/Error methods.
type Logger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// New creates a JSON logger that writes to stdout and, if filePath is set, to that file as well.
// Unknown levels fall back to info.
func New(filePath, level string) (*Logger, error) {
	atomicLevel := zap.NewAtomicLevel()
	if err := atomicLevel.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil || level == "" {
		_ = atomicLevel.UnmarshalText([]byte(defaultLevel))
	}

	outputs := []string{"stdout"}
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %s: %w", filePath, err)
		}
		_ = f.Close()
		outputs = append(outputs, filePath)
	}

	cfg := zap.Config{
		Level:    atomicLevel,
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "message",
			TimeKey:    "timestamp",
			LevelKey:   "severity",
			EncodeTime: zapcore.RFC3339NanoTimeEncoder,
			EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(strings.ToUpper(l.String()))
			},
			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}

	return &Logger{base: base, sugar: base.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	base := zap.NewNop()
	return &Logger{base: base, sugar: base.Sugar()}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal logs the message and exits the process
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Zap exposes the underlying structured logger
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// Close flushes buffered entries
func (l *Logger) Close() error {
	err := l.base.Sync()
	if err == nil {
		return nil
	}
	// syncing stdout fails on pipes and terminals
	msg := err.Error()
	for _, ignored := range []string{"invalid argument", "inappropriate ioctl", "bad file descriptor"} {
		if strings.Contains(msg, ignored) {
			return nil
		}
	}
	return err
}
