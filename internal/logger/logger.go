package logger

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the logging interface used throughout the application
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	SetLevel(level zapcore.Level)
	GetLevel() zapcore.Level
	EnableHTTPLogging()
	DisableHTTPLogging()
	IsHTTPLoggingEnabled() bool
}

// ZapLogger adapts a sugared zap logger to Logger.
// Args are alternating key/value pairs, the same convention as slog.
type ZapLogger struct {
	sugar       *zap.SugaredLogger
	level       zap.AtomicLevel
	httpLogging atomic.Bool
}

// Options controls how a ZapLogger is built
type Options struct {
	Service string
	Env     string // "local" selects the console encoder
	Level   zapcore.Level
}

// New creates a development logger at info level
func New() *ZapLogger {
	return NewWithLevel(zapcore.InfoLevel)
}

// NewWithLevel creates a development logger with a specific level
func NewWithLevel(level zapcore.Level) *ZapLogger {
	l, err := Build(Options{Service: "arena", Env: "local", Level: level})
	if err != nil {
		// The development config only fails on invalid sinks; stdout is always valid.
		return NewFromCore(zapcore.NewNopCore(), zap.NewAtomicLevelAt(level))
	}
	return l
}

// Build creates a logger from Options
func Build(opts Options) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	if opts.Env == "" || opts.Env == "local" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(opts.Level)

	fields := []zap.Field{zap.String("env", envOrLocal(opts.Env))}
	if opts.Service != "" {
		fields = append(fields, zap.String("service", opts.Service))
	}

	base, err := cfg.Build(zap.Fields(fields...), zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: base.Sugar(), level: cfg.Level}, nil
}

// NewFromCore wraps an existing core, mainly for tests using zaptest/observer
func NewFromCore(core zapcore.Core, level zap.AtomicLevel) *ZapLogger {
	return &ZapLogger{sugar: zap.New(core).Sugar(), level: level}
}

func envOrLocal(env string) string {
	if env == "" {
		return "local"
	}
	return env
}

// ParseLevel converts a string log level to a zap level.
// Accepts: debug, info, warn, error (case-insensitive).
// Returns InfoLevel if the level is not recognized.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ValidLevel reports whether ParseLevel recognizes level
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// NextLevel returns the level after current in the debug → info → warn → error cycle
func NextLevel(current zapcore.Level) zapcore.Level {
	switch current {
	case zapcore.DebugLevel:
		return zapcore.InfoLevel
	case zapcore.InfoLevel:
		return zapcore.WarnLevel
	case zapcore.WarnLevel:
		return zapcore.ErrorLevel
	case zapcore.ErrorLevel:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *ZapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *ZapLogger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *ZapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *ZapLogger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// Sync flushes buffered entries
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// SetLevel changes the logging level dynamically
func (l *ZapLogger) SetLevel(level zapcore.Level) {
	l.level.SetLevel(level)
}

// GetLevel returns the current logging level
func (l *ZapLogger) GetLevel() zapcore.Level {
	return l.level.Level()
}

// EnableHTTPLogging enables HTTP request logging
func (l *ZapLogger) EnableHTTPLogging() {
	l.httpLogging.Store(true)
}

// DisableHTTPLogging disables HTTP request logging
func (l *ZapLogger) DisableHTTPLogging() {
	l.httpLogging.Store(false)
}

// IsHTTPLoggingEnabled returns whether HTTP logging is enabled
func (l *ZapLogger) IsHTTPLoggingEnabled() bool {
	return l.httpLogging.Load()
}

var _ Logger = (*ZapLogger)(nil)
