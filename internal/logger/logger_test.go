package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*ZapLogger, *observer.ObservedLogs) {
	lvl := zap.NewAtomicLevelAt(level)
	core, logs := observer.New(lvl)
	return NewFromCore(core, lvl), logs
}

func TestNew_DefaultsToInfoLevel(t *testing.T) {
	log := New()

	if log == nil {
		t.Fatal("expected logger to be created")
	}
	if log.GetLevel() != zapcore.InfoLevel {
		t.Errorf("expected info level, got %v", log.GetLevel())
	}
}

func TestBuild_ProductionEnv(t *testing.T) {
	log, err := Build(Options{Service: "arena", Env: "prod", Level: zapcore.WarnLevel})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if log.GetLevel() != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %v", log.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"WARNING", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNextLevel_Cycles(t *testing.T) {
	level := zapcore.DebugLevel
	want := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel, zapcore.DebugLevel}
	for _, w := range want {
		level = NextLevel(level)
		if level != w {
			t.Fatalf("expected %v, got %v", w, level)
		}
	}
	if NextLevel(zapcore.FatalLevel) != zapcore.InfoLevel {
		t.Error("unknown levels should reset to info")
	}
}

func TestZapLogger_RespectsLevel(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	log.Debug("hidden")
	log.Info("shown", "competition_id", 7)
	log.Warn("warned")
	log.Error("failed", "error", "boom")

	if logs.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", logs.Len())
	}
	first := logs.All()[0]
	if first.Message != "shown" {
		t.Errorf("expected message 'shown', got %q", first.Message)
	}
	if got := first.ContextMap()["competition_id"]; got != int64(7) {
		t.Errorf("expected competition_id field 7, got %v", got)
	}
}

func TestZapLogger_SetLevel(t *testing.T) {
	log, logs := newObserved(zapcore.ErrorLevel)

	log.Info("dropped")
	log.SetLevel(zapcore.DebugLevel)
	log.Debug("kept")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if log.GetLevel() != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %v", log.GetLevel())
	}
}

func TestZapLogger_HTTPLoggingToggle(t *testing.T) {
	log := New()

	if log.IsHTTPLoggingEnabled() {
		t.Error("expected HTTP logging disabled by default")
	}
	log.EnableHTTPLogging()
	if !log.IsHTTPLoggingEnabled() {
		t.Error("expected HTTP logging enabled")
	}
	log.DisableHTTPLogging()
	if log.IsHTTPLoggingEnabled() {
		t.Error("expected HTTP logging disabled")
	}
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "warn", "Warning", "error"} {
		if !ValidLevel(level) {
			t.Errorf("expected %q to be valid", level)
		}
	}
	for _, level := range []string{"", "trace", "fatal"} {
		if ValidLevel(level) {
			t.Errorf("expected %q to be invalid", level)
		}
	}
}
