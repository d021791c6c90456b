package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected *zapcore.Level
	}{
		{"debug", levelPtr(zapcore.DebugLevel)},
		{"info", levelPtr(zapcore.InfoLevel)},
		{"warn", levelPtr(zapcore.WarnLevel)},
		{"error", levelPtr(zapcore.ErrorLevel)},
		{"verbose", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLevel(tt.input)
			if (got == nil) != (tt.expected == nil) {
				t.Fatalf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if got != nil && *got != *tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, *got, *tt.expected)
			}
		})
	}
}

func TestNamedTagsEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)
	var l Logger = &loggerImpl{base: base, sugared: base.Sugar()}

	l.Named("assets").Info("icons resolved", Int("count", 3), Bool("ok", true))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].LoggerName != "assets" {
		t.Errorf("LoggerName = %q, want %q", entries[0].LoggerName, "assets")
	}
	fields := entries[0].ContextMap()
	if fields["count"] != int64(3) {
		t.Errorf("count field = %v, want 3", fields["count"])
	}
	if fields["ok"] != true {
		t.Errorf("ok field = %v, want true", fields["ok"])
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("ignored")
	l.Named("x").Warnf("ignored %d", 1)
	if err := l.Sync(); err != nil {
		t.Errorf("Sync() = %v", err)
	}
}

func levelPtr(l zapcore.Level) *zapcore.Level { return &l }
