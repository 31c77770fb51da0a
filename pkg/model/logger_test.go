package model

import (
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		name  string
		level LogLevel
	}{
		{"debug", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"error", LogLevelError},
		{"", LogLevelInfo},
		{"bogus", LogLevelInfo},
	}

	for _, c := range cases {
		if got := ParseLogLevel(c.name); got != c.level {
			t.Errorf("ParseLogLevel(%q): expected %d, got %d", c.name, c.level, got)
		}
	}
}

func TestDefaultLoggerLevelEnabled(t *testing.T) {
	logger := NewDefaultLogger(LogLevelWarn)

	if logger.IsLevelEnabled(LogLevelDebug) {
		t.Error("Expected debug to be disabled at warn level")
	}
	if logger.IsLevelEnabled(LogLevelInfo) {
		t.Error("Expected info to be disabled at warn level")
	}
	if !logger.IsLevelEnabled(LogLevelWarn) {
		t.Error("Expected warn to be enabled at warn level")
	}
	if !logger.IsLevelEnabled(LogLevelError) {
		t.Error("Expected error to be enabled at warn level")
	}
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()

	// None of these should panic or produce output
	logger.Debug("debug %s", "message")
	logger.Info("info %s", "message")
	logger.Warn("warn %s", "message")
	logger.Error("error %s", "message")

	if logger.IsLevelEnabled(LogLevelError) {
		t.Error("Expected NoOpLogger to report every level disabled")
	}
}
