package utils

import "testing"

func TestLoggerDebugGatedByEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	if NewLogger().debugEnabled {
		t.Error("debug should be disabled by default")
	}

	t.Setenv("LOG_LEVEL", "debug")
	if !NewLogger().debugEnabled {
		t.Error("LOG_LEVEL=debug should enable debug output")
	}

	t.Setenv("LOG_LEVEL", "DEBUG")
	if !NewLogger().debugEnabled {
		t.Error("LOG_LEVEL matching should be case-insensitive")
	}
}
