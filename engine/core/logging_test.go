package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{" warn ", WarnLevel},
		{"error", ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := ParseLogLevel("verbose"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown level err = %v", err)
	}
}

func TestSetLogLevelReachesDerivedLoggers(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetLogLevel(InfoLevel)
	t.Cleanup(func() { SetLogLevel(InfoLevel) })

	l := NewLogger("Test ", "component", "logging")
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	SetLogLevel(DebugLevel)
	l.Debug("shown")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "component=logging") {
		t.Fatalf("derived logger output = %q", buf.String())
	}
}

func TestNewLoggerSharesChildPerPrefix(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)

	a := NewLogger("Shared ", "id", "a")
	size := len(derived)
	b := NewLogger("Shared ", "id", "b")
	if len(derived) != size {
		t.Fatalf("registry grew from %d to %d for a known prefix", size, len(derived))
	}

	a.Info("from a", "n", 1)
	b.Info("from b")
	out := buf.String()
	if !strings.Contains(out, "id=a n=1") || !strings.Contains(out, "id=b") {
		t.Fatalf("instance keyvals missing: %q", out)
	}
	if strings.Contains(out, "from b id=a") {
		t.Fatalf("keyvals leaked between instances: %q", out)
	}
}
