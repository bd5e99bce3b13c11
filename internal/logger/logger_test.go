package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/feedlattice/classify/internal/ladder"
	"github.com/feedlattice/classify/internal/tracing"
)

func TestNew(t *testing.T) {
	cfg := DefaultConfig()
	l := New(cfg)

	if l == nil {
		t.Fatal("New() returned nil")
	}
}

func TestNewDefault(t *testing.T) {
	l := NewDefault()

	if l == nil {
		t.Fatal("NewDefault() returned nil")
	}
}

func TestNewJSON(t *testing.T) {
	l := NewJSON(InfoLevel)

	if l == nil {
		t.Fatal("NewJSON() returned nil")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != InfoLevel {
		t.Errorf("Level = %v, want InfoLevel", cfg.Level)
	}
	if !cfg.Pretty {
		t.Error("Pretty should be true by default")
	}
	if cfg.Output == nil {
		t.Error("Output should not be nil")
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithComponent("test-component")
	l.Info("test message")

	output := buf.String()
	if !strings.Contains(output, "test-component") {
		t.Errorf("Output should contain component: %s", output)
	}
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithField("custom_field", "custom_value")
	l.Info("test message")

	output := buf.String()
	if !strings.Contains(output, "custom_field") {
		t.Errorf("Output should contain custom_field: %s", output)
	}
	if !strings.Contains(output, "custom_value") {
		t.Errorf("Output should contain custom_value: %s", output)
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithFields(map[string]interface{}{
		"field1": "value1",
		"field2": 123,
	})
	l.Info("test message")

	output := buf.String()
	if !strings.Contains(output, "field1") {
		t.Errorf("Output should contain field1: %s", output)
	}
	if !strings.Contains(output, "field2") {
		t.Errorf("Output should contain field2: %s", output)
	}
}

func TestLogger_WithChannel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithChannel("example-channel")
	l.Info("classifying")

	output := buf.String()
	if !strings.Contains(output, "example-channel") {
		t.Errorf("Output should contain channel: %s", output)
	}
}

func TestLogger_WithRung(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithRung(ladder.RungLink)
	l.Info("at rung")

	output := buf.String()
	if !strings.Contains(output, "link") {
		t.Errorf("Output should contain rung field: %s", output)
	}
}

func TestLogger_WithItemCount(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithItemCount(42)
	l.Info("processing")

	output := buf.String()
	if !strings.Contains(output, "42") {
		t.Errorf("Output should contain item_count: %s", output)
	}
}

func TestLogger_WithIdentifierHash(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithIdentifierHash("deadbeef")
	l.Info("identifier context")

	output := buf.String()
	if !strings.Contains(output, "deadbeef") {
		t.Errorf("Output should contain identifier_hash: %s", output)
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithError(nil) // Even nil error should work
	l.Info("error context")
}

func TestLogger_WithDuration(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithDuration(500 * time.Millisecond)
	l.Info("completed")

	output := buf.String()
	if !strings.Contains(output, "duration") {
		t.Errorf("Output should contain duration: %s", output)
	}
}

func TestLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DebugLevel, Pretty: false, Output: &buf})

	l.Debug("debug message")

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Output should contain message: %s", output)
	}
	if !strings.Contains(output, "debug") {
		t.Errorf("Output should contain level debug: %s", output)
	}
}

func TestLogger_Debugf(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DebugLevel, Pretty: false, Output: &buf})

	l.Debugf("debug %s %d", "test", 123)

	output := buf.String()
	if !strings.Contains(output, "debug test 123") {
		t.Errorf("Output should contain formatted message: %s", output)
	}
}

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l.Info("info message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Output should contain message: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: WarnLevel, Pretty: false, Output: &buf})

	l.Warn("warning message")

	output := buf.String()
	if !strings.Contains(output, "warning message") {
		t.Errorf("Output should contain message: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: ErrorLevel, Pretty: false, Output: &buf})

	l.Error("error message")

	output := buf.String()
	if !strings.Contains(output, "error message") {
		t.Errorf("Output should contain message: %s", output)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: WarnLevel, Pretty: false, Output: &buf})

	l.Debug("debug")
	l.Info("info")
	l.Warn("warning")
	l.Error("error")

	output := buf.String()

	if strings.Contains(output, "debug") {
		t.Error("Debug should be filtered")
	}
	if strings.Contains(output, `"info"`) {
		t.Error("Info should be filtered")
	}
	if !strings.Contains(output, "warning") {
		t.Error("Warning should be present")
	}
	if !strings.Contains(output, "error") {
		t.Error("Error should be present")
	}
}

func TestLogger_ClassifyEvent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l.ClassifyEvent("example-channel", ladder.RungGuid, 3, 1)

	output := buf.String()
	if !strings.Contains(output, "example-channel") {
		t.Errorf("Output should contain channel: %s", output)
	}
	if !strings.Contains(output, "guid") {
		t.Errorf("Output should contain rung: %s", output)
	}
}

func TestLogger_StatsEvent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l.StatsEvent(map[string]interface{}{
		"inserts": 10,
		"updates": 2,
	})

	output := buf.String()
	if !strings.Contains(output, "inserts") {
		t.Errorf("Output should contain inserts: %s", output)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DebugLevel, Pretty: false, Output: &buf})

	l.Debug("should appear")
	l.SetLevel(ErrorLevel)
	l.Debug("should not appear")

	output := buf.String()
	if !strings.Contains(output, "should appear") {
		t.Error("First debug should appear")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("ParseLevel() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlobalLogger(t *testing.T) {
	l := Global()
	if l == nil {
		t.Fatal("Global() returned nil")
	}

	var buf bytes.Buffer
	newLogger := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})
	SetGlobal(newLogger)

	Global().Info("global test")

	output := buf.String()
	if !strings.Contains(output, "global test") {
		t.Errorf("Output should contain message: %s", output)
	}

	SetGlobal(NewDefault())
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l.Info("json test")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Errorf("Output is not valid JSON: %v", err)
	}

	if data["message"] != "json test" {
		t.Errorf("Message = %v, want 'json test'", data["message"])
	}
	if data["level"] != "info" {
		t.Errorf("Level = %v, want 'info'", data["level"])
	}
}

func TestLogger_ChainedContexts(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: InfoLevel, Pretty: false, Output: &buf})

	l = l.WithComponent("classify").
		WithChannel("example-channel").
		WithRung(ladder.RungLink)

	l.Info("chained context")

	output := buf.String()
	if !strings.Contains(output, "classify") {
		t.Errorf("Output should contain component: %s", output)
	}
	if !strings.Contains(output, "example-channel") {
		t.Errorf("Output should contain channel: %s", output)
	}
}

func TestTraceSink(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DebugLevel, Pretty: false, Output: &buf})

	sink := TraceSink(l)
	sink(tracing.DepthResolved{Depth: ladder.RungLink, Changed: true})
	sink(tracing.CandidatesFound{Phase: "prematch", Count: 3})
	sink(tracing.MatchNone{Phase: "classify"})
	sink(tracing.ClassifyInsert{IdentifierHash: "abc123"})

	output := buf.String()
	for _, want := range []string{"identityDepth.resolved", "candidates.found", "match.none", "classify.insert", "abc123"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q: %s", want, output)
		}
	}
}
