package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/chat-api-docs/pkg/logging"
)

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level    logging.Level
		expected slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("unknown"), slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.expected {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLevel_Validate(t *testing.T) {
	for _, level := range []logging.Level{logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError} {
		if err := level.Validate(); err != nil {
			t.Errorf("Validate() failed for valid level %q: %v", level, err)
		}
	}

	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("Validate() succeeded for invalid level, want error")
	}
}

func TestFormat_Validate(t *testing.T) {
	for _, format := range []logging.Format{logging.FormatText, logging.FormatJSON} {
		if err := format.Validate(); err != nil {
			t.Errorf("Validate() failed for valid format %q: %v", format, err)
		}
	}

	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("Validate() succeeded for invalid format, want error")
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

	logger.Info("document built", "paths", 13)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "document built" {
		t.Errorf("msg = %v, want %q", record["msg"], "document built")
	}
	if record["paths"] != float64(13) {
		t.Errorf("paths = %v, want 13", record["paths"])
	}
}

func TestNew_TextFormatFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("schema registered")
	logger.Warn("tag redeclared", "tag", "Server Information")

	out := buf.String()
	if strings.Contains(out, "schema registered") {
		t.Errorf("info record written below warn level:\n%s", out)
	}
	if !strings.Contains(out, `msg="tag redeclared"`) {
		t.Errorf("warn record missing:\n%s", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("Discard() logger is enabled")
	}
}

func TestNew_AddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText, Source: true}, &buf)

	logger.Info("schema registered")

	if !strings.Contains(buf.String(), "source=") || !strings.Contains(buf.String(), "logging_test.go") {
		t.Errorf("record missing source attribute:\n%s", buf.String())
	}
}
