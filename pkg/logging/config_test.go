package logging_test

import (
	"testing"

	"github.com/JaimeStill/chat-api-docs/pkg/logging"
)

var testEnv = &logging.Env{
	Level:  "TEST_LOG_LEVEL",
	Format: "TEST_LOG_FORMAT",
	Source: "TEST_LOG_SOURCE",
}

func TestConfig_Merge(t *testing.T) {
	base := &logging.Config{
		Level:  logging.LevelInfo,
		Format: logging.FormatJSON,
	}

	base.Merge(&logging.Config{Level: logging.LevelDebug})

	if base.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q (should merge)", base.Level, logging.LevelDebug)
	}
	if base.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q (should not change)", base.Format, logging.FormatJSON)
	}
}

func TestConfig_Finalize_AppliesDefaults(t *testing.T) {
	cfg := &logging.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q (default)", cfg.Level, logging.LevelInfo)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want %q (default)", cfg.Format, logging.FormatText)
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &logging.Config{Level: logging.LevelWarn}
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q (env override)", cfg.Level, logging.LevelDebug)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q (env override)", cfg.Format, logging.FormatJSON)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "loud")

	cfg := &logging.Config{}
	if err := cfg.Finalize(testEnv); err == nil {
		t.Error("Finalize() succeeded with invalid level, want error")
	}
}

func TestConfig_Source(t *testing.T) {
	base := &logging.Config{}
	base.Merge(&logging.Config{Source: true})
	if !base.Source {
		t.Error("Source = false after merging true overlay")
	}

	t.Setenv("TEST_LOG_SOURCE", "false")
	if err := base.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	if base.Source {
		t.Error("Source = true, want env override to false")
	}

	t.Setenv("TEST_LOG_SOURCE", "sometimes")
	if err := (&logging.Config{}).Finalize(testEnv); err == nil {
		t.Error("Finalize() succeeded with invalid source flag, want error")
	}
}
