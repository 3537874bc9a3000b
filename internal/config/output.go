package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docker/go-units"
)

const (
	EnvOutputPath    = "DOCGEN_OUTPUT_PATH"
	EnvOutputFormat  = "DOCGEN_OUTPUT_FORMAT"
	EnvOutputMaxSize = "DOCGEN_OUTPUT_MAX_SIZE"
)

// Format is the serialization of the written document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// OutputConfig controls where and how the document is written.
type OutputConfig struct {
	// Path is the destination file. "{env}" is replaced by the overlay environment.
	// Default: "api/openapi.{env}.json" (or .yaml)
	Path       string `toml:"path"`
	Format     Format `toml:"format"`
	MaxSize    string `toml:"max_size"`
	maxSizeVal int64
}

// MaxSizeBytes returns the parsed size limit of the written document.
func (c *OutputConfig) MaxSizeBytes() int64 {
	return c.maxSizeVal
}

// ResolvePath returns the output path for the given environment.
func (c *OutputConfig) ResolvePath(env string) string {
	return filepath.Clean(strings.ReplaceAll(c.Path, "{env}", env))
}

// Finalize applies defaults, loads environment overrides, and validates the output configuration.
func (c *OutputConfig) Finalize() error {
	c.loadEnv()
	c.loadDefaults()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *OutputConfig) Merge(overlay *OutputConfig) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if size, err := units.FromHumanSize(overlay.MaxSize); err == nil {
		c.MaxSize = overlay.MaxSize
		c.maxSizeVal = size
	}
}

func (c *OutputConfig) loadDefaults() {
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.Path == "" {
		c.Path = "api/openapi.{env}." + string(c.Format)
	}
	if c.MaxSize == "" {
		c.MaxSize = "4MB"
	}
}

func (c *OutputConfig) loadEnv() {
	if v := os.Getenv(EnvOutputPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Format = Format(v)
	}
	if v := os.Getenv(EnvOutputMaxSize); v != "" {
		c.MaxSize = v
	}
}

func (c *OutputConfig) validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format: %s (must be json or yaml)", c.Format)
	}

	size, err := units.FromHumanSize(c.MaxSize)
	if err != nil {
		return fmt.Errorf("invalid max_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_size must be positive")
	}
	c.maxSizeVal = size

	return nil
}
