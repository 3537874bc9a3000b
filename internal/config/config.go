// Package config provides docgen configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/chat-api-docs/pkg/logging"
	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvDocgenEnv specifies the environment name for configuration overlays.
	EnvDocgenEnv = "DOCGEN_ENV"
)

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "DOCGEN_OPENAPI_TITLE",
	Description: "DOCGEN_OPENAPI_DESCRIPTION",
	Version:     "DOCGEN_OPENAPI_VERSION",
	Servers:     "DOCGEN_OPENAPI_SERVERS",
}

var loggingEnv = &logging.Env{
	Level:  "DOCGEN_LOG_LEVEL",
	Format: "DOCGEN_LOG_FORMAT",
	Source: "DOCGEN_LOG_SOURCE",
}

// Config represents the root docgen configuration.
type Config struct {
	OpenAPI openapi.Config `toml:"openapi"`
	Logging logging.Config `toml:"logging"`
	Output  OutputConfig   `toml:"output"`
	Preview PreviewConfig  `toml:"preview"`
}

// Env returns the overlay environment name, or "local" when unset.
func (c *Config) Env() string {
	if env := os.Getenv(EnvDocgenEnv); env != "" {
		return env
	}
	return "local"
}

// Load reads the base configuration file and applies any environment-specific
// overlay. A missing base file yields an empty configuration so defaults apply.
func Load() (*Config, error) {
	cfg, err := load(BaseConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Output.Finalize(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.Preview.Finalize(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	c.OpenAPI.Merge(&overlay.OpenAPI)
	c.Logging.Merge(&overlay.Logging)
	c.Output.Merge(&overlay.Output)
	c.Preview.Merge(&overlay.Preview)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvDocgenEnv); env != "" {
		overlayPath := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(overlayPath); err == nil {
			return overlayPath
		}
	}
	return ""
}
