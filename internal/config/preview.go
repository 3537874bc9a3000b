package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvPreviewEnabled         = "DOCGEN_PREVIEW_ENABLED"
	EnvPreviewHost            = "DOCGEN_PREVIEW_HOST"
	EnvPreviewPort            = "DOCGEN_PREVIEW_PORT"
	EnvPreviewShutdownTimeout = "DOCGEN_PREVIEW_SHUTDOWN_TIMEOUT"
)

// PreviewConfig controls the local documentation preview server.
// When disabled, docgen exits after writing the document.
type PreviewConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ReadTimeout     string `toml:"read_timeout"`
	WriteTimeout    string `toml:"write_timeout"`
	ShutdownTimeout string `toml:"shutdown_timeout"`

	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
}

// Addr returns the listen address.
func (c *PreviewConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReadTimeoutDuration returns the parsed read timeout.
func (c *PreviewConfig) ReadTimeoutDuration() time.Duration {
	return c.readTimeout
}

// WriteTimeoutDuration returns the parsed write timeout.
func (c *PreviewConfig) WriteTimeoutDuration() time.Duration {
	return c.writeTimeout
}

// ShutdownTimeoutDuration returns the parsed shutdown timeout.
func (c *PreviewConfig) ShutdownTimeoutDuration() time.Duration {
	return c.shutdownTimeout
}

// Finalize applies defaults, loads environment overrides, and validates the preview configuration.
func (c *PreviewConfig) Finalize() error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *PreviewConfig) Merge(overlay *PreviewConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.ReadTimeout != "" {
		c.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
}

func (c *PreviewConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "30s"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "30s"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "10s"
	}
}

func (c *PreviewConfig) loadEnv() error {
	if v := os.Getenv(EnvPreviewEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPreviewEnabled, err)
		}
		c.Enabled = enabled
	}
	if v := os.Getenv(EnvPreviewHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvPreviewPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPreviewPort, err)
		}
		c.Port = port
	}
	if v := os.Getenv(EnvPreviewShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	return nil
}

func (c *PreviewConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	var err error
	if c.readTimeout, err = time.ParseDuration(c.ReadTimeout); err != nil {
		return fmt.Errorf("invalid read_timeout: %w", err)
	}
	if c.writeTimeout, err = time.ParseDuration(c.WriteTimeout); err != nil {
		return fmt.Errorf("invalid write_timeout: %w", err)
	}
	if c.shutdownTimeout, err = time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}
