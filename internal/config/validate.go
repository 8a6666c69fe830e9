package config

import (
	"errors"
	"fmt"
	"net"

	"manna/internal/catalog"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGemini(); err != nil {
		return err
	}
	if err := c.validateGeneration(); err != nil {
		return err
	}
	if err := c.validateBind(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGemini() error {
	if c.Gemini.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/manna/config.toml"
		}
		return fmt.Errorf("gemini.api_key is required. Set GEMINI_API_KEY env var or edit %s (create with 'manna config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateGeneration() error {
	if c.Generation.Attempts < 1 {
		return errors.New("generation.attempts must be at least 1")
	}
	if c.Generation.BackoffCapSeconds < c.Generation.BackoffBaseSeconds {
		return errors.New("generation.backoff_cap_seconds must not be below generation.backoff_base_seconds")
	}
	if !catalog.Supported(c.Generation.DefaultLanguage) {
		return fmt.Errorf("generation.default_language %q has no verse catalog", c.Generation.DefaultLanguage)
	}
	return nil
}

func (c *Config) validateBind() error {
	if _, _, err := net.SplitHostPort(c.Paths.APIBind); err != nil {
		return fmt.Errorf("paths.api_bind %q: %w", c.Paths.APIBind, err)
	}
	return nil
}
