package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGemini()
	c.normalizeGeneration()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.DataDir, "logs")
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	// State files resolve relative to the data directory unless given as
	// absolute paths.
	if strings.TrimSpace(c.Paths.ExclusionFile) == "" {
		c.Paths.ExclusionFile = defaultExclusionFile
	}
	if !filepath.IsAbs(c.Paths.ExclusionFile) {
		c.Paths.ExclusionFile = filepath.Join(c.Paths.DataDir, c.Paths.ExclusionFile)
	}
	if strings.TrimSpace(c.Paths.CheckpointFile) == "" {
		c.Paths.CheckpointFile = defaultCheckpointFile
	}
	if !filepath.IsAbs(c.Paths.CheckpointFile) {
		c.Paths.CheckpointFile = filepath.Join(c.Paths.DataDir, c.Paths.CheckpointFile)
	}

	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeGemini() {
	c.Gemini.APIKey = strings.TrimSpace(c.Gemini.APIKey)
	if c.Gemini.APIKey == "" {
		if value, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
			c.Gemini.APIKey = strings.TrimSpace(value)
		} else if value, ok := os.LookupEnv("GOOGLE_API_KEY"); ok {
			c.Gemini.APIKey = strings.TrimSpace(value)
		}
	}
	c.Gemini.BaseURL = strings.TrimSpace(c.Gemini.BaseURL)
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = defaultGeminiBaseURL
	}
	c.Gemini.Model = strings.TrimSpace(c.Gemini.Model)
	if c.Gemini.Model == "" {
		c.Gemini.Model = defaultGeminiModel
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = defaultGeminiTimeout
	}
}

func (c *Config) normalizeGeneration() {
	if c.Generation.Attempts <= 0 {
		c.Generation.Attempts = defaultAttempts
	}
	if c.Generation.BackoffBaseSeconds <= 0 {
		c.Generation.BackoffBaseSeconds = defaultBackoffBaseSeconds
	}
	if c.Generation.BackoffCapSeconds < c.Generation.BackoffBaseSeconds {
		c.Generation.BackoffCapSeconds = defaultBackoffCapSeconds
	}
	c.Generation.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.Generation.DefaultLanguage))
	if c.Generation.DefaultLanguage == "" {
		c.Generation.DefaultLanguage = defaultLanguage
	}
	c.Generation.DefaultVersion = strings.TrimSpace(c.Generation.DefaultVersion)
	if c.Generation.DefaultVersion == "" {
		c.Generation.DefaultVersion = defaultVersion
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
