package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCuration(); err != nil {
		return err
	}
	if err := c.validatePrompts(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		return errors.New("paths.catalog_path must be set")
	}
	if strings.TrimSpace(c.Paths.OutputPath) == "" {
		return errors.New("paths.output_path must be set")
	}
	if c.Paths.CatalogPath == c.Paths.OutputPath {
		return errors.New("paths.output_path must differ from paths.catalog_path")
	}
	return nil
}

func (c *Config) validateCuration() error {
	if c.Curation.MinEmotionCount < 0 {
		return errors.New("curation.min_emotion_count must be >= 0")
	}
	return nil
}

func (c *Config) validatePrompts() error {
	if c.Prompts.RequestTimeout <= 0 {
		return errors.New("prompts.request_timeout must be positive")
	}
	if !strings.HasPrefix(c.Prompts.APIURL, "http://") && !strings.HasPrefix(c.Prompts.APIURL, "https://") {
		return fmt.Errorf("prompts.api_url must be an http(s) URL, got %q", c.Prompts.APIURL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
