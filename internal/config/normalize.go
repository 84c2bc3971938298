package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizePrompts(); err != nil {
		return err
	}
	c.normalizeCuration()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		c.Paths.CatalogPath = defaultCatalogPath
	}
	if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
		return fmt.Errorf("paths.catalog_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputPath) == "" {
		c.Paths.OutputPath = defaultOutputPath
	}
	if c.Paths.OutputPath, err = expandPath(c.Paths.OutputPath); err != nil {
		return fmt.Errorf("paths.output_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizePrompts() error {
	var err error
	c.Prompts.APIURL = strings.TrimRight(strings.TrimSpace(c.Prompts.APIURL), "/")
	if c.Prompts.APIURL == "" {
		c.Prompts.APIURL = defaultPromptAPIURL
	}
	if c.Prompts.RequestTimeout <= 0 {
		c.Prompts.RequestTimeout = defaultPromptRequestTimeout
	}
	if strings.TrimSpace(c.Prompts.OutputDir) == "" {
		c.Prompts.OutputDir = defaultPromptOutputDir
	}
	if c.Prompts.OutputDir, err = expandPath(c.Prompts.OutputDir); err != nil {
		return fmt.Errorf("prompts.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Prompts.SourceDir) != "" {
		if c.Prompts.SourceDir, err = expandPath(c.Prompts.SourceDir); err != nil {
			return fmt.Errorf("prompts.source_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeCuration() {
	c.Curation.BannedTags = cleanList(c.Curation.BannedTags)
	c.Curation.BannedNames = cleanList(c.Curation.BannedNames)
	c.Curation.ExcludedLanguages = cleanList(c.Curation.ExcludedLanguages)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// cleanList trims entries and drops empties and duplicates, keeping order.
func cleanList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
