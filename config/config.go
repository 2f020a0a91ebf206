// Package config holds the site build settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFile is the well-known configuration file honored when present in
// the working directory. The builder takes no flags and reads no environment
// variables; this file is the only way to override the defaults.
const DefaultFile = "camdocs.json"

// Config encapsulates build-time options.
type Config struct {
	DocsDir              string `json:"docsDir"`
	OutputDir            string `json:"outputDir"`
	SiteName             string `json:"siteName"`
	SiteSubtitle         string `json:"siteSubtitle"`
	SiteTitle            string `json:"siteTitle"`
	FooterText           string `json:"footerText"`
	HighlightClassPrefix string `json:"highlightClassPrefix"`
	MinifyOutput         bool   `json:"minifyOutput"`
	LogLevel             string `json:"logLevel"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from disk and applies sane defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault reads the well-known configuration file when it exists and
// falls back to the built-in defaults when it does not.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) applyDefaults() {
	c.DocsDir = strings.TrimSpace(c.DocsDir)
	c.OutputDir = strings.TrimSpace(c.OutputDir)

	if c.DocsDir == "" {
		c.DocsDir = "./docs"
	}
	if c.OutputDir == "" {
		c.OutputDir = "./site"
	}

	c.SiteName = strings.TrimSpace(c.SiteName)
	if c.SiteName == "" {
		c.SiteName = "C Pro Docs"
	}
	c.SiteSubtitle = strings.TrimSpace(c.SiteSubtitle)
	if c.SiteSubtitle == "" {
		c.SiteSubtitle = "Camera Server Documentation"
	}
	c.SiteTitle = strings.TrimSpace(c.SiteTitle)
	if c.SiteTitle == "" {
		c.SiteTitle = "C Pro Camera Server Documentation"
	}
	c.FooterText = strings.TrimSpace(c.FooterText)
	if c.FooterText == "" {
		c.FooterText = "Copyright © 2025 Rotoclear"
	}
	c.HighlightClassPrefix = strings.TrimSpace(c.HighlightClassPrefix)
	if c.HighlightClassPrefix == "" {
		c.HighlightClassPrefix = "hl-"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if filepath.Clean(c.DocsDir) == filepath.Clean(c.OutputDir) {
		return fmt.Errorf("docsDir and outputDir must differ: %q", c.DocsDir)
	}
	return nil
}
