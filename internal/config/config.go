// Package config loads the nuxtdoc renderer configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/nuxtdoc/internal/pages"
)

// Config is the renderer configuration.
type Config struct {
	// APIDump is the path to the JSON documentation tree produced by the
	// external extraction stage.
	APIDump string `yaml:"api_dump"`

	// ContentDirectory is the output root. Default: "content".
	ContentDirectory string `yaml:"content_directory,omitempty"`

	// CleanRender removes files generated by the previous run before
	// rendering. Default: true.
	CleanRender *bool `yaml:"clean_render,omitempty"`

	// DefaultFrontmatter is merged into every page's frontmatter.
	DefaultFrontmatter map[string]any `yaml:"default_frontmatter,omitempty"`

	// UseMDC toggles MDC component rewriting; when false docstrings pass
	// through as plain Markdown. Default: true.
	UseMDC *bool `yaml:"use_mdc,omitempty"`

	// MDCComponents maps section kinds to component identifiers. Entries
	// overlay the Nuxt UI defaults.
	MDCComponents map[string]string `yaml:"mdc_components,omitempty"`

	// ObjectIcons maps object kinds to icon identifiers. Entries overlay
	// the defaults.
	ObjectIcons map[string]string `yaml:"object_icons,omitempty"`

	// BaseURL is the base path used for cross-reference links.
	BaseURL string `yaml:"base_url,omitempty"`

	// EditBaseURL, when set, derives per-page editURL frontmatter. When
	// empty a git remote is probed.
	EditBaseURL string `yaml:"edit_base_url,omitempty"`

	// HistoryDB is an optional sqlite database path recording render runs.
	HistoryDB string `yaml:"history_db,omitempty"`

	Events EventsConfig `yaml:"events,omitempty"`
	Watch  WatchConfig  `yaml:"watch,omitempty"`

	Pages []pages.Page `yaml:"pages"`
}

// EventsConfig configures optional render-event publishing.
type EventsConfig struct {
	NATSURL string `yaml:"nats_url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// Interval triggers periodic re-renders in addition to file events.
	Interval time.Duration `yaml:"interval,omitempty"`
	// Listen is the preview/metrics HTTP address. Default ":8931".
	Listen string `yaml:"listen,omitempty"`
}

// Load reads the configuration from path. A .env file next to the process
// is loaded first and environment variables in the YAML are expanded.
func Load(configPath string) (*Config, error) {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := pages.Validate(cfg.Pages); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields with their documented defaults.
func (c *Config) ApplyDefaults() {
	if c.ContentDirectory == "" {
		c.ContentDirectory = "content"
	}
	if c.Watch.Listen == "" {
		c.Watch.Listen = ":8931"
	}
	if c.Events.Subject == "" {
		c.Events.Subject = "nuxtdoc.render"
	}
}

// CleanRenderEnabled reports whether previous outputs are cleaned before a
// render (default true).
func (c *Config) CleanRenderEnabled() bool {
	return c.CleanRender == nil || *c.CleanRender
}

// UseMDCEnabled reports whether MDC rewriting is enabled (default true).
func (c *Config) UseMDCEnabled() bool {
	return c.UseMDC == nil || *c.UseMDC
}

// Components returns the section-kind → component mapping: the defaults
// overlaid with configured entries. The result is a fresh map.
func (c *Config) Components() map[string]string {
	out := DefaultComponents()
	for k, v := range c.MDCComponents {
		out[k] = v
	}
	return out
}

// Icons returns the object-kind → icon mapping: the defaults overlaid with
// configured entries. The result is a fresh map.
func (c *Config) Icons() map[string]string {
	out := DefaultObjectIcons()
	for k, v := range c.ObjectIcons {
		out[k] = v
	}
	return out
}
