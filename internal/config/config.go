// Package config loads tlview settings from a YAML file. Missing keys keep
// their defaults, which reproduce the ILLIXR logging conventions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tlview/tlview/common"
	"github.com/tlview/tlview/internal/source"
	"github.com/tlview/tlview/pkg/timeline"
	"gopkg.in/yaml.v3"
)

// Config holds all tlview settings.
type Config struct {
	// PageSize is the page width in nanoseconds.
	PageSize int64 `yaml:"page_size"`
	// Align starts page 0 at the earliest event instead of time zero.
	Align bool `yaml:"align"`
	// Unmatched is "pass" or "reject"; see timeline.UnmatchedPolicy.
	Unmatched string `yaml:"unmatched"`
	// Snapshot reads copies of the databases instead of the originals.
	Snapshot bool `yaml:"snapshot"`

	Schema  source.Schema     `yaml:"schema"`
	Sources SourcesConfig     `yaml:"sources"`
	Colors  map[string]string `yaml:"colors"`
}

// SourcesConfig lists databases used when none are given on the command line.
type SourcesConfig struct {
	Names  string            `yaml:"names"`
	Events map[string]string `yaml:"events"` // kind -> path
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PageSize:  timeline.DefaultPageSize,
		Unmatched: "pass",
		Schema:    source.DefaultSchema(),
		Colors:    map[string]string{},
	}
}

// DefaultPath returns $TLVIEW_CONFIG or <user config dir>/tlview/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(common.ConfigEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, common.AppName, "config.yaml")
}

// Load reads path from fs over the defaults. When explicit is false a
// missing file is not an error.
func Load(fs afero.Fs, path string, explicit bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and the schema.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if _, ok := timeline.ParseUnmatchedPolicy(c.Unmatched); !ok {
		return fmt.Errorf("unmatched must be \"pass\" or \"reject\", got %q", c.Unmatched)
	}
	return c.Schema.Validate()
}

// UnmatchedPolicy returns the parsed unmatched-id policy.
func (c *Config) UnmatchedPolicy() timeline.UnmatchedPolicy {
	p, _ := timeline.ParseUnmatchedPolicy(c.Unmatched)
	return p
}

// Selection builds the configured default source selection, with event
// sources in schema order.
func (c *Config) Selection() source.Selection {
	sel := source.Selection{Names: c.Sources.Names}
	for _, kind := range c.Schema.Kinds() {
		if p := c.Sources.Events[kind]; p != "" {
			sel.Events = append(sel.Events, source.EventSource{Kind: kind, Path: p})
		}
	}
	return sel
}
