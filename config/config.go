// Package config loads viewer settings from a YAML file.
//
// The file is read from --config when given, otherwise from
// $XDG_CONFIG_HOME/peek/config.yaml (or ~/.config/peek/config.yaml). A missing
// default file means built-in defaults; a missing explicit file is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour/styles"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Scale is the fixed render scale factor.
	Scale float64 `yaml:"scale"`
	// CellHeight is how many reveal units one terminal row spans.
	CellHeight int `yaml:"cell_height"`
	// ModifierHold is how long the precision key counts as held after a press.
	ModifierHold string `yaml:"modifier_hold"`
	// LinesPerPage paginates documents without form feeds.
	LinesPerPage int `yaml:"lines_per_page"`
	// BaseWidth is the wrap width at scale 1.
	BaseWidth     int    `yaml:"base_width"`
	MarkdownStyle string `yaml:"markdown_style"`
	ShadeColor    string `yaml:"shade_color"`
	// ColorProfile forces a colour profile: auto, truecolor, ansi256, ansi, ascii.
	ColorProfile string `yaml:"color_profile"`
}

func Default() Config {
	return Config{
		Scale:         1.5,
		CellHeight:    10,
		ModifierHold:  "700ms",
		LinesPerPage:  60,
		BaseWidth:     52,
		MarkdownStyle: "dark",
		ShadeColor:    "#000000",
		ColorProfile:  "auto",
	}
}

// DefaultPath returns the config file looked up when --config is not given.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "peek", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "peek", "config.yaml")
}

// Load reads path over the defaults. An empty path falls back to DefaultPath,
// which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %v", c.Scale))
	}
	if c.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell_height must be positive, got %d", c.CellHeight))
	}
	if c.LinesPerPage <= 0 {
		errs = append(errs, fmt.Errorf("lines_per_page must be positive, got %d", c.LinesPerPage))
	}
	if c.BaseWidth <= 0 {
		errs = append(errs, fmt.Errorf("base_width must be positive, got %d", c.BaseWidth))
	}
	if _, err := c.Hold(); err != nil {
		errs = append(errs, err)
	}
	if _, ok := styles.DefaultStyles[c.MarkdownStyle]; !ok && c.MarkdownStyle != styles.AutoStyle {
		errs = append(errs, fmt.Errorf("unknown markdown_style %q", c.MarkdownStyle))
	}
	switch strings.ToLower(c.ColorProfile) {
	case "", "auto", "truecolor", "ansi256", "ansi", "ascii":
	default:
		errs = append(errs, fmt.Errorf("unknown color_profile %q", c.ColorProfile))
	}
	return errors.Join(errs...)
}

// Hold parses ModifierHold.
func (c Config) Hold() (time.Duration, error) {
	d, err := time.ParseDuration(c.ModifierHold)
	if err != nil {
		return 0, fmt.Errorf("modifier_hold: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("modifier_hold must be positive, got %s", d)
	}
	return d, nil
}
