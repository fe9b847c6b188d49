// Package config loads the layout of the curtain demo.
//
// Configuration comes from a single YAML file named with --config. Fields the
// file leaves out keep their Default values.
package config

import (
	"curtain/layout"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Console is the scrollable output page.
	Console ConsoleConfig `yaml:"console"`

	// Banner is the outlined panel at the top of the screen.
	Banner BannerConfig `yaml:"banner"`

	// Terminal is the prompt line at the bottom of the screen.
	Terminal TerminalConfig `yaml:"terminal"`

	// Reveal configures the banner animation.
	Reveal RevealConfig `yaml:"reveal"`
}

type ConsoleConfig struct {
	// Multiplier sizes the page content relative to its viewport.
	Multiplier int `yaml:"multiplier"`

	// Step is how many rows or columns one arrow key scrolls.
	Step int `yaml:"step"`
}

type BannerConfig struct {
	Lines int    `yaml:"lines"`
	Text  string `yaml:"text"`
	Align string `yaml:"align"`

	// VCentered centers the text block inside the panel.
	VCentered bool `yaml:"vcentered"`
}

type TerminalConfig struct {
	Lines int `yaml:"lines"`

	// WordDelete is "keep" or "trim"; see input.WordDelete.
	WordDelete string `yaml:"word_delete"`
}

type RevealConfig struct {
	// Mode is "char" or "word".
	Mode  string        `yaml:"mode"`
	Pause time.Duration `yaml:"pause"`
}

func Default() *Config {
	return &Config{
		Console: ConsoleConfig{
			Multiplier: 2,
			Step:       1,
		},
		Banner: BannerConfig{
			Lines:     5,
			Text:      "curtain: type a line and press enter, esc freezes the prompt",
			Align:     "center",
			VCentered: true,
		},
		Terminal: TerminalConfig{
			Lines:      3,
			WordDelete: "keep",
		},
		Reveal: RevealConfig{
			Mode:  "word",
			Pause: 80 * time.Millisecond,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Console.Multiplier < 1 {
		return fmt.Errorf("%w: console.multiplier must be at least 1, got %d", ErrInvalid, c.Console.Multiplier)
	}
	if c.Console.Step < 1 {
		return fmt.Errorf("%w: console.step must be at least 1, got %d", ErrInvalid, c.Console.Step)
	}
	if c.Banner.Lines < 3 {
		return fmt.Errorf("%w: banner.lines must be at least 3, got %d", ErrInvalid, c.Banner.Lines)
	}
	if _, err := c.Banner.Alignment(); err != nil {
		return err
	}
	if c.Terminal.Lines < 3 {
		return fmt.Errorf("%w: terminal.lines must be at least 3, got %d", ErrInvalid, c.Terminal.Lines)
	}
	if c.Terminal.WordDelete != "keep" && c.Terminal.WordDelete != "trim" {
		return fmt.Errorf("%w: terminal.word_delete must be keep or trim, got %q", ErrInvalid, c.Terminal.WordDelete)
	}
	if _, err := layout.ParseMode(c.Reveal.Mode); err != nil {
		return err
	}
	if c.Reveal.Pause < 0 {
		return fmt.Errorf("%w: reveal.pause must not be negative", ErrInvalid)
	}
	return nil
}

func (b BannerConfig) Alignment() (layout.Align, error) {
	switch b.Align {
	case "left":
		return layout.Left, nil
	case "center":
		return layout.Center, nil
	case "justify":
		return layout.Justify, nil
	case "right":
		return layout.Right, nil
	}
	return layout.Left, fmt.Errorf("%w: banner.align %q", ErrInvalid, b.Align)
}
