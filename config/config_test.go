package config

import (
	"curtain/layout"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curtain.yaml")
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
banner:
  text: hello there
  align: justify
reveal:
  mode: char
  pause: 250ms
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Banner.Text != "hello there" {
		t.Errorf("banner text %q", cfg.Banner.Text)
	}
	if align, _ := cfg.Banner.Alignment(); align != layout.Justify {
		t.Errorf("alignment %v", align)
	}
	if cfg.Reveal.Mode != "char" || cfg.Reveal.Pause != 250*time.Millisecond {
		t.Errorf("reveal %+v", cfg.Reveal)
	}
	if cfg.Banner.Lines != Default().Banner.Lines || cfg.Console.Multiplier != 2 {
		t.Error("fields missing from the file must keep their defaults")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"multiplier", "console:\n  multiplier: 0\n", ErrInvalid},
		{"align", "banner:\n  align: sideways\n", ErrInvalid},
		{"word delete", "terminal:\n  word_delete: all\n", ErrInvalid},
		{"mode", "reveal:\n  mode: line\n", layout.ErrInvalidMode},
	}
	for _, test := range tests {
		_, err := Load(writeConfig(t, test.text))
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
}
