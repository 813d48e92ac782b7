// Package config loads the base9 configuration document: the default palette
// code, the shade table and the alias tree that gives generated colours extra
// names.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/base9/internal/colour"
	"github.com/jmylchreest/base9/internal/palette"
)

//go:embed default_config.yaml
var defaultConfigYAML []byte

// Config is the base9 configuration document.
type Config struct {
	// Palette is the palette code used when no code is given. It may
	// contain unset slots.
	Palette string        `yaml:"palette"`
	Shades  colour.Shades `yaml:"shades"`
	Colors  Aliases       `yaml:"colors"`
}

// Default returns the embedded default configuration.
func Default() Config {
	cfg, err := Parse(defaultConfigYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded default config is invalid: %v", err))
	}
	return cfg
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return bytes.Clone(defaultConfigYAML)
}

// Parse decodes a configuration document. Unknown fields are rejected.
// Defaults are not applied.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// An empty document is a valid, empty config.
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration file at path, merges it over the defaults and
// validates the result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified config file, intended to be read
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg = cfg.Merge(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge returns c overlaid with the values set in o. The palette code is
// replaced when o sets one; shade and top-level alias entries from o replace
// entries of the same name in c.
func (c Config) Merge(o Config) Config {
	out := Config{
		Palette: c.Palette,
		Shades:  make(colour.Shades, len(c.Shades)+len(o.Shades)),
		Colors:  make(Aliases, len(c.Colors)+len(o.Colors)),
	}
	if o.Palette != "" {
		out.Palette = o.Palette
	}
	for name, ratio := range c.Shades {
		out.Shades[name] = ratio
	}
	for name, ratio := range o.Shades {
		out.Shades[name] = ratio
	}
	for name, alias := range c.Colors {
		out.Colors[name] = alias
	}
	for name, alias := range o.Colors {
		out.Colors[name] = alias
	}
	return out
}

// Validate checks that the palette code parses, that every shade has a usable
// name and a finite ratio, and that alias names are well formed. References
// are resolved later, against the generated colour tree.
func (c Config) Validate() error {
	if c.Palette != "" {
		if _, err := palette.ParsePartial(c.Palette); err != nil {
			return fmt.Errorf("palette: %w", err)
		}
	}

	if len(c.Shades) == 0 {
		return fmt.Errorf("shades: at least one shade is required")
	}
	for _, name := range c.Shades.Names() {
		if err := validateKey(name); err != nil {
			return fmt.Errorf("shades: %w", err)
		}
		if ratio := c.Shades[name]; math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			return fmt.Errorf("shades: %s: ratio must be finite, got %v", name, ratio)
		}
	}

	if err := c.Colors.validate("colors"); err != nil {
		return err
	}
	return nil
}

// validateKey rejects names that cannot be addressed by a dotted reference.
func validateKey(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if strings.Contains(name, ".") {
		return fmt.Errorf("name %q must not contain '.'", name)
	}
	return nil
}
