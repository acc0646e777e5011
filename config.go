package slidemacro

import (
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-slidemacro/internal/yamlutil"
)

// Config holds pipeline options loadable from a deck's YAML config.
type Config struct {
	Embed bool   `yaml:"embed"` // inline local images as data URIs
	Style string `yaml:"style"` // chroma style name (empty = default)
}

// DefaultConfig returns a configuration with embedding disabled and the
// default highlighting style.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks that the configured style is a registered chroma style.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c == nil || c.Style == "" {
		return nil
	}
	for _, name := range styles.Names() {
		if name == c.Style {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStyle, c.Style)
}

// LoadConfig loads and validates a Config from a YAML file. Unknown fields
// are rejected (strict parsing, no silent typos).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
