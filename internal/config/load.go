package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a dashboard file. The format follows the extension:
// .toml, or .yaml / .yml.
func Load(path string) (*Config, error) {
	var cfg Config

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}

	// Like Default, a file that names no server polls the demo server
	if cfg.Target == "" && cfg.Host.Name == "" {
		cfg.Target = TargetDemo
	}

	// A file without widgets only tunes the server and timings
	if len(cfg.Widgets) == 0 {
		cfg.Widgets = Default().Widgets
	}

	return &cfg, nil
}
