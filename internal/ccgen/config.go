package ccgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	InputDir             string `yaml:"input_dir"`
	OutputDir            string `yaml:"output_dir"`
	Format               string `yaml:"format"`
	DefaultTextureDomain string `yaml:"default_texture_domain"`
	AllowUnknownFields   bool   `yaml:"allow_unknown_fields"`
	RejectUnresolved     bool   `yaml:"reject_unresolved"`
	CopyVanilla          bool   `yaml:"copy_vanilla"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and fills in defaults.
func (cfg *Config) Validate() error {
	if cfg.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if cfg.Format == "" {
		cfg.Format = FormatJSON
	}
	if cfg.Format != FormatJSON && cfg.Format != FormatYAML {
		return fmt.Errorf("format must be %q or %q, got %q", FormatJSON, FormatYAML, cfg.Format)
	}
	return nil
}
