package ade

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default models requested when a Config leaves them unset.
const (
	DefaultBaseURL      = "https://api.va.landing.ai"
	DefaultParseModel   = "dpt-2-latest"
	DefaultExtractModel = "extract-latest"
	DefaultSplitModel   = "split-latest"
)

// EnvAPIKey is the environment variable consulted when a Config carries no
// API key.
const EnvAPIKey = "VISION_AGENT_API_KEY"

// Config holds client settings, typically loaded from a YAML file.
type Config struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	ParseModel   string `yaml:"parse_model"`
	ExtractModel string `yaml:"extract_model"`
	SplitModel   string `yaml:"split_model"`
}

// LoadConfig reads a YAML config file and fills defaults for unset fields.
// The API key falls back to the environment when absent from the file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return &cfg, nil
}

// DefaultConfig returns a config built from defaults and the environment.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

func (c *Config) fillDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.ParseModel == "" {
		c.ParseModel = DefaultParseModel
	}
	if c.ExtractModel == "" {
		c.ExtractModel = DefaultExtractModel
	}
	if c.SplitModel == "" {
		c.SplitModel = DefaultSplitModel
	}
}
