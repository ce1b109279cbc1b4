package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
	Gemini  GeminiConfig  `yaml:"gemini"`
}

type OutputConfig struct {
	Dir        string `yaml:"dir"`
	Transcript string `yaml:"transcript"`
	Docx       bool   `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Dir      string `yaml:"dir"`
	SettleMs int    `yaml:"settle_ms"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

// Default returns the configuration used when no config file is
// supplied. The tool is argument-driven, so every setting has a
// working default.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.Transcript == "" {
		c.Output.Transcript = "transcript.md"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.Dir == "" {
		c.Watch.Dir = "data/input"
	}
	if c.Watch.SettleMs == 0 {
		c.Watch.SettleMs = 500
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	for i, key := range c.Gemini.APIKeys {
		if key == "" {
			return fmt.Errorf("gemini.api_keys[%d] is empty", i)
		}
	}
	return nil
}
