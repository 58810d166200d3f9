package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

type CatalogConfig struct {
	Source string `yaml:"source"` // "json" or "sqlite"
	Path   string `yaml:"path"`
}

type GeneratorConfig struct {
	DefaultStake int64 `yaml:"default_stake"`
	Seed         int64 `yaml:"seed"` // 0 = time-seeded
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = 5 * time.Second
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "json"
	}
	if c.Generator.DefaultStake == 0 {
		c.Generator.DefaultStake = 10000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) validate() error {
	if c.Catalog.Source != "json" && c.Catalog.Source != "sqlite" {
		return fmt.Errorf("catalog source must be json or sqlite, got %q", c.Catalog.Source)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required")
	}
	return nil
}
