package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reeflective/hsh/internal/validation"
)

// DefaultPrompt is the prompt printed before reading each line.
const DefaultPrompt = "hsh > "

// Config is the shell configuration, as read from a YAML file.
type Config struct {
	Prompt    string            `yaml:"prompt" validate:"required"`
	ImportEnv bool              `yaml:"import_env"`
	Vars      map[string]string `yaml:"vars" validate:"omitempty,dive,keys,varname,endkeys"`
	Log       Log               `yaml:"log"`
}

// Log configures the shell's own diagnostics.
type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Prompt:    DefaultPrompt,
		ImportEnv: true,
		Vars:      map[string]string{},
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads a configuration file over the defaults. An empty
// path returns the defaults. The result is not validated yet.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Vars == nil {
		cfg.Vars = map[string]string{}
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	return cfg, nil
}

// Validate checks all configuration values.
func (c *Config) Validate() error {
	if err := validation.Struct(validation.New(), c); err != nil {
		return errors.Join(errors.New("invalid configuration"), err)
	}

	return nil
}
