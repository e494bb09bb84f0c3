// Package config handles CLI configuration loading and management.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envPrefix is the prefix for environment overrides (SLACKTIME_PROFILE,
// SLACKTIME_BASE_URL, ...).
const envPrefix = "slacktime"

// Config represents the CLI configuration. Values come from the YAML
// config file, overridden by SLACKTIME_* environment variables.
type Config struct {
	DefaultProfile string `yaml:"default_profile" envconfig:"PROFILE"`
	DefaultChannel string `yaml:"default_channel" envconfig:"CHANNEL"`
	BaseURL        string `yaml:"base_url,omitempty" envconfig:"BASE_URL"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty" envconfig:"TIMEOUT_SECONDS"`
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.slacktime/config.yaml
// - Windows: %USERPROFILE%\.slacktime\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		// Fallback to current directory
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".slacktime", "config.yaml")
}

// LoadConfig loads configuration from the specified path and applies
// environment overrides. A missing config file is not an error; a file
// that exists but cannot be read or parsed is.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// A .env in the working directory feeds the override pass; absence is
	// not an error.
	_ = godotenv.Load()

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path, creating the
// parent directory when needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
