package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	ErrMissingTokenKey       = errors.New("config: token signing key is empty")
	ErrMissingPlatformSecret = errors.New("config: platform secret is empty")
	ErrMissingDataFile       = errors.New("config: database file path is empty")
)

// TokenSettings configures bearer token issuance and validation.
type TokenSettings struct {
	Key              string `yaml:"key"`
	Issuer           string `yaml:"issuer"`
	Audience         string `yaml:"audience"`
	ExpiryHours      int    `yaml:"expiry_hours"`
	ValidateIssuer   bool   `yaml:"validate_issuer"`
	ValidateAudience bool   `yaml:"validate_audience"`
	ValidateLifetime bool   `yaml:"validate_lifetime"`
}

// DatabaseSettings configures the flat-file document store.
type DatabaseSettings struct {
	File       string `yaml:"file"`
	MinifyJSON bool   `yaml:"minify_json"`
}

// Config holds all service configuration.
type Config struct {
	Token    TokenSettings    `yaml:"token"`
	Database DatabaseSettings `yaml:"database"`

	// PlatformSecret is mixed into every per-user password salt.
	PlatformSecret string `yaml:"platform_secret"`
}

// Load reads the YAML config at path and applies environment overrides.
//
// Environment variables:
//   - TOKEN_KEY: overrides token.key
//   - PLATFORM_SECRET: overrides platform_secret
//   - DATA_FILE: overrides database.file
func Load(path string) (*Config, error) {
	cfg := &Config{
		Token: TokenSettings{
			Issuer:           "crm-service",
			Audience:         "crm-clients",
			ExpiryHours:      8,
			ValidateLifetime: true,
		},
		Database: DatabaseSettings{File: "crm-data.json"},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("TOKEN_KEY")); v != "" {
		cfg.Token.Key = v
	}
	if v := strings.TrimSpace(os.Getenv("PLATFORM_SECRET")); v != "" {
		cfg.PlatformSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("DATA_FILE")); v != "" {
		cfg.Database.File = v
	}

	return cfg, nil
}

// Validate checks that everything required at startup is present.
func (c *Config) Validate() error {
	if c.Token.Key == "" {
		return ErrMissingTokenKey
	}
	if c.PlatformSecret == "" {
		return ErrMissingPlatformSecret
	}
	if c.Database.File == "" {
		return ErrMissingDataFile
	}
	return nil
}
