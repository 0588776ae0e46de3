package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name looked up when none is given.
const DefaultConfigFile = "webfleet.yaml"

// Defaults applied by LoadFile when the corresponding field is unset.
var (
	DefaultRegions = []string{"westus", "eastus2", "southeastasia"}

	defaultNetFrameworkVersion = "v4.0"
	defaultPHPVersion          = "7.4"
	defaultCertOutputDir       = "certs"
	defaultCertPassword        = "webfleet"
)

// LoadFile reads, defaults and validates the configuration from a YAML file.
// An empty path falls back to DefaultConfigFile in the working directory.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// WriteYAML writes cfg to path as YAML.
func WriteYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if len(c.Regions) == 0 {
		c.Regions = append([]string(nil), DefaultRegions...)
	}
	if c.App.NetFrameworkVersion == "" {
		c.App.NetFrameworkVersion = defaultNetFrameworkVersion
	}
	if c.App.PHPVersion == "" {
		c.App.PHPVersion = defaultPHPVersion
	}
	if c.Certificate.OutputDir == "" {
		c.Certificate.OutputDir = defaultCertOutputDir
	}
	if c.Certificate.Password == "" {
		c.Certificate.Password = defaultCertPassword
	}
	if c.Domain.Contact.FirstName == "" {
		c.Domain.Contact = ContactSettings{
			FirstName:  "Jon",
			LastName:   "Doe",
			Email:      "jondoe@contoso.com",
			Phone:      "1-425-5555555",
			Address1:   "123 4th Ave",
			City:       "Redmond",
			State:      "WA",
			PostalCode: "98052",
			Country:    "US",
		}
	}
}
