package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := &Config{
		Environment: "demo",
		Regions:     []string{"westus", "eastus2", "southeastasia"},
	}
	cfg.applyDefaults()
	return cfg
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing environment",
			mutate:  func(c *Config) { c.Environment = "" },
			wantErr: "environment is required",
		},
		{
			name:    "environment with uppercase",
			mutate:  func(c *Config) { c.Environment = "Demo" },
			wantErr: "lowercase",
		},
		{
			name:    "environment too long",
			mutate:  func(c *Config) { c.Environment = strings.Repeat("a", 20) },
			wantErr: "lowercase",
		},
		{
			name:    "too few regions",
			mutate:  func(c *Config) { c.Regions = c.Regions[:2] },
			wantErr: "exactly 3 regions",
		},
		{
			name:    "too many regions",
			mutate:  func(c *Config) { c.Regions = append(c.Regions, "westeurope") },
			wantErr: "exactly 3 regions",
		},
		{
			name:    "unknown region",
			mutate:  func(c *Config) { c.Regions[1] = "moonbase1" },
			wantErr: "unknown region",
		},
		{
			name:    "duplicate region",
			mutate:  func(c *Config) { c.Regions[1] = c.Regions[0] },
			wantErr: "distinct",
		},
		{
			name:    "missing contact email",
			mutate:  func(c *Config) { c.Domain.Contact.Email = "" },
			wantErr: "contact email",
		},
		{
			name:    "missing contact country",
			mutate:  func(c *Config) { c.Domain.Contact.Country = "" },
			wantErr: "country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
