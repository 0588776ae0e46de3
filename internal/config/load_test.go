package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "webfleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Minimal(t *testing.T) {
	path := writeConfig(t, "environment: demo\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, "demo", cfg.Environment)
	require.Equal(t, DefaultRegions, cfg.Regions)
	require.Equal(t, "v4.0", cfg.App.NetFrameworkVersion)
	require.Equal(t, "7.4", cfg.App.PHPVersion)
	require.Equal(t, "certs", cfg.Certificate.OutputDir)
	require.NotEmpty(t, cfg.Certificate.Password)
	require.NotEmpty(t, cfg.Domain.Contact.Email, "contact defaults should apply")
}

func TestLoadFile_Full(t *testing.T) {
	path := writeConfig(t, `
environment: staging
regions: [westeurope, northeurope, uksouth]
app:
  php_version: "8.2"
domain:
  contact:
    first_name: Ada
    last_name: Lovelace
    email: ada@example.com
    phone: 1-555-0100
    address: 1 Analytical Way
    city: London
    state: LDN
    postal_code: E1 6AN
    country: GB
certificate:
  output_dir: out
  password: hunter2
tags:
  team: web
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, []string{"westeurope", "northeurope", "uksouth"}, cfg.Regions)
	require.Equal(t, "8.2", cfg.App.PHPVersion)
	require.Equal(t, "Ada", cfg.Domain.Contact.FirstName)
	require.Equal(t, "hunter2", cfg.Certificate.Password)
	require.Equal(t, "web", cfg.Tags["team"])
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFile_BadYAML(t *testing.T) {
	path := writeConfig(t, "environment: [broken\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to unmarshal yaml")
}

func TestLoadFile_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "environment: demo\nregions: [westus, westus, eastus]\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validation failed")
}
