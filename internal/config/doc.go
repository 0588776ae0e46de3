// Package config defines the webfleet configuration model, YAML loading
// with defaults, and validation.
package config
