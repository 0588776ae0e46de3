package config

import (
	"fmt"
	"regexp"
)

// ValidRegions contains the Azure regions webfleet accepts for plans.
// https://azure.microsoft.com/en-us/explore/global-infrastructure/geographies/
var ValidRegions = map[string]bool{
	"westus":         true, // West US
	"westus2":        true, // West US 2
	"eastus":         true, // East US
	"eastus2":        true, // East US 2
	"centralus":      true, // Central US
	"northeurope":    true, // North Europe
	"westeurope":     true, // West Europe
	"uksouth":        true, // UK South
	"southeastasia":  true, // Southeast Asia
	"eastasia":       true, // East Asia
	"japaneast":      true, // Japan East
	"australiaeast":  true, // Australia East
	"brazilsouth":    true, // Brazil South
	"canadacentral":  true, // Canada Central
	"centralindia":   true, // Central India
	"koreacentral":   true, // Korea Central
	"northcentralus": true, // North Central US
	"southcentralus": true, // South Central US
}

// planRegionCount is fixed by the environment shape: three plans across
// three regions.
const planRegionCount = 3

// Environment names end up embedded in DNS labels, so keep them tight.
var environmentNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]{1,15}$`)

// Validate checks the configuration and returns a detailed error if
// validation fails.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if !environmentNamePattern.MatchString(c.Environment) {
		return fmt.Errorf("environment %q must be 2-16 lowercase alphanumeric characters starting with a letter", c.Environment)
	}

	if err := c.validateRegions(); err != nil {
		return fmt.Errorf("region validation failed: %w", err)
	}

	if err := c.validateContact(); err != nil {
		return fmt.Errorf("domain contact validation failed: %w", err)
	}

	return nil
}

func (c *Config) validateRegions() error {
	if len(c.Regions) != planRegionCount {
		return fmt.Errorf("exactly %d regions are required, got %d", planRegionCount, len(c.Regions))
	}

	seen := make(map[string]bool, planRegionCount)
	for _, region := range c.Regions {
		if !ValidRegions[region] {
			return fmt.Errorf("unknown region %q", region)
		}
		if seen[region] {
			return fmt.Errorf("region %q listed twice, regions must be distinct", region)
		}
		seen[region] = true
	}
	return nil
}

func (c *Config) validateContact() error {
	contact := c.Domain.Contact
	if contact.Email == "" {
		return fmt.Errorf("contact email is required")
	}
	if contact.FirstName == "" || contact.LastName == "" {
		return fmt.Errorf("contact first and last name are required")
	}
	if contact.Country == "" {
		return fmt.Errorf("contact country is required")
	}
	return nil
}
