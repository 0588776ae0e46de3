package config

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/huh"
)

// Default returns a fully defaulted configuration for env.
func Default(env string) *Config {
	cfg := &Config{Environment: env}
	cfg.applyDefaults()
	return cfg
}

// RunWizard interactively asks for the minimal settings and returns a
// defaulted, validated configuration.
func RunWizard() (*Config, error) {
	cfg := &Config{}
	regions := make([]string, 0, planRegionCount)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Environment name").
				Description("2-16 lowercase alphanumeric characters, starts with a letter").
				Placeholder("demo").
				Value(&cfg.Environment),
			huh.NewMultiSelect[string]().
				Title("Plan regions").
				Description(fmt.Sprintf("Pick exactly %d; the first hosts the extra apps", planRegionCount)).
				Options(regionOptions()...).
				Limit(planRegionCount).
				Value(&regions),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	cfg.Regions = regions
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func regionOptions() []huh.Option[string] {
	regions := make([]string, 0, len(ValidRegions))
	for region := range ValidRegions {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return huh.NewOptions(regions...)
}
