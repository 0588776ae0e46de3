package handlers

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/webfleet-dev/webfleet/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// stdinIsTTY reports whether the wizard can run interactively.
	stdinIsTTY = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd())
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = config.RunWizard

	// writeConfigFile writes the config to a file.
	writeConfigFile = config.WriteYAML
)

// Init writes a starter configuration file. On a terminal the interactive
// wizard asks for the environment name and regions; otherwise (or with
// yes=true) a fully defaulted config is written.
func Init(outputPath string, yes bool) error {
	if outputPath == "" {
		outputPath = config.DefaultConfigFile
	}
	if fileExists(outputPath) {
		return fmt.Errorf("%s already exists, remove it first", outputPath)
	}

	var cfg *config.Config
	if !yes && stdinIsTTY() {
		var err error
		cfg, err = runWizard()
		if err != nil {
			return fmt.Errorf("wizard canceled: %w", err)
		}
	} else {
		cfg = config.Default("demo")
	}

	if err := writeConfigFile(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printInitSuccess prints the summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File:        %s\n", outputPath)
	fmt.Printf("  Environment: %s\n", cfg.Environment)
	fmt.Printf("  Regions:     %v\n", cfg.Regions)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  webfleet run -c %s     # provision and tear down the demo environment\n", outputPath)
	fmt.Printf("  webfleet up -c %s      # provision and keep the environment\n", outputPath)
	fmt.Println()
}
