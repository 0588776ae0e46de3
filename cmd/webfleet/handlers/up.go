package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/webfleet-dev/webfleet/internal/provisioning"
)

// Up provisions the environment and keeps it. Unlike Run, provisioning
// errors propagate so the exit code reflects the outcome; the environment
// is left in place either way for inspection or a later destroy.
func Up(ctx context.Context, configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	log.Printf("Provisioning environment: %s", cfg.Environment)

	mgr, err := newManager()
	if err != nil {
		return err
	}

	report, err := newOrchestrator(cfg, mgr).Provision(ctx)
	if report != nil && report.State != provisioning.StateNotStarted {
		printReport(cfg.Environment, report)
	}
	if err != nil {
		return fmt.Errorf("up failed: %w", err)
	}

	log.Printf("Environment %s is up", cfg.Environment)
	return nil
}
