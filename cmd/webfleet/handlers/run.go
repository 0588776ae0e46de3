// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/webfleet-dev/webfleet/internal/config"
	"github.com/webfleet-dev/webfleet/internal/platform/azure"
	"github.com/webfleet-dev/webfleet/internal/provisioning"
)

// Orchestrator interface for testing - matches provisioning.Orchestrator.
type Orchestrator interface {
	Run(ctx context.Context) (*provisioning.Report, error)
	Provision(ctx context.Context) (*provisioning.Report, error)
}

// Factory function variables - can be replaced in tests for dependency
// injection.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// newManager creates the Azure management client from the environment.
	newManager = func() (azure.Manager, error) {
		return azure.NewRealClientFromEnv()
	}

	// newOrchestrator creates a provisioning orchestrator.
	newOrchestrator = func(cfg *config.Config, mgr azure.Manager) Orchestrator {
		return provisioning.NewOrchestrator(cfg, mgr)
	}

	// printReport renders the run summary.
	printReport = func(env string, report *provisioning.Report) {
		fmt.Print(RenderReport(env, report))
	}
)

// Run executes the full provisioning demo: the environment is provisioned
// end to end and the resource group is always deleted afterwards, whether
// provisioning succeeded or not.
//
// A provisioning failure does not produce a non-zero exit; only failing to
// create the resource group does, since at that point nothing was done.
func Run(ctx context.Context, configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	log.Printf("Running provisioning demo for environment: %s", cfg.Environment)

	mgr, err := newManager()
	if err != nil {
		return err
	}

	report, err := newOrchestrator(cfg, mgr).Run(ctx)
	if report != nil && report.State != provisioning.StateNotStarted {
		printReport(cfg.Environment, report)
	}
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}
