package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/webfleet-dev/webfleet/internal/config"
	"github.com/webfleet-dev/webfleet/internal/platform/azure"
	"github.com/webfleet-dev/webfleet/internal/provisioning"
	"github.com/webfleet-dev/webfleet/internal/provisioning/destroy"
)

// Provisioner interface for testing - matches provisioning.Phase.
type Provisioner interface {
	Provision(ctx *provisioning.Context) error
}

// Factory function variables for destroy - can be replaced in tests.
var (
	// newDestroyProvisioner creates a new destroy provisioner.
	newDestroyProvisioner = func() Provisioner {
		return destroy.NewProvisioner()
	}

	// newProvisioningContext creates a new provisioning context.
	newProvisioningContext = func(ctx context.Context, cfg *config.Config, mgr azure.Manager) *provisioning.Context {
		return provisioning.NewContext(ctx, cfg, mgr)
	}
)

// Destroy deletes every resource group belonging to the configured
// environment, waiting for each deletion to complete. An environment with
// no remaining resource groups is a benign no-op.
func Destroy(ctx context.Context, configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	log.Printf("Destroying environment: %s", cfg.Environment)

	mgr, err := newManager()
	if err != nil {
		return err
	}

	pCtx := newProvisioningContext(ctx, cfg, mgr)
	if err := newDestroyProvisioner().Provision(pCtx); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	log.Printf("Environment %s destroyed", cfg.Environment)
	return nil
}
