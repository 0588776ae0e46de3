package destroy

import (
	"errors"
	"fmt"

	"github.com/webfleet-dev/webfleet/internal/provisioning"
	"github.com/webfleet-dev/webfleet/internal/util/tags"
)

// Provisioner handles environment destruction.
type Provisioner struct{}

// NewProvisioner creates a new destroy provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements provisioning.Phase.
func (p *Provisioner) Name() string { return "destroy" }

// Provision deletes every resource group tagged with the environment name,
// waiting for each deletion to complete. Since the resource group is the
// single root of ownership, deleting it removes the whole environment.
// Finding no group is a benign no-op.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	env := ctx.Config.Environment
	ctx.Observer.Printf("[destroy] looking up resource groups for environment %s", env)

	groups, err := ctx.Azure.ListResourceGroupsByTag(ctx, tags.KeyEnvironment, env)
	if err != nil {
		return fmt.Errorf("failed to list resource groups for %s: %w", env, err)
	}

	if len(groups) == 0 {
		ctx.Observer.Event(provisioning.Event{
			Type:    provisioning.EventCleanupSkipped,
			Message: fmt.Sprintf("no resource groups found for environment %s, nothing to clean up", env),
		})
		return nil
	}

	var errs []error
	for _, group := range groups {
		ctx.Observer.Event(provisioning.Event{
			Type:     provisioning.EventResourceDeleting,
			Resource: group.Name,
			Message:  "deleting resource group",
		})

		if err := ctx.Azure.DeleteResourceGroup(ctx, group.Name); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete resource group %s: %w", group.Name, err))
			continue
		}

		ctx.Observer.Event(provisioning.Event{
			Type:     provisioning.EventResourceDeleted,
			Resource: group.Name,
			Message:  "deleted",
		})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	ctx.Observer.Printf("[destroy] environment %s destroyed", env)
	return nil
}
