package provisioning

import (
	"context"
	"fmt"

	"github.com/webfleet-dev/webfleet/internal/config"
	"github.com/webfleet-dev/webfleet/internal/platform/azure"
	"github.com/webfleet-dev/webfleet/internal/util/tags"
)

// Orchestrator executes the fixed provisioning workflow for one
// environment: resource group, domain, certificate, plans, apps, traffic
// profile, plan scaling.
type Orchestrator struct {
	cfg      *config.Config
	mgr      azure.Manager
	observer Observer
}

// NewOrchestrator creates an orchestrator with a console observer.
func NewOrchestrator(cfg *config.Config, mgr azure.Manager) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		mgr:      mgr,
		observer: NewConsoleObserver(),
	}
}

// SetObserver replaces the observer (useful for tests).
func (o *Orchestrator) SetObserver(obs Observer) {
	o.observer = obs
}

func (o *Orchestrator) phases(names *Names) []Phase {
	return []Phase{
		&domainPhase{names: names},
		&certificatePhase{names: names},
		&plansPhase{names: names},
		&appsPhase{names: names},
		&trafficPhase{names: names},
		&scalePhase{},
	}
}

// Run provisions the full environment and then always attempts to delete
// the resource group, whether provisioning succeeded or not.
//
// Only resource group creation can fail the run: at that point nothing
// exists yet, so there is nothing to clean up and the error propagates.
// Any later provisioning error is recovered here, recorded on the report,
// and does not prevent cleanup. Cleanup errors are recorded and swallowed.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	pCtx, report, err := o.start(ctx)
	if err != nil {
		return report, err
	}

	defer func() {
		report.State = StateCleaningUp
		o.cleanup(pCtx, report)
		report.State = StateDone
	}()

	report.State = StateProvisioning
	if err := RunPhases(pCtx, o.phases(report.Names)); err != nil {
		report.State = StateFailed
		report.ProvisionErr = err
		o.observer.Printf("provisioning failed: %v", err)
		return report, nil
	}

	report.State = StateSucceeded
	return report, nil
}

// Provision provisions the environment and keeps it. Provisioning errors
// propagate; the caller decides whether to tear down.
func (o *Orchestrator) Provision(ctx context.Context) (*Report, error) {
	pCtx, report, err := o.start(ctx)
	if err != nil {
		return report, err
	}

	report.State = StateProvisioning
	if err := RunPhases(pCtx, o.phases(report.Names)); err != nil {
		report.State = StateFailed
		report.ProvisionErr = err
		return report, err
	}

	report.State = StateSucceeded
	return report, nil
}

// start generates names and creates the owning resource group. The group is
// created in the first configured region.
func (o *Orchestrator) start(ctx context.Context) (*Context, *Report, error) {
	names := NewNames(o.cfg.Environment)

	pCtx := NewContext(ctx, o.cfg, o.mgr)
	pCtx.Observer = o.observer

	report := &Report{
		Names:     names,
		State:     StateNotStarted,
		Resources: pCtx.State,
	}

	group, err := o.mgr.EnsureResourceGroup(pCtx, names.Group, o.cfg.Regions[0],
		tags.ForEnvironment(o.cfg.Environment, o.cfg.Tags))
	if err != nil {
		return nil, report, fmt.Errorf("failed to create resource group %s: %w", names.Group, err)
	}

	pCtx.State.Group = group
	report.State = StateGroupCreated
	LogResourceCreated(o.observer, "group", group.Name)

	return pCtx, report, nil
}

// cleanup deletes the resource group, waiting for completion. A group
// handle that was never obtained means nothing was created; that is a
// benign no-op, not an error.
func (o *Orchestrator) cleanup(ctx *Context, report *Report) {
	if ctx.State.Group == nil {
		o.observer.Event(Event{Type: EventCleanupSkipped, Message: "no cleanup necessary"})
		return
	}

	report.CleanupAttempted = true
	o.observer.Event(Event{
		Type:     EventResourceDeleting,
		Resource: ctx.State.Group.Name,
		Message:  "deleting resource group",
	})

	if err := o.mgr.DeleteResourceGroup(ctx, ctx.State.Group.Name); err != nil {
		report.CleanupErr = err
		o.observer.Event(Event{
			Type:     EventCleanupFailed,
			Resource: ctx.State.Group.Name,
			Message:  fmt.Sprintf("failed: %v", err),
		})
		return
	}

	o.observer.Event(Event{
		Type:     EventResourceDeleted,
		Resource: ctx.State.Group.Name,
		Message:  "deleted",
	})
}
