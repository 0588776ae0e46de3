package provisioning

import (
	"fmt"
	"time"
)

// Phase is a single step of the provisioning workflow.
type Phase interface {
	Name() string
	Provision(ctx *Context) error
}

// RunPhases executes all provisioning phases sequentially. Each phase only
// starts after the previous one completed, since later phases need handles
// produced by earlier ones.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.Observer.Event(Event{Type: EventPhaseStarted, Phase: phase.Name(), Message: "starting"})

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Event(Event{Type: EventPhaseFailed, Phase: phase.Name(), Message: fmt.Sprintf("failed: %v", err)})
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.Event(Event{
			Type:    EventPhaseCompleted,
			Phase:   phase.Name(),
			Message: fmt.Sprintf("%s completed in %v", name, time.Since(phaseStart).Round(time.Millisecond)),
		})
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
