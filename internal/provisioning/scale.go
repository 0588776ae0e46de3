package provisioning

import "fmt"

// scalePhase doubles the target capacity of every plan created in this run.
type scalePhase struct{}

func (p *scalePhase) Name() string { return "scale" }

func (p *scalePhase) Provision(ctx *Context) error {
	for i, plan := range ctx.State.Plans {
		updated, err := ctx.Azure.ScalePlan(ctx, ctx.State.Group.Name, plan, plan.TargetCapacity*2)
		if err != nil {
			return fmt.Errorf("failed to scale plan %s: %w", plan.Name, err)
		}

		ctx.State.Plans[i] = updated
		ctx.Observer.Printf("[scale] plan %s capacity %d -> %d", updated.Name, plan.TargetCapacity, updated.TargetCapacity)
	}
	return nil
}
