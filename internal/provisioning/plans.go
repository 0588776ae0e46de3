package provisioning

import "fmt"

// plansPhase creates one App Service plan per configured region, in config
// order.
type plansPhase struct {
	names *Names
}

func (p *plansPhase) Name() string { return "plans" }

func (p *plansPhase) Provision(ctx *Context) error {
	for i, region := range ctx.Config.Regions {
		plan, err := ctx.Azure.EnsurePlan(ctx, ctx.State.Group.Name, p.names.Plans[i], region, initialPlanCapacity)
		if err != nil {
			return fmt.Errorf("failed to create plan %s in %s: %w", p.names.Plans[i], region, err)
		}

		ctx.State.Plans = append(ctx.State.Plans, plan)
		LogResourceCreated(ctx.Observer, p.Name(), plan.Name)
	}
	return nil
}
