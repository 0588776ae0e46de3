package provisioning

import (
	"fmt"

	"github.com/webfleet-dev/webfleet/internal/platform/azure"
)

// appsPhase creates the web apps, each bound to a plan created by the plans
// phase. Apps never reference a plan that does not exist yet.
type appsPhase struct {
	names *Names
}

func (p *appsPhase) Name() string { return "apps" }

func (p *appsPhase) Provision(ctx *Context) error {
	site := azure.SiteConfig{
		NetFrameworkVersion: ctx.Config.App.NetFrameworkVersion,
		PHPVersion:          ctx.Config.App.PHPVersion,
	}

	for i, name := range p.names.Apps {
		plan := ctx.State.Plans[appPlanAssignment[i]]

		app, err := ctx.Azure.EnsureApp(ctx, ctx.State.Group.Name, name, plan.ID, plan.Region, site)
		if err != nil {
			return fmt.Errorf("failed to create app %s on plan %s: %w", name, plan.Name, err)
		}

		ctx.State.Apps = append(ctx.State.Apps, app)
		LogResourceCreated(ctx.Observer, p.Name(), app.Name)
	}
	return nil
}
