package provisioning

import (
	"fmt"

	"github.com/webfleet-dev/webfleet/internal/platform/azure"
)

// trafficPhase creates the weighted Traffic Manager profile fronting the
// first three apps. The endpoint list is always the first three apps
// regardless of how many exist.
type trafficPhase struct {
	names *Names
}

func (p *trafficPhase) Name() string { return "traffic" }

func (p *trafficPhase) Provision(ctx *Context) error {
	count := ProfileEndpointCount
	if len(ctx.State.Apps) < count {
		count = len(ctx.State.Apps)
	}

	endpoints := make([]azure.Endpoint, 0, count)
	for i := 0; i < count; i++ {
		app := ctx.State.Apps[i]
		endpoints = append(endpoints, azure.Endpoint{
			Name:     app.Name,
			TargetID: app.ID,
			Weight:   endpointWeights[i],
		})
	}

	profile, err := ctx.Azure.EnsureTrafficProfile(ctx, ctx.State.Group.Name, p.names.Profile, azure.RoutingWeighted, endpoints)
	if err != nil {
		return fmt.Errorf("failed to create traffic profile %s: %w", p.names.Profile, err)
	}

	ctx.State.Profile = profile
	LogResourceCreated(ctx.Observer, p.Name(), profile.Name)
	return nil
}
