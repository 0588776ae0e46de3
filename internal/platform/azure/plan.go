package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armappservice "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
)

// App Service plan SKU used for every plan webfleet creates.
const (
	planSKUName = "S1"
	planSKUTier = "Standard"
)

// EnsurePlan creates or updates an App Service plan in region with the given
// worker capacity, blocking until the operation completes.
func (c *RealClient) EnsurePlan(ctx context.Context, group, name, region string, capacity int32) (*Plan, error) {
	return c.upsertPlan(ctx, group, name, region, capacity)
}

// ScalePlan sets the plan's target capacity. ARM has no partial update for
// the SKU block, so scaling reissues the full create-or-update with the new
// capacity.
func (c *RealClient) ScalePlan(ctx context.Context, group string, plan *Plan, capacity int32) (*Plan, error) {
	return c.upsertPlan(ctx, group, plan.Name, plan.Region, capacity)
}

func (c *RealClient) upsertPlan(ctx context.Context, group, name, region string, capacity int32) (*Plan, error) {
	poller, err := c.plans.BeginCreateOrUpdate(ctx, group, name, armappservice.Plan{
		Location: to.Ptr(region),
		SKU: &armappservice.SKUDescription{
			Name:     to.Ptr(planSKUName),
			Tier:     to.Ptr(planSKUTier),
			Capacity: to.Ptr(capacity),
		},
		Properties: &armappservice.PlanProperties{
			PerSiteScaling: to.Ptr(false),
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start plan update for %s: %w", name, err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to update plan %s: %w", name, err)
	}

	return planFromARM(resp.Plan, region), nil
}

func planFromARM(p armappservice.Plan, region string) *Plan {
	out := &Plan{Region: region}
	if p.ID != nil {
		out.ID = *p.ID
	}
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Location != nil {
		out.Region = *p.Location
	}
	if p.SKU != nil && p.SKU.Capacity != nil {
		out.TargetCapacity = *p.SKU.Capacity
	}
	return out
}
