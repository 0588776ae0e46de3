package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// EnsureResourceGroup creates or updates a resource group. Resource group
// creation is synchronous on the ARM side, no poller involved.
func (c *RealClient) EnsureResourceGroup(ctx context.Context, name, region string, tags map[string]string) (*ResourceGroup, error) {
	resp, err := c.groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(region),
		Tags:     toTagMap(tags),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource group %s: %w", name, err)
	}

	return resourceGroupFromARM(resp.ResourceGroup), nil
}

// ListResourceGroupsByTag returns every resource group carrying key=value.
func (c *RealClient) ListResourceGroupsByTag(ctx context.Context, key, value string) ([]*ResourceGroup, error) {
	pager := c.groups.NewListPager(&armresources.ResourceGroupsClientListOptions{
		Filter: to.Ptr(fmt.Sprintf("tagName eq '%s' and tagValue eq '%s'", key, value)),
	})

	var groups []*ResourceGroup
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list resource groups: %w", err)
		}
		for _, g := range page.Value {
			if g == nil {
				continue
			}
			groups = append(groups, resourceGroupFromARM(*g))
		}
	}
	return groups, nil
}

// DeleteResourceGroup deletes the named group and waits for the deletion to
// complete. Deleting a resource group removes every resource it owns.
func (c *RealClient) DeleteResourceGroup(ctx context.Context, name string) error {
	poller, err := c.groups.BeginDelete(ctx, name, nil)
	if err != nil {
		return fmt.Errorf("failed to start deletion of resource group %s: %w", name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to delete resource group %s: %w", name, err)
	}
	return nil
}

func resourceGroupFromARM(g armresources.ResourceGroup) *ResourceGroup {
	out := &ResourceGroup{}
	if g.ID != nil {
		out.ID = *g.ID
	}
	if g.Name != nil {
		out.Name = *g.Name
	}
	if g.Location != nil {
		out.Region = *g.Location
	}
	return out
}

func toTagMap(tags map[string]string) map[string]*string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]*string, len(tags))
	for k, v := range tags {
		out[k] = to.Ptr(v)
	}
	return out
}
