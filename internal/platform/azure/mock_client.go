package azure

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of Manager. Each method delegates to
// the corresponding Func field when set and otherwise returns a benign
// default, so tests only stub what they care about.
type MockClient struct {
	EnsureResourceGroupFunc     func(ctx context.Context, name, region string, tags map[string]string) (*ResourceGroup, error)
	ListResourceGroupsByTagFunc func(ctx context.Context, key, value string) ([]*ResourceGroup, error)
	DeleteResourceGroupFunc     func(ctx context.Context, name string) error

	EnsureDomainFunc func(ctx context.Context, group, name string, contact Contact) (*Domain, error)

	EnsurePlanFunc func(ctx context.Context, group, name, region string, capacity int32) (*Plan, error)
	ScalePlanFunc  func(ctx context.Context, group string, plan *Plan, capacity int32) (*Plan, error)

	EnsureAppFunc func(ctx context.Context, group, name, planID, region string, site SiteConfig) (*App, error)

	EnsureTrafficProfileFunc func(ctx context.Context, group, name string, routing RoutingMethod, endpoints []Endpoint) (*TrafficProfile, error)
}

// EnsureResourceGroup implements ResourceGroupManager.
func (m *MockClient) EnsureResourceGroup(ctx context.Context, name, region string, tags map[string]string) (*ResourceGroup, error) {
	if m.EnsureResourceGroupFunc != nil {
		return m.EnsureResourceGroupFunc(ctx, name, region, tags)
	}
	return &ResourceGroup{ID: "/subscriptions/mock/resourceGroups/" + name, Name: name, Region: region}, nil
}

// ListResourceGroupsByTag implements ResourceGroupManager.
func (m *MockClient) ListResourceGroupsByTag(ctx context.Context, key, value string) ([]*ResourceGroup, error) {
	if m.ListResourceGroupsByTagFunc != nil {
		return m.ListResourceGroupsByTagFunc(ctx, key, value)
	}
	return nil, nil
}

// DeleteResourceGroup implements ResourceGroupManager.
func (m *MockClient) DeleteResourceGroup(ctx context.Context, name string) error {
	if m.DeleteResourceGroupFunc != nil {
		return m.DeleteResourceGroupFunc(ctx, name)
	}
	return nil
}

// EnsureDomain implements DomainManager.
func (m *MockClient) EnsureDomain(ctx context.Context, group, name string, contact Contact) (*Domain, error) {
	if m.EnsureDomainFunc != nil {
		return m.EnsureDomainFunc(ctx, group, name, contact)
	}
	return &Domain{ID: "mock-domain-id", Name: name}, nil
}

// EnsurePlan implements PlanManager.
func (m *MockClient) EnsurePlan(ctx context.Context, group, name, region string, capacity int32) (*Plan, error) {
	if m.EnsurePlanFunc != nil {
		return m.EnsurePlanFunc(ctx, group, name, region, capacity)
	}
	return &Plan{
		ID:             fmt.Sprintf("/subscriptions/mock/resourceGroups/%s/providers/Microsoft.Web/serverfarms/%s", group, name),
		Name:           name,
		Region:         region,
		TargetCapacity: capacity,
	}, nil
}

// ScalePlan implements PlanManager.
func (m *MockClient) ScalePlan(ctx context.Context, group string, plan *Plan, capacity int32) (*Plan, error) {
	if m.ScalePlanFunc != nil {
		return m.ScalePlanFunc(ctx, group, plan, capacity)
	}
	updated := *plan
	updated.TargetCapacity = capacity
	return &updated, nil
}

// EnsureApp implements AppManager.
func (m *MockClient) EnsureApp(ctx context.Context, group, name, planID, region string, site SiteConfig) (*App, error) {
	if m.EnsureAppFunc != nil {
		return m.EnsureAppFunc(ctx, group, name, planID, region, site)
	}
	return &App{
		ID:              fmt.Sprintf("/subscriptions/mock/resourceGroups/%s/providers/Microsoft.Web/sites/%s", group, name),
		Name:            name,
		Region:          region,
		DefaultHostname: name + ".azurewebsites.net",
	}, nil
}

// EnsureTrafficProfile implements TrafficProfileManager.
func (m *MockClient) EnsureTrafficProfile(ctx context.Context, group, name string, routing RoutingMethod, endpoints []Endpoint) (*TrafficProfile, error) {
	if m.EnsureTrafficProfileFunc != nil {
		return m.EnsureTrafficProfileFunc(ctx, group, name, routing, endpoints)
	}
	return &TrafficProfile{ID: "mock-profile-id", Name: name, FQDN: name + ".trafficmanager.net"}, nil
}
