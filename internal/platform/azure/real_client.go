package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	armappservice "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/trafficmanager/armtrafficmanager"
)

// RealClient implements Manager using the Azure Resource Manager API.
type RealClient struct {
	subscription string
	groups       *armresources.ResourceGroupsClient
	domains      *armappservice.DomainsClient
	plans        *armappservice.PlansClient
	apps         *armappservice.WebAppsClient
	profiles     *armtrafficmanager.ProfilesClient
}

// NewRealClient creates a RealClient for the given subscription using cred
// for every management-plane client.
func NewRealClient(cred azcore.TokenCredential, subscription string) (*RealClient, error) {
	groups, err := armresources.NewResourceGroupsClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	domains, err := armappservice.NewDomainsClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create domains client: %w", err)
	}
	plans, err := armappservice.NewPlansClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create plans client: %w", err)
	}
	apps, err := armappservice.NewWebAppsClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create web apps client: %w", err)
	}
	profiles, err := armtrafficmanager.NewProfilesClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create traffic manager client: %w", err)
	}

	return &RealClient{
		subscription: subscription,
		groups:       groups,
		domains:      domains,
		plans:        plans,
		apps:         apps,
		profiles:     profiles,
	}, nil
}

// Subscription returns the subscription ID the client operates on.
func (c *RealClient) Subscription() string {
	return c.subscription
}
