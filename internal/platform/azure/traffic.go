package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/trafficmanager/armtrafficmanager"
)

const azureEndpointType = "Microsoft.Network/trafficManagerProfiles/azureEndpoints"

// EnsureTrafficProfile creates or updates a Traffic Manager profile whose
// endpoints target the given resource IDs. Profile creation is synchronous
// on the ARM side. The profile name is also used as the DNS relative name.
func (c *RealClient) EnsureTrafficProfile(ctx context.Context, group, name string, routing RoutingMethod, endpoints []Endpoint) (*TrafficProfile, error) {
	armEndpoints := make([]*armtrafficmanager.Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		armEndpoints = append(armEndpoints, &armtrafficmanager.Endpoint{
			Name: to.Ptr(ep.Name),
			Type: to.Ptr(azureEndpointType),
			Properties: &armtrafficmanager.EndpointProperties{
				TargetResourceID: to.Ptr(ep.TargetID),
				Weight:           to.Ptr(ep.Weight),
				EndpointStatus:   to.Ptr(armtrafficmanager.EndpointStatusEnabled),
			},
		})
	}

	resp, err := c.profiles.CreateOrUpdate(ctx, group, name, armtrafficmanager.Profile{
		// Traffic Manager profiles are a global resource.
		Location: to.Ptr("global"),
		Properties: &armtrafficmanager.ProfileProperties{
			ProfileStatus:        to.Ptr(armtrafficmanager.ProfileStatusEnabled),
			TrafficRoutingMethod: to.Ptr(armtrafficmanager.TrafficRoutingMethod(routing)),
			DNSConfig: &armtrafficmanager.DNSConfig{
				RelativeName: to.Ptr(name),
				TTL:          to.Ptr[int64](300),
			},
			MonitorConfig: &armtrafficmanager.MonitorConfig{
				Protocol: to.Ptr(armtrafficmanager.MonitorProtocolHTTP),
				Port:     to.Ptr[int64](80),
				Path:     to.Ptr("/"),
			},
			Endpoints: armEndpoints,
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create traffic profile %s: %w", name, err)
	}

	profile := &TrafficProfile{Name: name}
	if resp.ID != nil {
		profile.ID = *resp.ID
	}
	if resp.Name != nil {
		profile.Name = *resp.Name
	}
	if resp.Properties != nil && resp.Properties.DNSConfig != nil && resp.Properties.DNSConfig.Fqdn != nil {
		profile.FQDN = *resp.Properties.DNSConfig.Fqdn
	}
	return profile, nil
}
