package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armappservice "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
)

// EnsureApp creates or updates a web app hosted on the plan identified by
// planID, blocking until the operation completes. The app must be created in
// the plan's region.
func (c *RealClient) EnsureApp(ctx context.Context, group, name, planID, region string, site SiteConfig) (*App, error) {
	siteConfig := &armappservice.SiteConfig{}
	if site.NetFrameworkVersion != "" {
		siteConfig.NetFrameworkVersion = to.Ptr(site.NetFrameworkVersion)
	}
	if site.PHPVersion != "" {
		siteConfig.PhpVersion = to.Ptr(site.PHPVersion)
	}

	poller, err := c.apps.BeginCreateOrUpdate(ctx, group, name, armappservice.Site{
		Location: to.Ptr(region),
		Properties: &armappservice.SiteProperties{
			ServerFarmID: to.Ptr(planID),
			SiteConfig:   siteConfig,
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start web app creation for %s: %w", name, err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create web app %s: %w", name, err)
	}

	app := &App{Region: region}
	if resp.ID != nil {
		app.ID = *resp.ID
	}
	if resp.Name != nil {
		app.Name = *resp.Name
	}
	if resp.Properties != nil && resp.Properties.DefaultHostName != nil {
		app.DefaultHostname = *resp.Properties.DefaultHostName
	}
	return app, nil
}
