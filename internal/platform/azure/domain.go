package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armappservice "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
)

// EnsureDomain purchases (or updates) an App Service domain in the given
// resource group, blocking until registration completes. The same contact is
// used for the admin, billing, registrant and tech roles.
func (c *RealClient) EnsureDomain(ctx context.Context, group, name string, contact Contact) (*Domain, error) {
	armContact := &armappservice.Contact{
		Email:     to.Ptr(contact.Email),
		NameFirst: to.Ptr(contact.FirstName),
		NameLast:  to.Ptr(contact.LastName),
		Phone:     to.Ptr(contact.Phone),
		AddressMailing: &armappservice.Address{
			Address1:   to.Ptr(contact.Address1),
			City:       to.Ptr(contact.City),
			State:      to.Ptr(contact.State),
			PostalCode: to.Ptr(contact.PostalCode),
			Country:    to.Ptr(contact.Country),
		},
	}

	poller, err := c.domains.BeginCreateOrUpdate(ctx, group, name, armappservice.Domain{
		// App Service domains are a global resource.
		Location: to.Ptr("global"),
		Properties: &armappservice.DomainProperties{
			ContactAdmin:      armContact,
			ContactBilling:    armContact,
			ContactRegistrant: armContact,
			ContactTech:       armContact,
			Privacy:           to.Ptr(true),
			AutoRenew:         to.Ptr(false),
			Consent: &armappservice.DomainPurchaseConsent{
				AgreedAt:      to.Ptr(time.Now().UTC()),
				AgreedBy:      to.Ptr(contact.Email),
				AgreementKeys: []*string{to.Ptr("DNRA"), to.Ptr("DNPA")},
			},
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start domain purchase for %s: %w", name, err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to purchase domain %s: %w", name, err)
	}

	domain := &Domain{Name: name}
	if resp.ID != nil {
		domain.ID = *resp.ID
	}
	if resp.Name != nil {
		domain.Name = *resp.Name
	}
	return domain, nil
}
