package provisioning

import (
	"fmt"

	"github.com/webfleet-dev/webfleet/internal/config"
	"github.com/webfleet-dev/webfleet/internal/platform/azure"
)

// domainPhase purchases the environment's domain.
type domainPhase struct {
	names *Names
}

func (p *domainPhase) Name() string { return "domain" }

func (p *domainPhase) Provision(ctx *Context) error {
	contact := contactFromConfig(ctx.Config)

	domain, err := ctx.Azure.EnsureDomain(ctx, ctx.State.Group.Name, p.names.Domain, contact)
	if err != nil {
		return fmt.Errorf("failed to purchase domain %s: %w", p.names.Domain, err)
	}

	ctx.State.Domain = domain
	LogResourceCreated(ctx.Observer, p.Name(), domain.Name)
	return nil
}

func contactFromConfig(cfg *config.Config) azure.Contact {
	c := cfg.Domain.Contact
	return azure.Contact{
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address1:   c.Address1,
		City:       c.City,
		State:      c.State,
		PostalCode: c.PostalCode,
		Country:    c.Country,
	}
}
