package provisioning

import (
	"fmt"

	"github.com/webfleet-dev/webfleet/internal/certs"
)

// certificatePhase generates a local self-signed certificate for the
// purchased domain. No remote call is involved.
type certificatePhase struct {
	names *Names
}

func (p *certificatePhase) Name() string { return "certificate" }

func (p *certificatePhase) Provision(ctx *Context) error {
	bundle, err := certs.CreateSelfSignedCertificate(
		p.names.Domain,
		ctx.Config.Certificate.OutputDir,
		ctx.Config.Certificate.Password,
	)
	if err != nil {
		return fmt.Errorf("failed to generate certificate for %s: %w", p.names.Domain, err)
	}

	ctx.State.Certificate = bundle
	ctx.Observer.Printf("[certificate] wrote %s", bundle.PFXPath)
	return nil
}
