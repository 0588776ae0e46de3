package provisioning

import (
	"github.com/webfleet-dev/webfleet/internal/certs"
	"github.com/webfleet-dev/webfleet/internal/platform/azure"
)

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is read by
// subsequent phases that need earlier handles. Execution is single-threaded,
// so no locking is involved.
type State struct {
	// Group is the owning resource group. Set before any phase runs; the
	// cleanup step reads it to decide whether a deletion attempt is due.
	Group *azure.ResourceGroup

	// Domain and certificate results
	Domain      *azure.Domain
	Certificate *certs.Bundle

	// Plans in creation order; apps reference plans by index.
	Plans []*azure.Plan

	// Apps in creation order; the traffic profile references the first
	// three.
	Apps []*azure.App

	Profile *azure.TrafficProfile
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
