package provisioning

import (
	"context"

	"github.com/webfleet-dev/webfleet/internal/config"
	"github.com/webfleet-dev/webfleet/internal/platform/azure"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Azure    azure.Manager
	Observer Observer
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, cfg *config.Config, mgr azure.Manager) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Azure:    mgr,
		Observer: NewConsoleObserver(),
	}
}
