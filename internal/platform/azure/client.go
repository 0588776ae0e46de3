package azure

import "context"

// ResourceGroup is a created resource group handle.
type ResourceGroup struct {
	ID     string
	Name   string
	Region string
}

// Domain is a purchased App Service domain handle.
type Domain struct {
	ID   string
	Name string
}

// Plan is an App Service plan handle. TargetCapacity is the plan's worker
// capacity and can be changed after creation via ScalePlan.
type Plan struct {
	ID             string
	Name           string
	Region         string
	TargetCapacity int32
}

// App is a web app handle.
type App struct {
	ID              string
	Name            string
	Region          string
	DefaultHostname string
}

// TrafficProfile is a Traffic Manager profile handle.
type TrafficProfile struct {
	ID   string
	Name string
	FQDN string
}

// Contact holds the registrant information required for a domain purchase.
type Contact struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address1   string
	City       string
	State      string
	PostalCode string
	Country    string
}

// SiteConfig holds the runtime settings applied to a web app.
type SiteConfig struct {
	NetFrameworkVersion string
	PHPVersion          string
}

// RoutingMethod selects how a traffic profile distributes requests.
type RoutingMethod string

// RoutingWeighted splits traffic across endpoints by assigned weight.
const RoutingWeighted RoutingMethod = "Weighted"

// Endpoint is one weighted target of a traffic profile.
type Endpoint struct {
	Name     string
	TargetID string
	Weight   int64
}

// ResourceGroupManager defines the interface for managing resource groups.
type ResourceGroupManager interface {
	// EnsureResourceGroup creates (or updates) a resource group in region
	// with the given tags.
	EnsureResourceGroup(ctx context.Context, name, region string, tags map[string]string) (*ResourceGroup, error)
	// ListResourceGroupsByTag returns all resource groups carrying the tag
	// key=value.
	ListResourceGroupsByTag(ctx context.Context, key, value string) ([]*ResourceGroup, error)
	// DeleteResourceGroup deletes the named group and everything it owns,
	// blocking until the deletion completes.
	DeleteResourceGroup(ctx context.Context, name string) error
}

// DomainManager defines the interface for purchasing domains.
type DomainManager interface {
	EnsureDomain(ctx context.Context, group, name string, contact Contact) (*Domain, error)
}

// PlanManager defines the interface for managing App Service plans.
type PlanManager interface {
	EnsurePlan(ctx context.Context, group, name, region string, capacity int32) (*Plan, error)
	// ScalePlan updates the plan's target capacity and returns the updated
	// handle.
	ScalePlan(ctx context.Context, group string, plan *Plan, capacity int32) (*Plan, error)
}

// AppManager defines the interface for managing web apps.
type AppManager interface {
	// EnsureApp creates a web app bound to the plan identified by planID.
	EnsureApp(ctx context.Context, group, name, planID, region string, site SiteConfig) (*App, error)
}

// TrafficProfileManager defines the interface for managing Traffic Manager
// profiles.
type TrafficProfileManager interface {
	EnsureTrafficProfile(ctx context.Context, group, name string, routing RoutingMethod, endpoints []Endpoint) (*TrafficProfile, error)
}

// Manager combines all resource management interfaces.
type Manager interface {
	ResourceGroupManager
	DomainManager
	PlanManager
	AppManager
	TrafficProfileManager
}
