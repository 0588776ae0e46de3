package provisioning

import "github.com/webfleet-dev/webfleet/internal/util/naming"

// Environment shape. Three plans across three regions host five apps; the
// first plan hosts three of them. The traffic profile fronts the first
// three apps.
const (
	// PlanCount is the number of App Service plans per environment.
	PlanCount = 3
	// AppCount is the number of web apps per environment.
	AppCount = 5
	// ProfileEndpointCount is how many apps the traffic profile fronts.
	ProfileEndpointCount = 3

	// initialPlanCapacity is the worker capacity plans are created with;
	// the scale phase doubles it.
	initialPlanCapacity = 1
)

// appPlanAssignment maps each app index to the index of its hosting plan.
// Apps 4 and 5 land on the first plan, so plans 2 and 3 each host a single
// app.
var appPlanAssignment = [AppCount]int{0, 1, 2, 0, 0}

// endpointWeights are the traffic weights assigned to the profile endpoints
// in app order.
var endpointWeights = [ProfileEndpointCount]int64{3, 2, 1}

// Names holds every generated resource name for one run. All names are
// generated up front so the run report can list them even when a phase
// fails.
type Names struct {
	Group   string
	Domain  string
	Plans   [PlanCount]string
	Apps    [AppCount]string
	Profile string
}

// NewNames generates a full set of randomized resource names for env.
func NewNames(env string) *Names {
	n := &Names{
		Group:   naming.Group(env),
		Domain:  naming.Domain(env),
		Profile: naming.TrafficProfile(env),
	}
	for i := range n.Plans {
		n.Plans[i] = naming.Plan(env, i)
	}
	for i := range n.Apps {
		n.Apps[i] = naming.App(env, i)
	}
	return n
}
