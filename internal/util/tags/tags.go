// Package tags provides consistent tagging for Azure resources.
//
// All tags use the webfleet.io prefix for namespacing. The environment tag
// on the resource group is what makes an environment discoverable for
// teardown: every resource webfleet creates lives inside a tagged group, so
// deleting the group removes the whole environment.
package tags

// Standard tag keys for webfleet-managed resources.
const (
	// KeyEnvironment identifies which environment a resource belongs to.
	KeyEnvironment = "webfleet.io/environment"

	// KeyManagedBy identifies the management system.
	KeyManagedBy = "webfleet.io/managed-by"
)

// ManagedByWebfleet is the value recorded under KeyManagedBy.
const ManagedByWebfleet = "webfleet"

// ForEnvironment returns the standard tag set for resources belonging to env.
// Extra tags are merged in; standard keys win on conflict.
func ForEnvironment(env string, extra map[string]string) map[string]string {
	out := make(map[string]string, len(extra)+2)
	for k, v := range extra {
		out[k] = v
	}
	out[KeyEnvironment] = env
	out[KeyManagedBy] = ManagedByWebfleet
	return out
}
