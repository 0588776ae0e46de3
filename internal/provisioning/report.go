package provisioning

// RunState tracks where a run is in its lifecycle. Transition into
// StateCleaningUp happens from both StateSucceeded and StateFailed; it is
// unconditional once the resource group exists.
type RunState string

const (
	StateNotStarted   RunState = "not-started"
	StateGroupCreated RunState = "group-created"
	StateProvisioning RunState = "provisioning"
	StateSucceeded    RunState = "succeeded"
	StateFailed       RunState = "failed"
	StateCleaningUp   RunState = "cleaning-up"
	StateDone         RunState = "done"
)

// Report summarizes one orchestrator run for rendering and inspection.
type Report struct {
	// Names are the generated resource names, available even when a phase
	// failed before creating its resource.
	Names *Names

	// State is the final lifecycle state of the run.
	State RunState

	// Resources is the provisioning state populated during the run.
	Resources *State

	// ProvisionErr is the recovered provisioning error, if any. It never
	// propagates past the orchestrator.
	ProvisionErr error

	// CleanupAttempted records whether a resource group deletion was
	// attempted; CleanupErr holds the swallowed deletion error, if any.
	CleanupAttempted bool
	CleanupErr       error
}
