// Package provisioning runs the environment provisioning workflow: a fixed,
// ordered sequence of phases executed against an azure.Manager, with a
// guaranteed attempt to delete the owning resource group on every exit path
// once it exists.
package provisioning
