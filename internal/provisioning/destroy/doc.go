// Package destroy deletes every resource group belonging to an environment.
package destroy
