package commands

import (
	"github.com/spf13/cobra"

	"github.com/webfleet-dev/webfleet/cmd/webfleet/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command deletes every resource group tagged with the
// configured environment name, which removes all resources inside them.
func Destroy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete all resource groups belonging to the environment",
		Long: `Destroy removes every resource group tagged with the environment name.

Resource groups are looked up by the webfleet.io/environment tag, so the
command works even when the randomized group names are not known. Deleting
a resource group removes everything inside it: domains, plans, apps and
routing profiles. Running destroy against an environment with no remaining
resource groups is a no-op.

Example:
  webfleet destroy -c webfleet.yaml

WARNING: This operation is irreversible.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (defaults to webfleet.yaml)")

	return cmd
}
