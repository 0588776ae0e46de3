package commands

import (
	"github.com/spf13/cobra"

	"github.com/webfleet-dev/webfleet/cmd/webfleet/handlers"
)

// Up returns the up command.
//
// Unlike run, up keeps the provisioned environment around; use destroy
// to delete it later.
func Up() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Provision the environment and keep it",
		Long: `Up provisions the complete environment and leaves it running.

The same resources as "webfleet run" are created, but the resource group
is not deleted afterwards. A provisioning failure aborts with a non-zero
exit and leaves any partially created resources in place; use
"webfleet destroy" to remove them.

Example:
  webfleet up -c webfleet.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (defaults to webfleet.yaml)")

	return cmd
}
