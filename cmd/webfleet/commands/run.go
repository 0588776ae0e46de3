package commands

import (
	"github.com/spf13/cobra"

	"github.com/webfleet-dev/webfleet/cmd/webfleet/handlers"
)

// Run returns the run command.
//
// The run command provisions the full environment end to end and always
// deletes the resource group afterwards, making it safe to use as a demo
// or smoke test against a real subscription.
func Run() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Provision the environment and tear it down afterwards",
		Long: `Run provisions the complete environment and then deletes it.

The following resources are created inside a single resource group:
  - A registered domain
  - A self-signed certificate for the domain (written locally)
  - Three hosting plans, one per configured region
  - Five web apps distributed across the plans
  - A weighted traffic routing profile over the first three apps

After provisioning, every plan is scaled to twice its capacity to
demonstrate the update path. The resource group is deleted on the way
out regardless of whether provisioning succeeded.

Example:
  webfleet run -c webfleet.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Run(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (defaults to webfleet.yaml)")

	return cmd
}
