package commands

import (
	"github.com/spf13/cobra"

	"github.com/webfleet-dev/webfleet/cmd/webfleet/handlers"
)

// Init returns the init command.
func Init() *cobra.Command {
	var (
		outputPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Long: `Init writes a starter configuration file.

When run on a terminal, an interactive wizard asks for the environment
name and the plan regions. With --yes (or when stdin is not a terminal)
a fully defaulted configuration is written instead.

Example:
  webfleet init
  webfleet init --yes -o staging.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(outputPath, yes)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (defaults to webfleet.yaml)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the wizard and accept all defaults")

	return cmd
}
