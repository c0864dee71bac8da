package commands

import (
	"github.com/spf13/cobra"

	"hubdeploy/internal/app"
)

func (c *CLI) newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy <file.groovy>",
		Short: "Upload a Groovy source file to the hub",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hub, _ := cmd.Flags().GetString("hub")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			typeID, _ := cmd.Flags().GetInt("id")
			kind, _ := cmd.Flags().GetString("kind")
			trace, _ := cmd.Flags().GetBool("trace")

			return c.app.Deploy(cmd.Context(), args[0], app.DeployOptions{
				Hub:     hub,
				TypeID:  typeID,
				Kind:    kind,
				Timeout: timeout,
				Trace:   trace,
			})
		},
	}
	cmd.Flags().Int("id", 0, "Explicit type id, skips name resolution")
	cmd.Flags().String("kind", "", "Override classification: app or driver")
	cmd.Flags().Bool("trace", false, "Mirror deploy spans into the log")
	return cmd
}
