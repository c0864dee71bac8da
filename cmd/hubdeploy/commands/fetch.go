package commands

import (
	"github.com/spf13/cobra"

	"hubdeploy/internal/app"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <name-or-id>",
		Short: "Download the hub's current source for a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hub, _ := cmd.Flags().GetString("hub")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			kind, _ := cmd.Flags().GetString("kind")
			output, _ := cmd.Flags().GetString("output")

			return c.app.Fetch(cmd.Context(), args[0], app.FetchOptions{
				Hub:     hub,
				Kind:    kind,
				Output:  output,
				Timeout: timeout,
			})
		},
	}
	cmd.Flags().String("kind", "", "Namespace to search: app or driver (numeric ids default to app)")
	cmd.Flags().StringP("output", "o", "", "Write the source to a file instead of stdout")
	return cmd
}
