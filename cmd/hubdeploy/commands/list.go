package commands

import (
	"github.com/spf13/cobra"

	"hubdeploy/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List installed apps and drivers on the hub",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hub, _ := cmd.Flags().GetString("hub")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			kind, _ := cmd.Flags().GetString("kind")

			var query string
			if len(args) > 0 {
				query = args[0]
			}

			return c.app.List(cmd.Context(), query, app.ListOptions{
				Hub:     hub,
				Kind:    kind,
				Timeout: timeout,
			})
		},
	}
	cmd.Flags().String("kind", "", "Limit the listing to one kind: app or driver")
	return cmd
}
