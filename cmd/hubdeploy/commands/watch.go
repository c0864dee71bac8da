package commands

import (
	"github.com/spf13/cobra"

	"hubdeploy/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file.groovy>",
		Short: "Deploy a file and redeploy it on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hub, _ := cmd.Flags().GetString("hub")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			typeID, _ := cmd.Flags().GetInt("id")
			kind, _ := cmd.Flags().GetString("kind")
			trace, _ := cmd.Flags().GetBool("trace")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Watch(cmd.Context(), args[0], app.WatchOptions{
				Hub:        hub,
				TypeID:     typeID,
				Kind:       kind,
				Timeout:    timeout,
				OutputMode: outputMode,
				Trace:      trace,
			})
		},
	}
	cmd.Flags().Int("id", 0, "Explicit type id, skips name resolution")
	cmd.Flags().String("kind", "", "Override classification: app or driver")
	cmd.Flags().Bool("trace", false, "Mirror deploy spans into the log")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
