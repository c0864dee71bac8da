// Package commands implements the CLI commands for the hubdeploy tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hubdeploy/internal/app"
	"hubdeploy/internal/build"
)

// CLI represents the command line interface for hubdeploy.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Deploy(ctx context.Context, path string, opts app.DeployOptions) error
	List(ctx context.Context, query string, opts app.ListOptions) error
	Fetch(ctx context.Context, nameOrID string, opts app.FetchOptions) error
	Watch(ctx context.Context, path string, opts app.WatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hubdeploy",
		Short:         "Deploy Groovy apps and drivers to a home-automation hub",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Target selection is shared by every subcommand.
	rootCmd.PersistentFlags().String("hub", "", "Hub host or configured alias (default from hubdeploy.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Hub request timeout (default from hubdeploy.yaml)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newDeployCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
