// Package commands implements the CLI commands for droid.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/droid/internal/app"
	"go.trai.ch/droid/internal/build"
	"go.trai.ch/droid/internal/core/ports"
)

// CLI represents the command line interface for droid.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, opts app.ResolveOptions) error
	Validate(ctx context.Context, opts app.ValidateOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "droid",
		Short:         "Resolve Android build configuration into a validated build descriptor",
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

	rootCmd.PersistentFlags().Bool("log-json", false, "Write log output as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		logger.SetJSON(jsonLogs)
	}

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newValidateCmd())
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

// addTargetFlags registers the flags shared by resolve and validate.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("build-type", "b", "", "Build type to resolve (debug, profile or release)")
	cmd.Flags().Bool("ack-debug-signing", false, "Allow a release build to be signed with the debug key")
}

func targetOptions(cmd *cobra.Command, args []string) app.ValidateOptions {
	buildType, _ := cmd.Flags().GetString("build-type")
	ack, _ := cmd.Flags().GetBool("ack-debug-signing")

	opts := app.ValidateOptions{
		Path:                    ".",
		BuildType:               buildType,
		AcknowledgeDebugSigning: ack,
	}
	if len(args) > 0 {
		opts.Path = args[0]
	}
	return opts
}
