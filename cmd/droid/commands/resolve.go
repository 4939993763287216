package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/droid/internal/app"
	"go.trai.ch/droid/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Resolve the build file and print the build descriptor",
		Long: "Resolve the nearest droid.yaml or droid.hcl, validate it and print the build descriptor.\n" +
			"The descriptor is recorded under .droid/descriptors so later runs can report changes.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			noStore, _ := cmd.Flags().GetBool("no-store")

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				ValidateOptions: targetOptions(cmd, args),
				Format:          format,
				NoStore:         noStore,
				Output:          cmd.OutOrStdout(),
			})
		},
	}

	addTargetFlags(cmd)
	cmd.Flags().StringP("format", "f", domain.FormatJSON, "Output format (json or yaml)")
	cmd.Flags().Bool("no-store", false, "Do not record the resolved descriptor")

	return cmd
}
