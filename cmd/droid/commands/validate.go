package commands

import "github.com/spf13/cobra"

func (c *CLI) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check the build file without printing a descriptor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Validate(cmd.Context(), targetOptions(cmd, args))
		},
	}

	addTargetFlags(cmd)

	return cmd
}
