package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "legendscale",
		Short:         "legendscale builds contour legend scales with round tick values",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a palette configuration file")

	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newRecallCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newForgetCmd(flags))
	cmd.AddCommand(newPalettesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
