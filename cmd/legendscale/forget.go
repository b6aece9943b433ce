package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type forgetOptions struct {
	all bool
}

func newForgetCmd(root *rootFlags) *cobra.Command {
	opts := &forgetOptions{}

	cmd := &cobra.Command{
		Use:   "forget [field]",
		Short: "Forget remembered field settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForget(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "Forget every remembered field")

	return cmd
}

func runForget(cmd *cobra.Command, opts *forgetOptions, args []string) error {
	if len(args) == 0 && !opts.all {
		return fmt.Errorf("forget needs a field name or --all")
	}
	if len(args) == 1 && opts.all {
		return fmt.Errorf("forget takes either a field name or --all, not both")
	}

	st, _, err := openSettingsStore()
	if err != nil {
		return newCommandError("forget", "opening settings store", err, "Ensure your HOME directory is set correctly.")
	}

	if opts.all {
		st.Reset()
	} else if err := st.Remove(args[0]); err != nil {
		return newCommandError("forget", "removing field settings", err, "Run 'legendscale list' to see the remembered fields.")
	}

	if err := st.Save(); err != nil {
		return newCommandError("forget", "saving settings file", err, "Check settings file permissions and try again.")
	}

	if opts.all {
		fmt.Fprintln(cmd.OutOrStdout(), "Forgot all remembered fields.")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Forgot settings for field %q.\n", args[0])
	}

	return nil
}
