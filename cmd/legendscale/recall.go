package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeaudin/legendscale/pkg/legend"
)

type recallOptions struct {
	jsonOutput bool
}

func newRecallCmd(root *rootFlags) *cobra.Command {
	opts := &recallOptions{}

	cmd := &cobra.Command{
		Use:   "recall <field>",
		Short: "Replay the remembered scale for a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecall(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runRecall(cmd *cobra.Command, root *rootFlags, opts *recallOptions, field string) error {
	st, path, err := openSettingsStore()
	if err != nil {
		return newCommandError("recall", "opening settings store", err, "Ensure your HOME directory is set correctly.")
	}

	if st.Ignored() {
		return newCommandError("recall", "reading stored settings",
			fmt.Errorf("settings file %s is marked ignore", path),
			"Remove the ignore flag from the settings file to use remembered scales.")
	}

	req, err := st.Get(field)
	if err != nil {
		return newCommandError("recall", "reading stored settings", err, "Run 'legendscale list' to see the remembered fields.")
	}

	registry, _, err := loadPaletteRegistry(root)
	if err != nil {
		return err
	}

	legendCfg, err := legend.NewConfigurator(registry).Configure(req)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderConfigJSON(cmd, field, req, legendCfg)
	}

	return renderConfigTable(cmd, field, legendCfg)
}
