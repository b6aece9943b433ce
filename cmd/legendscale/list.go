package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mbeaudin/legendscale/internal/store"
	"github.com/mbeaudin/legendscale/pkg/spectrum"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the remembered field settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	st, _, err := openSettingsStore()
	if err != nil {
		return newCommandError("list", "opening settings store", err, "Ensure your HOME directory is set correctly.")
	}

	entries := st.List()
	if len(entries) == 0 {
		return renderEmptyList(cmd)
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, st, entries)
	}

	return renderListTable(cmd, entries)
}

func renderEmptyList(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "No field settings remembered yet.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'legendscale apply --field <name> --max <value>' to remember your first scale.")
	return nil
}

func renderListTable(cmd *cobra.Command, entries []store.Entry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "FIELD\tMAX\tMIN\tGUIDE\tSCALE\tPALETTE")

	for _, entry := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\t%s\n",
			entry.Field,
			formatBound(entry.Request.Max),
			formatBound(entry.Request.Min),
			entry.Request.Guide,
			scaleName(entry.Request.Log),
			valueOrFallback(entry.Request.Palette, spectrum.DefaultPalette),
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version     string        `json:"version"`
	Description string        `json:"description,omitempty"`
	Count       int           `json:"count"`
	Fields      []store.Entry `json:"fields"`
}

func renderListJSON(cmd *cobra.Command, st *store.Store, entries []store.Entry) error {
	payload := listJSONPayload{
		Version:     "1.0",
		Description: st.Description(),
		Count:       len(entries),
		Fields:      entries,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func scaleName(log bool) string {
	if log {
		return "log"
	}
	return "linear"
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
