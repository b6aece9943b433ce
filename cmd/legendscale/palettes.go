package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mbeaudin/legendscale/pkg/spectrum"
)

// previewSwatches is the number of interval colors shown per palette.
const previewSwatches = 5

type palettesOptions struct {
	jsonOutput bool
}

func newPalettesCmd(root *rootFlags) *cobra.Command {
	opts := &palettesOptions{}

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List the available color palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalettes(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPalettes(cmd *cobra.Command, root *rootFlags, opts *palettesOptions) error {
	registry, _, err := loadPaletteRegistry(root)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderPalettesJSON(cmd, registry)
	}

	return renderPalettesTable(cmd, registry)
}

func renderPalettesTable(cmd *cobra.Command, registry *spectrum.Registry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	useColor := supportsColor(cmd.OutOrStdout())

	fmt.Fprintln(writer, "NAME\tKIND\tPREVIEW")

	for _, name := range registry.Names() {
		pal, err := registry.Lookup(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\n", pal.Name, pal.Kind, palettePreview(pal, useColor))
	}

	return writer.Flush()
}

// palettePreview renders a short run of interval colors. Builtin ramps
// have no table; the display device resolves them by name.
func palettePreview(pal spectrum.Palette, useColor bool) string {
	table, err := pal.Table(previewSwatches, false)
	if err != nil {
		return "(unavailable)"
	}
	if table == nil {
		return "(device ramp)"
	}

	if useColor {
		blocks := make([]string, len(table))
		for i, hex := range table {
			blocks[i] = colorSwatch(hex)
		}
		return strings.Join(blocks, "")
	}

	return strings.Join(table, " ")
}

type paletteJSONEntry struct {
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Colors []string `json:"colors,omitempty"`
}

type palettesJSONPayload struct {
	Version  string             `json:"version"`
	Count    int                `json:"count"`
	Palettes []paletteJSONEntry `json:"palettes"`
}

func renderPalettesJSON(cmd *cobra.Command, registry *spectrum.Registry) error {
	names := registry.Names()
	payload := palettesJSONPayload{
		Version:  "1.0",
		Count:    len(names),
		Palettes: make([]paletteJSONEntry, 0, len(names)),
	}

	for _, name := range names {
		pal, err := registry.Lookup(name)
		if err != nil {
			return err
		}

		table, err := pal.Table(previewSwatches, false)
		if err != nil {
			return err
		}

		payload.Palettes = append(payload.Palettes, paletteJSONEntry{
			Name:   pal.Name,
			Kind:   string(pal.Kind),
			Colors: table,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
