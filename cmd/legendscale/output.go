package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mbeaudin/legendscale/pkg/legend"
	"github.com/mbeaudin/legendscale/pkg/scale"
)

func renderConfigTable(cmd *cobra.Command, field string, legendCfg *legend.Config) error {
	out := cmd.OutOrStdout()
	useColor := supportsColor(out)

	fmt.Fprintf(out, "Field:     %s\n", field)
	fmt.Fprintf(out, "Spectrum:  %s\n", legendCfg.SpectrumName)
	fmt.Fprintf(out, "Mode:      %s\n", legendCfg.Mode)
	fmt.Fprintf(out, "Intervals: %d\n", legendCfg.Intervals)
	fmt.Fprintf(out, "Format:    %s\n", describeFormat(legendCfg.Format))
	fmt.Fprintln(out)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TICK\tBAND")

	// Highest tick first, the way a legend reads on screen. The band
	// column holds the interval color directly below each tick.
	for i := len(legendCfg.Ticks) - 1; i >= 0; i-- {
		band := ""
		if i > 0 && len(legendCfg.Colors) > 0 {
			band = swatch(legendCfg.Colors[i-1], useColor)
		}
		fmt.Fprintf(writer, "%s\t%s\n", legendCfg.Format.Render(legendCfg.Ticks[i]), band)
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nBelow min: %s\n", swatch(legendCfg.BelowColor, useColor))
	fmt.Fprintf(out, "Above max: %s\n", swatch(legendCfg.AboveColor, useColor))

	return nil
}

type configJSONPayload struct {
	Version string         `json:"version"`
	Field   string         `json:"field"`
	Request legend.Request `json:"request"`
	Legend  legend.Config  `json:"legend"`
}

func renderConfigJSON(cmd *cobra.Command, field string, req legend.Request, legendCfg *legend.Config) error {
	payload := configJSONPayload{
		Version: "1.0",
		Field:   field,
		Request: req,
		Legend:  *legendCfg,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func describeFormat(f scale.Format) string {
	unit := "decimals"
	if f.Decimals == 1 {
		unit = "decimal"
	}

	return fmt.Sprintf("%s, %d %s", f.Notation, f.Decimals, unit)
}

// swatch renders a hex color, with a colored block when the output is a
// terminal that can show it.
func swatch(hex string, useColor bool) string {
	if hex == "" {
		return ""
	}
	if !useColor {
		return hex
	}

	return fmt.Sprintf("%s %s", hex, colorSwatch(hex))
}

func colorSwatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}

func supportsColor(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
