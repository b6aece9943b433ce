package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeaudin/legendscale/internal/config"
	"github.com/mbeaudin/legendscale/pkg/legend"
)

type applyOptions struct {
	Field      string
	Max        float64
	Min        float64
	Guide      int
	Log        bool
	MaxExact   bool
	MinExact   bool
	Reverse    bool
	Palette    string
	JSONOutput bool
}

func newApplyCmd(root *rootFlags) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Compute a legend scale and remember it for the field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Field, "field", "f", "", "Displayed field the scale belongs to")
	cmd.Flags().Float64Var(&opts.Max, "max", 0, "Upper bound of the displayed values")
	cmd.Flags().Float64Var(&opts.Min, "min", 0, "Lower bound of the displayed values")
	cmd.Flags().IntVar(&opts.Guide, "guide", 0, "Number of tick intervals to aim for (default 12)")
	cmd.Flags().BoolVar(&opts.Log, "log", false, "Use a logarithmic scale")
	cmd.Flags().BoolVar(&opts.MaxExact, "max-exact", false, "Keep the exact upper bound as a tick")
	cmd.Flags().BoolVar(&opts.MinExact, "min-exact", false, "Keep the exact lower bound as a tick")
	cmd.Flags().BoolVar(&opts.Reverse, "reverse", false, "Reverse the color spectrum")
	cmd.Flags().StringVarP(&opts.Palette, "palette", "p", "", "Palette name (default rainbow)")
	cmd.Flags().BoolVar(&opts.JSONOutput, "json", false, "Output in JSON format")
	cmd.MarkFlagRequired("field") //nolint:errcheck
	cmd.MarkFlagRequired("max")   //nolint:errcheck

	return cmd
}

func runApply(cmd *cobra.Command, root *rootFlags, opts *applyOptions) error {
	log, err := newCommandLogger(root)
	if err != nil {
		return err
	}

	registry, cfg, err := loadPaletteRegistry(root)
	if err != nil {
		return err
	}

	req := legend.Request{
		Max:      opts.Max,
		Min:      opts.Min,
		Guide:    opts.Guide,
		Log:      opts.Log,
		MaxExact: opts.MaxExact,
		MinExact: opts.MinExact,
		Reverse:  opts.Reverse,
		Palette:  opts.Palette,
	}
	resolveRequestDefaults(&req, cfg)

	legendCfg, err := legend.NewConfigurator(registry).Configure(req)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"field":     opts.Field,
		"intervals": legendCfg.Intervals,
		"mode":      string(legendCfg.Mode),
	}).Debug("legend configured")

	st, path, err := openSettingsStore()
	if err != nil {
		return newCommandError("apply", "opening settings store", err, "Ensure your HOME directory is set correctly.")
	}

	if st.Ignored() {
		log.WithFields(map[string]any{"path": path}).Warn("settings file is marked ignore, not remembering")
	} else {
		if err := st.Put(opts.Field, req); err != nil {
			return newCommandError("apply", "remembering field settings", err, "Pass a non-empty --field name.")
		}
		if err := st.Save(); err != nil {
			return newCommandError("apply", "saving settings file", err, "Check settings file permissions and try again.")
		}
	}

	if opts.JSONOutput {
		return renderConfigJSON(cmd, opts.Field, req, legendCfg)
	}

	return renderConfigTable(cmd, opts.Field, legendCfg)
}

// resolveRequestDefaults fills unset request values from the configuration
// file, falling back to the built-in defaults.
func resolveRequestDefaults(req *legend.Request, cfg *config.Config) {
	if req.Guide == 0 {
		req.Guide = config.DefaultGuide
		if cfg != nil && cfg.Defaults.Guide > 0 {
			req.Guide = cfg.Defaults.Guide
		}
	}

	if req.Palette == "" && cfg != nil {
		req.Palette = cfg.Defaults.Palette
	}
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}
