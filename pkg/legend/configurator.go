package legend

import (
	"fmt"
	"math"

	legendscaleerrors "github.com/mbeaudin/legendscale/pkg/errors"
	"github.com/mbeaudin/legendscale/pkg/scale"
	"github.com/mbeaudin/legendscale/pkg/spectrum"
)

// Configurator computes legend configurations against a palette registry.
type Configurator struct {
	registry *spectrum.Registry
}

// NewConfigurator creates a configurator. A nil registry falls back to a
// fresh one holding only the builtin palettes.
func NewConfigurator(registry *spectrum.Registry) *Configurator {
	if registry == nil {
		registry = spectrum.NewRegistry()
	}
	return &Configurator{registry: registry}
}

// Configure computes the legend configuration for a request. It is pure:
// identical requests produce identical configurations, and no partial
// configuration is ever returned alongside an error.
func (c *Configurator) Configure(req Request) (*Config, error) {
	if math.IsNaN(req.Max) || math.IsInf(req.Max, 0) || math.IsNaN(req.Min) || math.IsInf(req.Min, 0) {
		return nil, &scale.RangeError{Max: req.Max, Min: req.Min, Reason: "bounds must be finite"}
	}
	if req.Guide < 1 {
		return nil, legendscaleerrors.NewValidationError("guide", fmt.Sprintf("must be at least 1, got %d", req.Guide), nil)
	}

	if req.Max < req.Min {
		req.Max, req.Min = req.Min, req.Max
		req.MaxExact, req.MinExact = req.MinExact, req.MaxExact
	}
	if req.Max == req.Min {
		return nil, &scale.RangeError{Max: req.Max, Min: req.Min, Reason: "max and min are equal"}
	}

	name := req.Palette
	if name == "" {
		name = spectrum.DefaultPalette
	}
	pal, err := c.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	if pal.Kind == spectrum.KindDiverging {
		if req.Log {
			return nil, legendscaleerrors.NewPaletteError(pal.Name, fmt.Errorf("diverging palettes need a linear scale"))
		}
		if req.Max <= 0 {
			return nil, &scale.RangeError{Max: req.Max, Min: req.Min, Reason: "diverging palettes need a positive max"}
		}
		// Diverging spectrums are symmetric about zero, and an odd guide
		// count keeps zero on the grid.
		req.Min = -req.Max
		if req.Guide%2 == 0 {
			req.Guide++
		}
	}

	var ticks []float64
	if req.Log {
		ticks, err = scale.LogTicks(req.Max, req.Min, req.Guide)
	} else {
		ticks, err = scale.LinearTicks(req.Max, req.Min, req.Guide)
	}
	if err != nil {
		return nil, err
	}
	generated := len(ticks)

	final := make([]float64, 0, generated+3)
	if req.MinExact && generated > 0 && req.Min < ticks[0] {
		final = append(final, req.Min)
	}
	final = append(final, ticks...)
	if req.MaxExact && generated > 0 && req.Max > ticks[generated-1] {
		final = append(final, req.Max)
	}
	if pal.Kind == spectrum.KindDiverging {
		final = splitCenter(final)
	}
	if len(final) < 2 {
		return nil, &scale.TickError{Reason: "range produced fewer than 2 ticks"}
	}

	mode := ModeUniform
	switch {
	case len(final) != generated:
		mode = ModeCustom
	case req.Log:
		mode = ModeLog
	}

	var format scale.Format
	switch {
	case req.Log:
		format = scale.Format{Notation: scale.Scientific, Decimals: 1}
	case pal.Kind == spectrum.KindDiverging:
		format, err = scale.ChooseFormatSymmetric(final)
	default:
		format, err = scale.ChooseFormat(final)
	}
	if err != nil {
		return nil, err
	}

	table, err := pal.Table(len(final)-1, req.Reverse)
	if err != nil {
		return nil, err
	}
	below, above := markerColors(table, req)

	return &Config{
		Ticks:        final,
		Intervals:    len(final) - 1,
		Mode:         mode,
		Format:       format,
		SpectrumName: pal.DisplayName(req.Reverse),
		Colors:       table,
		BelowColor:   below,
		AboveColor:   above,
	}, nil
}

// splitCenter replaces an interior zero tick with two sentinels at one
// percent of its neighbors, carving a thin band around zero that takes
// the pivot color.
func splitCenter(ticks []float64) []float64 {
	for i := 1; i < len(ticks)-1; i++ {
		if ticks[i] != 0 {
			continue
		}
		split := make([]float64, 0, len(ticks)+1)
		split = append(split, ticks[:i]...)
		split = append(split, ticks[i-1]*0.01, ticks[i+1]*0.01)
		split = append(split, ticks[i+1:]...)
		return split
	}
	return ticks
}

// markerColors picks the colors shown for values outside the range. A
// range that does not straddle zero greys the below side so clipped
// values read as "no data" rather than extreme ones.
func markerColors(table []string, req Request) (below, above string) {
	switch {
	case len(table) > 0:
		below, above = table[0], table[len(table)-1]
	case req.Reverse:
		below, above = spectrum.MaroonHex, spectrum.NavyHex
	default:
		below, above = spectrum.NavyHex, spectrum.MaroonHex
	}
	if !req.Reverse && req.Min*req.Max >= 0 {
		below = spectrum.NeutralHex
	}
	return below, above
}
