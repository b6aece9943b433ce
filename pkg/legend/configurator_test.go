package legend

import (
	"errors"
	"math"
	"reflect"
	"testing"

	legendscaleerrors "github.com/mbeaudin/legendscale/pkg/errors"
	"github.com/mbeaudin/legendscale/pkg/scale"
	"github.com/mbeaudin/legendscale/pkg/spectrum"
)

func TestConfigureLinearDefaults(t *testing.T) {
	cfg, err := NewConfigurator(nil).Configure(Request{Max: 200, Min: 0, Guide: 15})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTicks := []float64{20, 40, 60, 80, 100, 120, 140, 160, 180, 200}
	if !reflect.DeepEqual(cfg.Ticks, wantTicks) {
		t.Errorf("Ticks = %v, want %v", cfg.Ticks, wantTicks)
	}
	if cfg.Intervals != 9 {
		t.Errorf("Intervals = %d, want 9", cfg.Intervals)
	}
	if cfg.Mode != ModeUniform {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeUniform)
	}
	if want := (scale.Format{Notation: scale.Fixed, Decimals: 0}); cfg.Format != want {
		t.Errorf("Format = %+v, want %+v", cfg.Format, want)
	}
	if cfg.SpectrumName != "Rainbow" {
		t.Errorf("SpectrumName = %q, want %q", cfg.SpectrumName, "Rainbow")
	}
	if cfg.Colors != nil {
		t.Errorf("Colors = %v, want nil for a builtin spectrum", cfg.Colors)
	}
	// The range sits entirely above zero, so clipped-low values grey out.
	if cfg.BelowColor != spectrum.NeutralHex {
		t.Errorf("BelowColor = %q, want %q", cfg.BelowColor, spectrum.NeutralHex)
	}
	if cfg.AboveColor != spectrum.MaroonHex {
		t.Errorf("AboveColor = %q, want %q", cfg.AboveColor, spectrum.MaroonHex)
	}
}

func TestConfigureLog(t *testing.T) {
	cfg, err := NewConfigurator(nil).Configure(Request{Max: 200, Min: 0, Guide: 15, Log: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTicks := []float64{1e-14, 1e-12, 1e-10, 1e-8, 1e-6, 1e-4, 1e-2, 1, 100}
	if !reflect.DeepEqual(cfg.Ticks, wantTicks) {
		t.Errorf("Ticks = %v, want %v", cfg.Ticks, wantTicks)
	}
	if cfg.Mode != ModeLog {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeLog)
	}
	if want := (scale.Format{Notation: scale.Scientific, Decimals: 1}); cfg.Format != want {
		t.Errorf("Format = %+v, want %+v", cfg.Format, want)
	}
	if cfg.BelowColor != spectrum.NeutralHex || cfg.AboveColor != spectrum.MaroonHex {
		t.Errorf("markers = %q, %q, want grey below and maroon above", cfg.BelowColor, cfg.AboveColor)
	}
}

func TestConfigureDiverging(t *testing.T) {
	req := Request{Max: 3, Min: 0, Guide: 12, Palette: "symmetric"}
	cfg, err := NewConfigurator(nil).Configure(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Min is forced to -Max and the even guide count is bumped to 13,
	// giving a half-unit grid; the zero tick splits into sentinels.
	wantTicks := []float64{-3, -2.5, -2, -1.5, -1, -0.5, -0.005, 0.005, 0.5, 1, 1.5, 2, 2.5, 3}
	if !reflect.DeepEqual(cfg.Ticks, wantTicks) {
		t.Errorf("Ticks = %v, want %v", cfg.Ticks, wantTicks)
	}
	if cfg.Intervals != 13 {
		t.Errorf("Intervals = %d, want 13", cfg.Intervals)
	}
	if cfg.Mode != ModeCustom {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeCustom)
	}
	if want := (scale.Format{Notation: scale.Fixed, Decimals: 2}); cfg.Format != want {
		t.Errorf("Format = %+v, want %+v", cfg.Format, want)
	}
	if len(cfg.Colors) != 13 {
		t.Fatalf("Colors has %d entries, want 13", len(cfg.Colors))
	}
	if cfg.Colors[6] != spectrum.NeutralHex {
		t.Errorf("Colors[6] = %q, want the pivot %q", cfg.Colors[6], spectrum.NeutralHex)
	}
	if cfg.Colors[0] != spectrum.NavyHex || cfg.Colors[12] != spectrum.MaroonHex {
		t.Errorf("Colors ends = %q, %q, want navy and maroon", cfg.Colors[0], cfg.Colors[12])
	}
	// A symmetric range straddles zero, so nothing greys out.
	if cfg.BelowColor != spectrum.NavyHex || cfg.AboveColor != spectrum.MaroonHex {
		t.Errorf("markers = %q, %q, want the table ends", cfg.BelowColor, cfg.AboveColor)
	}
	if cfg.SpectrumName != "symmetric" {
		t.Errorf("SpectrumName = %q, want %q", cfg.SpectrumName, "symmetric")
	}
}

func TestConfigureExactBounds(t *testing.T) {
	cfg, err := NewConfigurator(nil).Configure(Request{Max: 200.5, Min: 0, Guide: 15, MaxExact: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTicks := []float64{20, 40, 60, 80, 100, 120, 140, 160, 180, 200, 200.5}
	if !reflect.DeepEqual(cfg.Ticks, wantTicks) {
		t.Errorf("Ticks = %v, want %v", cfg.Ticks, wantTicks)
	}
	if cfg.Mode != ModeCustom {
		t.Errorf("Mode = %q, want %q after splicing", cfg.Mode, ModeCustom)
	}
	if want := (scale.Format{Notation: scale.Fixed, Decimals: 1}); cfg.Format != want {
		t.Errorf("Format = %+v, want %+v", cfg.Format, want)
	}

	// MinExact restores the zero tick the edge trim dropped.
	cfg, err = NewConfigurator(nil).Configure(Request{Max: 200, Min: 0, Guide: 15, MinExact: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Ticks) != 11 || cfg.Ticks[0] != 0 {
		t.Errorf("Ticks = %v, want the exact minimum in front", cfg.Ticks)
	}
	if cfg.Mode != ModeCustom {
		t.Errorf("Mode = %q, want %q after splicing", cfg.Mode, ModeCustom)
	}
}

func TestConfigureNormalizesSwappedBounds(t *testing.T) {
	c := NewConfigurator(nil)

	swapped, err := c.Configure(Request{Max: 0, Min: 200.5, MinExact: true, Guide: 15})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ordered, err := c.Configure(Request{Max: 200.5, Min: 0, MaxExact: true, Guide: 15})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(swapped, ordered) {
		t.Errorf("swapped bounds gave %+v, want %+v", swapped, ordered)
	}
}

func TestConfigureReverse(t *testing.T) {
	cfg, err := NewConfigurator(nil).Configure(Request{Max: 200, Min: 0, Guide: 15, Reverse: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SpectrumName != "Reversed rainbow" {
		t.Errorf("SpectrumName = %q, want %q", cfg.SpectrumName, "Reversed rainbow")
	}
	// Reversal swaps the markers and disables the grey-below override.
	if cfg.BelowColor != spectrum.MaroonHex || cfg.AboveColor != spectrum.NavyHex {
		t.Errorf("markers = %q, %q, want maroon below and navy above", cfg.BelowColor, cfg.AboveColor)
	}
}

func TestConfigureSequentialPalette(t *testing.T) {
	cfg, err := NewConfigurator(nil).Configure(Request{Max: 200, Min: 0, Guide: 15, Palette: "cbs-cool"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SpectrumName != "cbs-cool" {
		t.Errorf("SpectrumName = %q, want %q", cfg.SpectrumName, "cbs-cool")
	}
	if len(cfg.Colors) != cfg.Intervals || cfg.Intervals != 9 {
		t.Fatalf("got %d colors for %d intervals, want 9 each", len(cfg.Colors), cfg.Intervals)
	}
	for _, c := range cfg.Colors {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("malformed color %q", c)
		}
	}
	if cfg.Mode != ModeUniform {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeUniform)
	}
	// Grey-below applies to generated tables too.
	if cfg.BelowColor != spectrum.NeutralHex {
		t.Errorf("BelowColor = %q, want %q", cfg.BelowColor, spectrum.NeutralHex)
	}
	if cfg.AboveColor != cfg.Colors[8] {
		t.Errorf("AboveColor = %q, want the table's high end %q", cfg.AboveColor, cfg.Colors[8])
	}
}

func TestConfigureIdempotent(t *testing.T) {
	c := NewConfigurator(nil)
	req := Request{Max: 3, Min: 0, Guide: 12, Palette: "symmetric", Reverse: true}

	first, err := c.Configure(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Configure(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated requests diverged: %+v vs %+v", first, second)
	}
}

func TestConfigureErrors(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		kind string
	}{
		{"guide below one", Request{Max: 1, Min: 0, Guide: 0}, "validation"},
		{"equal bounds", Request{Max: 5, Min: 5, Guide: 10}, "range"},
		{"nan bound", Request{Max: math.NaN(), Min: 0, Guide: 10}, "range"},
		{"infinite bound", Request{Max: 0, Min: math.Inf(-1), Guide: 10}, "range"},
		{"unknown palette", Request{Max: 1, Min: 0, Guide: 10, Palette: "nope"}, "palette"},
		{"diverging on log scale", Request{Max: 1, Min: 0, Guide: 10, Palette: "symmetric", Log: true}, "palette"},
		{"diverging without positive max", Request{Max: -1, Min: -5, Guide: 10, Palette: "symmetric"}, "range"},
		{"degenerate tick count", Request{Max: 1, Min: -1, Guide: 1, Palette: "symmetric"}, "tick"},
	}

	c := NewConfigurator(nil)
	for _, tc := range cases {
		cfg, err := c.Configure(tc.req)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if cfg != nil {
			t.Errorf("%s: got partial config %+v alongside error", tc.name, cfg)
		}

		var matched bool
		switch tc.kind {
		case "range":
			var e *scale.RangeError
			matched = errors.As(err, &e)
		case "tick":
			var e *scale.TickError
			matched = errors.As(err, &e)
		case "palette":
			var e *legendscaleerrors.PaletteError
			matched = errors.As(err, &e)
		case "validation":
			var e *legendscaleerrors.ValidationError
			matched = errors.As(err, &e)
		}
		if !matched {
			t.Errorf("%s: wrong error type: %v", tc.name, err)
		}
	}
}

func TestSplitCenter(t *testing.T) {
	got := splitCenter([]float64{-1, 0, 1})
	want := []float64{-1, -0.01, 0.01, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitCenter = %v, want %v", got, want)
	}

	// Zero on the edge is a bound, not a center, and stays put.
	edge := []float64{0, 1, 2}
	if got := splitCenter(edge); !reflect.DeepEqual(got, edge) {
		t.Errorf("splitCenter moved an edge zero: %v", got)
	}

	plain := []float64{1, 2, 3}
	if got := splitCenter(plain); !reflect.DeepEqual(got, plain) {
		t.Errorf("splitCenter changed a zero-free sequence: %v", got)
	}
}
