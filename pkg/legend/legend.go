// Package legend turns a requested display range into a complete legend
// configuration: tick marks, a numeric display format, and a color
// spectrum with out-of-range marker colors.
package legend

import (
	"github.com/mbeaudin/legendscale/pkg/scale"
)

// Mode tells the consumer how to lay legend intervals out.
type Mode string

const (
	// ModeUniform means evenly spaced intervals between the first and
	// last tick.
	ModeUniform Mode = "uniform"
	// ModeLog means logarithmically spaced intervals.
	ModeLog Mode = "log"
	// ModeCustom means the tick values are not evenly spaced and must be
	// applied one by one.
	ModeCustom Mode = "custom"
)

// Request captures everything a caller chooses about a legend. The same
// shape is persisted per displayed field and replayed later, so a stored
// request and a fresh one are indistinguishable.
type Request struct {
	// Max and Min bound the displayed range. They are normalized so a
	// swapped pair is accepted.
	Max float64 `json:"max"`
	Min float64 `json:"min"`
	// Guide is the target number of intervals. It is a hint; the
	// generators stay at or below it.
	Guide int `json:"guide"`
	// Log selects logarithmic tick spacing.
	Log bool `json:"log,omitempty"`
	// MaxExact and MinExact splice the true bound into the tick sequence
	// when it falls outside the generated grid.
	MaxExact bool `json:"max_exact,omitempty"`
	MinExact bool `json:"min_exact,omitempty"`
	// Reverse flips the spectrum's direction of travel.
	Reverse bool `json:"reverse,omitempty"`
	// Palette names the spectrum to use; empty selects the default.
	Palette string `json:"palette,omitempty"`
}

// Config is the configurator's output, ready to hand to a viewer.
type Config struct {
	// Ticks is the final strictly increasing tick sequence, exact bounds
	// and sentinel values included.
	Ticks []float64 `json:"ticks"`
	// Intervals is len(Ticks)-1, the number of color bands.
	Intervals int `json:"intervals"`
	// Mode tells the consumer how to interpret the intervals.
	Mode Mode `json:"mode"`
	// Format renders tick labels.
	Format scale.Format `json:"format"`
	// SpectrumName is the spectrum the viewer should select.
	SpectrumName string `json:"spectrum"`
	// Colors is the generated color table, one entry per interval. It is
	// nil for builtin spectrums the viewer resolves by name.
	Colors []string `json:"colors,omitempty"`
	// BelowColor and AboveColor mark values outside the displayed range.
	BelowColor string `json:"below_color"`
	AboveColor string `json:"above_color"`
}
