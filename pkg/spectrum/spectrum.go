// Package spectrum builds contour color tables from HSV color stops.
//
// A palette describes a spectrum by a handful of stops; Interpolate
// expands a pair of stops into evenly spaced hex colors. Saturation and
// value are expressed on a 0..100 scale, hue in degrees on 0..360.
package spectrum

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Marker colors shared by palettes and legend configuration.
const (
	// NeutralHex is the grey used for pivot bands and for values below a
	// non-negative range.
	NeutralHex = "#cccccc"
	// NavyHex marks values below the scale on builtin spectrums.
	NavyHex = "#000080"
	// MaroonHex marks values above the scale on builtin spectrums.
	MaroonHex = "#800000"
)

// Stop is a single HSV color stop.
type Stop struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// Hex converts the stop to a lowercase "#rrggbb" string.
func (s Stop) Hex() string {
	return colorful.Hsv(s.Hue, s.Saturation/100, s.Value/100).Hex()
}

// Interpolate expands two stops into count hex colors. Each HSV component
// moves linearly between the stops, so hue never takes the short way
// around the color wheel. The first and last entries are exactly the
// endpoint colors. A count below one returns nil, a count of one returns
// the from color alone.
func Interpolate(from, to Stop, count int) []string {
	if count < 1 {
		return nil
	}

	colors := make([]string, count)
	colors[0] = from.Hex()
	if count == 1 {
		return colors
	}

	steps := float64(count - 1)
	for i := 1; i < count-1; i++ {
		t := float64(i) / steps
		colors[i] = Stop{
			Hue:        from.Hue + (to.Hue-from.Hue)*t,
			Saturation: from.Saturation + (to.Saturation-from.Saturation)*t,
			Value:      from.Value + (to.Value-from.Value)*t,
		}.Hex()
	}
	colors[count-1] = to.Hex()

	return colors
}
