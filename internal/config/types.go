package config

import (
	"strings"

	"github.com/mbeaudin/legendscale/pkg/spectrum"
)

// DefaultGuide is the interval target used when neither a flag nor the
// preferences file provides one.
const DefaultGuide = 15

// Config represents the full legendscale preferences document.
type Config struct {
	Version  string    `yaml:"version" validate:"required,semver"`
	Defaults Defaults  `yaml:"defaults,omitempty"`
	Palettes []Palette `yaml:"palettes,omitempty" validate:"omitempty,dive"`
}

// Defaults holds fallback request parameters applied when flags are
// omitted.
type Defaults struct {
	Guide   int    `yaml:"guide,omitempty" validate:"omitempty,min=3,max=24"`
	Palette string `yaml:"palette,omitempty" validate:"omitempty,palette_name"`
}

// Palette describes a user-defined color spectrum.
type Palette struct {
	Name  string `yaml:"name" validate:"required,palette_name"`
	Kind  string `yaml:"kind" validate:"required,oneof=sequential diverging"`
	Pivot string `yaml:"pivot,omitempty" validate:"omitempty,hexcolor"`
	Stops []Stop `yaml:"stops" validate:"required,min=2,max=4,dive"`
}

// Stop is one HSV color stop of a user-defined palette.
type Stop struct {
	Hue        float64 `yaml:"hue" validate:"gte=0,lt=360"`
	Saturation float64 `yaml:"saturation" validate:"gte=0,lte=100"`
	Value      float64 `yaml:"value" validate:"gte=0,lte=100"`
}

// SpectrumPalettes converts the configured palettes into the form the
// palette registry accepts.
func (c *Config) SpectrumPalettes() []spectrum.Palette {
	if c == nil || len(c.Palettes) == 0 {
		return nil
	}

	out := make([]spectrum.Palette, 0, len(c.Palettes))
	for _, p := range c.Palettes {
		stops := make([]spectrum.Stop, 0, len(p.Stops))
		for _, s := range p.Stops {
			stops = append(stops, spectrum.Stop{Hue: s.Hue, Saturation: s.Saturation, Value: s.Value})
		}
		out = append(out, spectrum.Palette{
			Name:  p.Name,
			Kind:  spectrum.Kind(p.Kind),
			Stops: stops,
			Pivot: strings.ToLower(p.Pivot),
		})
	}

	return out
}
