package spectrum

import (
	"fmt"
	"strings"

	legendscaleerrors "github.com/mbeaudin/legendscale/pkg/errors"
)

// DefaultPalette is the palette used when a request names none.
const DefaultPalette = "rainbow"

// Kind discriminates how a palette produces its color table.
type Kind string

const (
	// KindBuiltin names a spectrum the viewer ships with. Builtin
	// palettes produce no color table of their own.
	KindBuiltin Kind = "builtin"
	// KindSequential interpolates between exactly two stops.
	KindSequential Kind = "sequential"
	// KindDiverging interpolates two limbs around a neutral pivot color
	// and needs exactly four stops: low outer, low inner, high inner,
	// high outer.
	KindDiverging Kind = "diverging"
)

// Palette describes a color spectrum by name, kind and stops.
type Palette struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Stops []Stop `json:"stops,omitempty"`
	Pivot string `json:"pivot,omitempty"`
}

// DisplayName returns the spectrum name a viewer should select. Builtin
// palettes map to the viewer's own spectrum names; custom palettes keep
// their configured name and carry the reversal in the color table.
func (p Palette) DisplayName(reverse bool) string {
	if p.Kind != KindBuiltin || p.Name == "" {
		return p.Name
	}
	if reverse {
		return "Reversed " + p.Name
	}
	return strings.ToUpper(p.Name[:1]) + p.Name[1:]
}

// Table produces the palette's color table with count entries, low to
// high. Builtin palettes return a nil table because the viewer owns
// their colors. Reversal flips the direction of travel without moving
// the pivot of a diverging palette.
func (p Palette) Table(count int, reverse bool) ([]string, error) {
	if p.Kind == KindBuiltin {
		return nil, nil
	}
	if count < 1 {
		return nil, legendscaleerrors.NewPaletteError(p.Name, fmt.Errorf("color table needs at least one entry, got %d", count))
	}

	switch p.Kind {
	case KindSequential:
		if len(p.Stops) != 2 {
			return nil, legendscaleerrors.NewPaletteError(p.Name, fmt.Errorf("sequential palettes need 2 stops, got %d", len(p.Stops)))
		}
		from, to := p.Stops[0], p.Stops[1]
		if reverse {
			from, to = to, from
		}
		return Interpolate(from, to, count), nil

	case KindDiverging:
		if len(p.Stops) != 4 {
			return nil, legendscaleerrors.NewPaletteError(p.Name, fmt.Errorf("diverging palettes need 4 stops, got %d", len(p.Stops)))
		}
		if p.Pivot == "" {
			return nil, legendscaleerrors.NewPaletteError(p.Name, fmt.Errorf("diverging palettes need a pivot color"))
		}
		lowOuter, lowInner := p.Stops[0], p.Stops[1]
		highInner, highOuter := p.Stops[2], p.Stops[3]
		if reverse {
			lowOuter, highOuter = highOuter, lowOuter
			lowInner, highInner = highInner, lowInner
		}

		// The pivot sits at the center entry; an even count leaves the
		// extra entry on the high limb.
		low := (count - 1) / 2
		high := count - 1 - low
		table := make([]string, 0, count)
		table = append(table, Interpolate(lowOuter, lowInner, low)...)
		table = append(table, p.Pivot)
		table = append(table, Interpolate(highInner, highOuter, high)...)
		return table, nil

	default:
		return nil, legendscaleerrors.NewPaletteError(p.Name, fmt.Errorf("unknown palette kind %q", p.Kind))
	}
}

// builtins are the palettes every registry starts with. The cbs ramps
// are colorblind-safe single-hue sequences.
var builtins = []Palette{
	{
		Name: "rainbow",
		Kind: KindBuiltin,
	},
	{
		Name: "symmetric",
		Kind: KindDiverging,
		Stops: []Stop{
			{Hue: 240, Saturation: 100, Value: 50},
			{Hue: 220, Saturation: 40, Value: 100},
			{Hue: 20, Saturation: 40, Value: 100},
			{Hue: 0, Saturation: 100, Value: 50},
		},
		Pivot: NeutralHex,
	},
	{
		Name: "cbs-cool",
		Kind: KindSequential,
		Stops: []Stop{
			{Hue: 210, Saturation: 12, Value: 97},
			{Hue: 212, Saturation: 85, Value: 45},
		},
	},
	{
		Name: "cbs-warm",
		Kind: KindSequential,
		Stops: []Stop{
			{Hue: 35, Saturation: 15, Value: 99},
			{Hue: 25, Saturation: 95, Value: 55},
		},
	},
}
