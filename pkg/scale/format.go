package scale

import (
	"math"
	"strconv"

	"github.com/mbeaudin/legendscale/pkg/nicenum"
)

// Notation selects how tick labels spell out numbers.
type Notation string

const (
	Fixed      Notation = "fixed"
	Scientific Notation = "scientific"
)

// Format describes how tick values should be displayed.
type Format struct {
	Notation Notation `json:"notation"`
	Decimals int      `json:"decimals"`
}

// Render formats v according to the notation and decimal count.
func (f Format) Render(v float64) string {
	if f.Notation == Scientific {
		return strconv.FormatFloat(v, 'e', f.Decimals, 64)
	}
	return strconv.FormatFloat(v, 'f', f.Decimals, 64)
}

const maxDecimals = 9

// ChooseFormat picks a display format for an increasing tick sequence. The
// decimal count is the smallest that still tells consecutive ticks apart;
// notation switches to scientific when magnitudes grow past 10^5 or shrink
// below 10^-3.
func ChooseFormat(ticks []float64) (Format, error) {
	return chooseFormat(ticks, false)
}

// ChooseFormatSymmetric behaves like ChooseFormat for tick sequences
// centered on zero. The tiny ticks bracketing the center do not force
// scientific notation, and fixed labels keep at least one decimal so the
// values either side of zero stay distinct.
func ChooseFormatSymmetric(ticks []float64) (Format, error) {
	return chooseFormat(ticks, true)
}

func chooseFormat(ticks []float64, symmetric bool) (Format, error) {
	if len(ticks) < 2 {
		return Format{}, &TickError{Reason: "need at least 2 ticks"}
	}
	for _, t := range ticks {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return Format{}, &TickError{Reason: "ticks must be finite"}
		}
	}

	delta := math.Inf(1)
	for i := 1; i < len(ticks); i++ {
		if d := ticks[i] - ticks[i-1]; d < delta {
			delta = d
		}
	}
	if delta <= 0 {
		return Format{}, &TickError{Reason: "tick increments must be positive"}
	}

	decimals := -nicenum.CeilOrderOf(delta)
	decimals += nicenum.SignificantDigits(delta * math.Pow10(decimals))

	// Magnitude bookkeeping skips ticks indistinguishable from zero.
	minMag, maxMag := math.Inf(1), 0.0
	for _, t := range ticks {
		mag := math.Abs(t)
		if mag <= zeroTolerance*delta {
			continue
		}
		if mag < minMag {
			minMag = mag
		}
		if mag > maxMag {
			maxMag = mag
		}
	}

	if nicenum.CeilOrderOf(maxMag) > 5 || (!symmetric && nicenum.OrderOf(minMag) < -3) {
		decimals += nicenum.OrderOf(maxMag)
		return Format{Notation: Scientific, Decimals: clampDecimals(decimals)}, nil
	}
	if symmetric && decimals < 1 {
		decimals = 1
	}
	return Format{Notation: Fixed, Decimals: clampDecimals(decimals)}, nil
}

func clampDecimals(decimals int) int {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > maxDecimals {
		decimals = maxDecimals
	}
	return decimals
}
