package scale

import (
	"math"

	"github.com/mbeaudin/legendscale/pkg/nicenum"
)

// stepCandidates are step multipliers for the span's order of magnitude,
// loosest first. The generator keeps the tightest step that still respects
// the guide count, so tick deltas always come from the 1-2-5 family.
var stepCandidates = [...]float64{5, 2, 1, 0.5, 0.25, 0.2, 0.1, 0.05}

// zeroTolerance, as a fraction of the tick delta, decides when a value is
// indistinguishable from zero.
const zeroTolerance = 0.1

// LinearTicks returns evenly spaced round-valued ticks covering
// [minValue, maxValue]. guide is the target interval count and acts as an
// upper bound, not an exact requirement. A first or last tick that sits on
// zero is dropped; the displayed bound already labels that edge.
func LinearTicks(maxValue, minValue float64, guide int) ([]float64, error) {
	if err := checkRange(maxValue, minValue); err != nil {
		return nil, err
	}
	if guide < 1 {
		guide = 1
	}

	span := maxValue - minValue
	order := math.Pow10(nicenum.OrderOf(span))

	delta := stepCandidates[0] * order
	for _, factor := range stepCandidates {
		step := factor * order
		if span/step > float64(guide) {
			break
		}
		delta = step
	}

	// Every tick is anchored to the first so rounding error cannot
	// accumulate across the walk.
	first := delta * math.Ceil(minValue/delta)
	ticks := []float64{first}
	for ticks[len(ticks)-1] < maxValue-0.95*delta {
		ticks = append(ticks, first+float64(len(ticks))*delta)
	}

	return trimZeroEdges(ticks, delta), nil
}

// LogTicks returns power-of-ten ticks covering [minValue, maxValue]. Bounds
// at or below zero cannot sit on a logarithmic axis, so the generator
// substitutes wide fallback orders for them instead of failing.
func LogTicks(maxValue, minValue float64, guide int) ([]float64, error) {
	if err := checkFinite(maxValue, minValue); err != nil {
		return nil, err
	}
	if guide < 1 {
		guide = 1
	}

	maxOrder := 0
	if maxValue > 0 {
		maxOrder = nicenum.OrderOf(maxValue)
	}

	var minOrder int
	if minValue > 0 {
		minOrder = nicenum.CeilOrderOf(minValue)
		if maxOrder-2 < minOrder {
			minOrder = maxOrder - 2
		}
	} else {
		minOrder = maxOrder - guide - 1
	}

	stepOrder := 1 + (maxOrder-minOrder)/guide

	ticks := make([]float64, 0, (maxOrder-minOrder)/stepOrder+1)
	for e := minOrder; e <= maxOrder; e += stepOrder {
		ticks = append(ticks, math.Pow10(e))
	}
	return ticks, nil
}

// trimZeroEdges drops a leading or trailing tick within zeroTolerance of
// zero, catching both exact zeros and the float dust the tick walk can
// leave where zero belongs.
func trimZeroEdges(ticks []float64, delta float64) []float64 {
	if len(ticks) > 0 && math.Abs(ticks[0]) < zeroTolerance*delta {
		ticks = ticks[1:]
	}
	if len(ticks) > 0 && math.Abs(ticks[len(ticks)-1]) < zeroTolerance*delta {
		ticks = ticks[:len(ticks)-1]
	}
	return ticks
}

func checkFinite(maxValue, minValue float64) error {
	for _, v := range [...]float64{maxValue, minValue} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &RangeError{Max: maxValue, Min: minValue, Reason: "bounds must be finite"}
		}
	}
	return nil
}

func checkRange(maxValue, minValue float64) error {
	if err := checkFinite(maxValue, minValue); err != nil {
		return err
	}
	if maxValue == minValue {
		return &RangeError{Max: maxValue, Min: minValue, Reason: "max and min are equal"}
	}
	if maxValue < minValue {
		return &RangeError{Max: maxValue, Min: minValue, Reason: "max is below min"}
	}
	return nil
}
