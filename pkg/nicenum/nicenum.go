// Package nicenum provides numeric helpers for building human-friendly
// scales: order-of-magnitude calculations that survive the rounding error
// math.Log10 introduces near exact powers of ten, and digit heuristics used
// when sizing tick label formats.
package nicenum

import "math"

// AlmostWhole reports whether x lies within eps of an integer.
func AlmostWhole(x, eps float64) bool {
	return math.Abs(x-math.Round(x)) <= eps
}

// SignificantDigits counts how many times x must be scaled by ten before it
// reads as a whole number, tolerating binary representation error. Inputs at
// or below zero and non-finite inputs report zero digits.
func SignificantDigits(x float64) int {
	if x <= 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	digits := 0
	for x < 0.99 || !AlmostWhole(x, 1e-6) {
		x *= 10
		digits++
	}
	return digits
}

// OrderOf returns floor(log10(x)) for positive x. The raw logarithm is
// cross-checked against exact powers of ten so values such as 1000 land on
// order 3 even when math.Log10 reports 2.9999999999999996.
func OrderOf(x float64) int {
	e := int(math.Floor(math.Log10(x)))
	switch {
	case math.Pow10(e+1) <= x:
		e++
	case math.Pow10(e) > x:
		e--
	}
	return e
}

// CeilOrderOf returns ceil(log10(x)) for positive x, with the same
// power-of-ten correction as OrderOf.
func CeilOrderOf(x float64) int {
	e := int(math.Ceil(math.Log10(x)))
	switch {
	case math.Pow10(e-1) >= x:
		e--
	case math.Pow10(e) < x:
		e++
	}
	return e
}
