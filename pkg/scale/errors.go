package scale

import "fmt"

// RangeError reports display bounds the tick generators cannot work with.
type RangeError struct {
	Max    float64
	Min    float64
	Reason string
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid scale range [%g, %g]: %s", e.Min, e.Max, e.Reason)
}

// TickError reports a tick sequence the format chooser cannot describe.
type TickError struct {
	Reason string
}

func (e *TickError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid tick sequence: %s", e.Reason)
}
