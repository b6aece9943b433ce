package spectrum

import (
	"reflect"
	"testing"
)

func TestStopHex(t *testing.T) {
	cases := []struct {
		name string
		stop Stop
		want string
	}{
		{"navy", Stop{Hue: 240, Saturation: 100, Value: 50}, "#000080"},
		{"maroon", Stop{Hue: 0, Saturation: 100, Value: 50}, "#800000"},
		{"neutral grey", Stop{Hue: 0, Saturation: 0, Value: 80}, "#cccccc"},
		{"green", Stop{Hue: 120, Saturation: 100, Value: 100}, "#00ff00"},
		{"white", Stop{Hue: 0, Saturation: 0, Value: 100}, "#ffffff"},
	}

	for _, tc := range cases {
		if got := tc.stop.Hex(); got != tc.want {
			t.Errorf("%s: %+v.Hex() = %q, want %q", tc.name, tc.stop, got, tc.want)
		}
	}
}

func TestInterpolate(t *testing.T) {
	navy := Stop{Hue: 240, Saturation: 100, Value: 50}
	maroon := Stop{Hue: 0, Saturation: 100, Value: 50}

	got := Interpolate(navy, maroon, 5)
	if len(got) != 5 {
		t.Fatalf("Interpolate returned %d colors, want 5", len(got))
	}
	if got[0] != "#000080" || got[4] != "#800000" {
		t.Errorf("endpoints = %q, %q, want exact stop colors", got[0], got[4])
	}
	// Hue travels through cyan and green instead of wrapping around red.
	if got[1] != "#008080" {
		t.Errorf("quarter point = %q, want %q", got[1], "#008080")
	}
	if got[2] != "#008000" {
		t.Errorf("midpoint = %q, want %q", got[2], "#008000")
	}
}

func TestInterpolateSmallCounts(t *testing.T) {
	navy := Stop{Hue: 240, Saturation: 100, Value: 50}
	maroon := Stop{Hue: 0, Saturation: 100, Value: 50}

	if got := Interpolate(navy, maroon, 0); got != nil {
		t.Errorf("count 0 = %v, want nil", got)
	}
	if got := Interpolate(navy, maroon, 1); !reflect.DeepEqual(got, []string{"#000080"}) {
		t.Errorf("count 1 = %v, want the from color alone", got)
	}
	if got := Interpolate(navy, maroon, 2); !reflect.DeepEqual(got, []string{"#000080", "#800000"}) {
		t.Errorf("count 2 = %v, want both endpoints", got)
	}
}
