package utils

import (
	"math"
	"testing"
)

func TestGeneralizeCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{42.123456, 42.12},
		{42.125, 42.13},
		{-87.654321, -87.65},
		{0, 0},
	}
	for _, tt := range tests {
		if got := GeneralizeCoord(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("GeneralizeCoord(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGeneralizeLatLng(t *testing.T) {
	lat, lng := GeneralizeLatLng(42.123456, -87.654321)
	if math.Abs(lat-42.12) > 1e-9 || math.Abs(lng-(-87.65)) > 1e-9 {
		t.Errorf("got (%v, %v), want (42.12, -87.65)", lat, lng)
	}
}

func TestValidLatLng(t *testing.T) {
	tests := []struct {
		lat, lng float64
		want     bool
	}{
		{42.1, -87.6, true},
		{90, 180, true},
		{-90, -180, true},
		{0, 0, true},
		{90.1, 0, false},
		{-90.1, 0, false},
		{0, 180.1, false},
		{0, -180.1, false},
	}
	for _, tt := range tests {
		if got := ValidLatLng(tt.lat, tt.lng); got != tt.want {
			t.Errorf("ValidLatLng(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
		}
	}
}
