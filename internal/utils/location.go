package utils

import "math"

// generalPrecision is the decimal precision kept in public-facing
// coordinates. Two decimal places is roughly a 1 km cell, coarse enough to
// hide the requester's address.
const generalPrecision = 2

// GeneralizeCoord rounds a single coordinate to the public precision.
func GeneralizeCoord(v float64) float64 {
	shift := math.Pow10(generalPrecision)
	return math.Round(v*shift) / shift
}

// GeneralizeLatLng rounds a precise point to the coarse public form. Used as
// the fallback when the map client did not supply a generalized location.
func GeneralizeLatLng(lat, lng float64) (float64, float64) {
	return GeneralizeCoord(lat), GeneralizeCoord(lng)
}

// ValidLatLng reports whether the pair is a usable WGS84 coordinate.
func ValidLatLng(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
