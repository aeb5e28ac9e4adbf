package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseCoordinate parses a form-style coordinate string. Empty, non-numeric,
// non-finite and exact-zero values all report ok=false: zero is the sentinel
// for "unset" in the stored data, so a literal "0" is treated as absent.
func ParseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return 0, false
	}
	return v, true
}

// ValidateCoordinates checks that a point lies on the globe.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
