package geo

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusKm = 6371.0 // Earth's mean radius in kilometers

	// KmPerDegree is the flat-earth conversion used for edge-buffer checks.
	// It is only accurate near the equatorial latitude band of the reference
	// region and is kept as an explicit, documented approximation: the visual
	// calibration of the heatmap buffer depends on this exact constant.
	KmPerDegree = 111.0
)

// HaversineKm calculates the great-circle distance between two points in
// kilometers. NaN or Inf coordinates propagate NaN; validation is the
// caller's responsibility.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}
