// Package interp estimates rainfall at arbitrary coordinates from sparse
// station readings using inverse distance weighting, and evaluates those
// estimates over a boundary-clipped grid for heatmap rendering.
//
// Everything here is a pure function of its inputs: no state, no I/O, no
// errors for expected degenerate input. Concurrent callers need no
// synchronization.
package interp

import (
	"math"

	"github.com/handshou/rainmap-go/internal/geo"
	"github.com/handshou/rainmap-go/internal/models"
)

const (
	// DefaultPower localizes each station's influence more tightly than the
	// textbook exponent of 2. Singapore's gauge network is dense, so a
	// higher power avoids over-smoothing between nearby stations. Tunable,
	// not a hard constant.
	DefaultPower = 3.0

	// DefaultBufferKm keeps grid points this far from the coastline so the
	// renderer's blur radius does not bleed into the sea.
	DefaultBufferKm = 1.0

	// DefaultResolution splits the boundary's bounding box into a
	// (N+1)x(N+1) lattice. Cost is O(N^2 * stations), so callers trade
	// smoothness against CPU; the map view uses 40.
	DefaultResolution = 50

	// exactMatchDeg treats targets within ~111 m of a station, per axis,
	// as coinciding with it.
	exactMatchDeg = 0.001

	// exactMatchKm is a second, distance-based coincidence guard (~10 m).
	// Together with exactMatchDeg it guarantees station values are honored
	// exactly at their own coordinates and no weight divides by zero.
	exactMatchKm = 0.01
)

// IDW estimates the rainfall value at (lat, lon) from the given station
// readings using inverse distance weighting with the given power exponent.
// A non-positive power falls back to DefaultPower.
//
// An empty reading list yields 0 — a documented fallback, not an error. A
// target coinciding with a station (within exactMatchDeg per axis, or closer
// than exactMatchKm) returns that station's value exactly.
func IDW(lat, lon float64, readings []models.StationReading, power float64) float64 {
	if len(readings) == 0 {
		return 0
	}
	if power <= 0 {
		power = DefaultPower
	}

	for _, r := range readings {
		if math.Abs(r.Latitude-lat) < exactMatchDeg && math.Abs(r.Longitude-lon) < exactMatchDeg {
			return r.Value
		}
	}

	var weightedSum, weightTotal float64
	for _, r := range readings {
		d := geo.HaversineKm(lat, lon, r.Latitude, r.Longitude)
		if d < exactMatchKm {
			return r.Value
		}

		w := 1 / math.Pow(d, power)
		weightedSum += w * r.Value
		weightTotal += w
	}

	return weightedSum / weightTotal
}
