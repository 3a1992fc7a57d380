package interp

import (
	"github.com/handshou/rainmap-go/internal/boundary"
	"github.com/handshou/rainmap-go/internal/geo"
	"github.com/handshou/rainmap-go/internal/models"
)

// GridOptions tunes the bounded grid generator. Zero values fall back to the
// package defaults.
type GridOptions struct {
	Resolution int
	Power      float64
	BufferKm   float64
}

func (o GridOptions) withDefaults() GridOptions {
	if o.Resolution <= 0 {
		o.Resolution = DefaultResolution
	}
	if o.Power <= 0 {
		o.Power = DefaultPower
	}
	if o.BufferKm <= 0 {
		o.BufferKm = DefaultBufferKm
	}
	return o
}

// BoundedGrid evaluates the IDW estimator over a lattice spanning the
// boundary's bounding box and keeps only points that sit inside the boundary
// with the configured edge buffer.
//
// The lattice has (Resolution+1)x(Resolution+1) candidate points, scanned
// row-major; output order is deterministic for identical inputs but carries
// no other meaning. Empty readings or an empty boundary yield an empty
// result, not an error.
//
// Evaluation is deliberately brute force — O(Resolution^2 * stations) with no
// spatial index. Both factors are small (tens), and the simple scan is the
// point of the design.
func BoundedGrid(readings []models.StationReading, poly *boundary.Polygon, opts GridOptions) []models.InterpolatedPoint {
	if len(readings) == 0 || poly.IsEmpty() {
		return nil
	}

	opts = opts.withDefaults()

	minLat, minLon, maxLat, maxLon := poly.BoundingBox()
	latStep := (maxLat - minLat) / float64(opts.Resolution)
	lonStep := (maxLon - minLon) / float64(opts.Resolution)

	var points []models.InterpolatedPoint
	for i := 0; i <= opts.Resolution; i++ {
		lat := minLat + float64(i)*latStep
		for j := 0; j <= opts.Resolution; j++ {
			lon := minLon + float64(j)*lonStep

			if !poly.ContainsWithBuffer(geo.Point{Lat: lat, Lon: lon}, opts.BufferKm) {
				continue
			}

			points = append(points, models.InterpolatedPoint{
				Latitude:  lat,
				Longitude: lon,
				Value:     IDW(lat, lon, readings, opts.Power),
			})
		}
	}

	return points
}
