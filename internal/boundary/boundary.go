// Package boundary holds the region boundary polygon used to clip
// interpolated heatmap grids to the area of interest.
package boundary

import (
	"errors"

	"github.com/handshou/rainmap-go/internal/geo"
)

// ErrTooFewVertices is returned when a polygon cannot enclose an area.
// A closed ring needs at least 3 distinct vertices plus the closing vertex.
var ErrTooFewVertices = errors.New("boundary polygon needs at least 4 vertices")

// Polygon is an immutable closed ring of geographic vertices. The first
// vertex is repeated as the last.
type Polygon struct {
	vertices []geo.Point
}

// New validates and builds a boundary polygon. Rings that are not explicitly
// closed are closed by repeating the first vertex. Malformed rings with fewer
// than 4 vertices (after closing) are rejected rather than left to fail
// somewhere inside the grid generator.
func New(vertices []geo.Point) (*Polygon, error) {
	ring := make([]geo.Point, len(vertices))
	copy(ring, vertices)

	if len(ring) >= 2 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	if len(ring) < 4 {
		return nil, ErrTooFewVertices
	}

	return &Polygon{vertices: ring}, nil
}

// MustNew is New for static, known-good configuration data.
func MustNew(vertices []geo.Point) *Polygon {
	p, err := New(vertices)
	if err != nil {
		panic(err)
	}
	return p
}

// Vertices returns a copy of the closed ring.
func (p *Polygon) Vertices() []geo.Point {
	if p == nil {
		return nil
	}
	out := make([]geo.Point, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// IsEmpty reports whether the polygon has no usable ring.
func (p *Polygon) IsEmpty() bool {
	return p == nil || len(p.vertices) == 0
}

// BoundingBox returns (minLat, minLon, maxLat, maxLon) over the ring.
func (p *Polygon) BoundingBox() (float64, float64, float64, float64) {
	if p.IsEmpty() {
		return 0, 0, 0, 0
	}
	return geo.BoundingBox(p.vertices)
}

// Contains reports whether the point lies inside the ring (even-odd rule).
func (p *Polygon) Contains(pt geo.Point) bool {
	if p.IsEmpty() {
		return false
	}
	return geo.PointInPolygon(pt, p.vertices)
}

// ContainsWithBuffer reports whether the point lies inside the ring and at
// least bufferKm away from every edge. The buffer keeps a heatmap's blur
// radius from visually leaking past the coastline. Distance to edges is
// evaluated in degree space using the fixed 111 km/degree conversion; see
// geo.KmPerDegree for why that approximation is kept.
func (p *Polygon) ContainsWithBuffer(pt geo.Point, bufferKm float64) bool {
	if !p.Contains(pt) {
		return false
	}
	if bufferKm <= 0 {
		return true
	}

	bufferDeg := bufferKm / geo.KmPerDegree

	for i := 0; i < len(p.vertices)-1; i++ {
		a := p.vertices[i]
		b := p.vertices[i+1]

		// Zero-length edges carry no boundary information; skip them
		// instead of dividing by their length.
		if a == b {
			continue
		}

		if geo.PointToSegmentDeg(pt, a, b) < bufferDeg {
			return false
		}
	}

	return true
}
