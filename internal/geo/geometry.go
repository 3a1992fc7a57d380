package geo

import (
	"math"
)

// Point represents a 2D geographic point.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BoundingBox calculates the axis-aligned bounding box of a set of points.
// Returns (minLat, minLon, maxLat, maxLon). Empty input yields all zeros.
func BoundingBox(points []Point) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon

	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
	}

	return minLat, minLon, maxLat, maxLon
}

// PointInPolygon checks if a point is inside a simple polygon using ray
// casting (even-odd rule). Points exactly on an edge get whatever the
// comparison yields; that ambiguity is inherent to the method and is not
// special-cased.
func PointInPolygon(point Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		if ((polygon[i].Lat > point.Lat) != (polygon[j].Lat > point.Lat)) &&
			(point.Lon < (polygon[j].Lon-polygon[i].Lon)*(point.Lat-polygon[i].Lat)/(polygon[j].Lat-polygon[i].Lat)+polygon[i].Lon) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// PointToSegmentDeg calculates the minimum distance, in coordinate degrees,
// from a point to the segment [a, b]. The projection parameter is clamped to
// [0, 1] so the result is the distance to the nearest point on the segment,
// not on the infinite line. A zero-length segment degenerates to the
// point-to-point distance.
func PointToSegmentDeg(p, a, b Point) float64 {
	dLat := b.Lat - a.Lat
	dLon := b.Lon - a.Lon

	lengthSquared := dLat*dLat + dLon*dLon
	if lengthSquared == 0 {
		return math.Hypot(p.Lat-a.Lat, p.Lon-a.Lon)
	}

	t := ((p.Lat-a.Lat)*dLat + (p.Lon-a.Lon)*dLon) / lengthSquared
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	nearestLat := a.Lat + t*dLat
	nearestLon := a.Lon + t*dLon

	return math.Hypot(p.Lat-nearestLat, p.Lon-nearestLon)
}
