package geo

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	// One degree of longitude on the equator.
	got := HaversineKm(0, 0, 0, 1)
	want := 2 * math.Pi * EarthRadiusKm / 360

	if math.Abs(got-want) > 0.01 {
		t.Fatalf("HaversineKm(0,0,0,1) = %f, want about %f", got, want)
	}

	if d := HaversineKm(1.35, 103.82, 1.35, 103.82); d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}
}

func TestHaversineKmPropagatesNaN(t *testing.T) {
	if d := HaversineKm(math.NaN(), 0, 0, 1); !math.IsNaN(d) {
		t.Fatalf("expected NaN to propagate, got %f", d)
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point{
		{Lat: 1.0, Lon: 103.0},
		{Lat: 1.5, Lon: 104.0},
		{Lat: 0.5, Lon: 103.5},
	}

	minLat, minLon, maxLat, maxLon := BoundingBox(points)
	if minLat != 0.5 || minLon != 103.0 || maxLat != 1.5 || maxLon != 104.0 {
		t.Fatalf("unexpected bbox: %f %f %f %f", minLat, minLon, maxLat, maxLon)
	}

	minLat, minLon, maxLat, maxLon = BoundingBox(nil)
	if minLat != 0 || minLon != 0 || maxLat != 0 || maxLon != 0 {
		t.Fatal("empty input should yield a zero bbox")
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 1},
		{Lat: 1, Lon: 0},
		{Lat: 0, Lon: 0},
	}

	cases := []struct {
		name  string
		point Point
		want  bool
	}{
		{"center", Point{Lat: 0.5, Lon: 0.5}, true},
		{"near corner inside", Point{Lat: 0.01, Lon: 0.01}, true},
		{"east of square", Point{Lat: 0.5, Lon: 1.5}, false},
		{"north of square", Point{Lat: 1.5, Lon: 0.5}, false},
		{"far away", Point{Lat: -10, Lon: 50}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInPolygon(tc.point, square); got != tc.want {
				t.Fatalf("PointInPolygon(%+v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(Point{}, nil) {
		t.Fatal("empty polygon should contain nothing")
	}
	if PointInPolygon(Point{}, []Point{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}) {
		t.Fatal("two-vertex polygon should contain nothing")
	}
}

func TestPointToSegmentDeg(t *testing.T) {
	a := Point{Lat: 0, Lon: 0}
	b := Point{Lat: 0, Lon: 1}

	// Perpendicular projection lands inside the segment.
	if d := PointToSegmentDeg(Point{Lat: 1, Lon: 0.5}, a, b); math.Abs(d-1) > 1e-12 {
		t.Fatalf("perpendicular distance = %f, want 1", d)
	}

	// Projection clamps to the b endpoint.
	if d := PointToSegmentDeg(Point{Lat: 0, Lon: 2}, a, b); math.Abs(d-1) > 1e-12 {
		t.Fatalf("clamped distance = %f, want 1", d)
	}

	// Projection clamps to the a endpoint.
	if d := PointToSegmentDeg(Point{Lat: -3, Lon: -4}, a, b); math.Abs(d-5) > 1e-12 {
		t.Fatalf("clamped distance = %f, want 5", d)
	}

	// Zero-length segment degenerates to point distance.
	if d := PointToSegmentDeg(Point{Lat: 3, Lon: 4}, a, a); math.Abs(d-5) > 1e-12 {
		t.Fatalf("degenerate segment distance = %f, want 5", d)
	}
}
