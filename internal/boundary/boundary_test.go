package boundary

import (
	"errors"
	"testing"

	"github.com/handshou/rainmap-go/internal/geo"
)

func TestNewRejectsTooFewVertices(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("nil ring: got %v, want ErrTooFewVertices", err)
	}
	if _, err := New([]geo.Point{{Lat: 0, Lon: 0}}); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("single vertex: got %v, want ErrTooFewVertices", err)
	}
	if _, err := New([]geo.Point{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("two vertices: got %v, want ErrTooFewVertices", err)
	}
}

func TestNewClosesOpenRing(t *testing.T) {
	poly, err := New([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 0.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ring := poly.Vertices()
	if len(ring) != 4 {
		t.Fatalf("ring length = %d, want 4", len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		t.Fatal("ring must end on its first vertex")
	}
}

func TestContains(t *testing.T) {
	poly := MustNew([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 1},
		{Lat: 1, Lon: 0},
		{Lat: 0, Lon: 0},
	})

	if !poly.Contains(geo.Point{Lat: 0.5, Lon: 0.5}) {
		t.Fatal("center should be inside")
	}
	if poly.Contains(geo.Point{Lat: 0.5, Lon: 1.5}) {
		t.Fatal("point east of the square should be outside")
	}

	var empty *Polygon
	if empty.Contains(geo.Point{}) {
		t.Fatal("nil polygon contains nothing")
	}
}

func TestContainsWithBuffer(t *testing.T) {
	poly := MustNew([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 1},
		{Lat: 1, Lon: 0},
		{Lat: 0, Lon: 0},
	})

	// 11.1 km is 0.1 degrees under the fixed conversion.
	if !poly.ContainsWithBuffer(geo.Point{Lat: 0.5, Lon: 0.5}, 11.1) {
		t.Fatal("center clears a 0.1-degree buffer")
	}
	if poly.ContainsWithBuffer(geo.Point{Lat: 0.05, Lon: 0.5}, 11.1) {
		t.Fatal("point 0.05 degrees from the south edge must be rejected")
	}
	if poly.ContainsWithBuffer(geo.Point{Lat: 0.5, Lon: 2}, 11.1) {
		t.Fatal("outside points are rejected before any edge check")
	}

	// Zero buffer degrades to plain containment.
	if !poly.ContainsWithBuffer(geo.Point{Lat: 0.01, Lon: 0.5}, 0) {
		t.Fatal("zero buffer should accept any interior point")
	}
}

func TestContainsWithBufferSkipsZeroLengthEdges(t *testing.T) {
	// Duplicate consecutive vertex: the degenerate edge must be skipped, not
	// divided by.
	poly := MustNew([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 1},
		{Lat: 1, Lon: 0},
		{Lat: 0, Lon: 0},
	})

	if !poly.ContainsWithBuffer(geo.Point{Lat: 0.5, Lon: 0.5}, 11.1) {
		t.Fatal("degenerate edge should not affect the center")
	}
}

func TestSingaporeBoundary(t *testing.T) {
	if Singapore.IsEmpty() {
		t.Fatal("reference boundary must be configured")
	}

	ring := Singapore.Vertices()
	if ring[0] != ring[len(ring)-1] {
		t.Fatal("reference ring must be closed")
	}

	// Central Singapore.
	if !Singapore.Contains(geo.Point{Lat: 1.35, Lon: 103.82}) {
		t.Fatal("central Singapore should be inside the boundary")
	}
	// Out at sea, east of Changi.
	if Singapore.Contains(geo.Point{Lat: 1.35, Lon: 104.5}) {
		t.Fatal("open sea should be outside the boundary")
	}
	// Johor Bahru, across the strait.
	if Singapore.Contains(geo.Point{Lat: 1.49, Lon: 103.74}) {
		t.Fatal("Johor should be outside the boundary")
	}
}
