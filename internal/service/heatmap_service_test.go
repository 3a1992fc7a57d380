package service

import (
	"testing"
	"time"

	"github.com/handshou/rainmap-go/internal/boundary"
	"github.com/handshou/rainmap-go/internal/geo"
	"github.com/handshou/rainmap-go/internal/interp"
	"github.com/handshou/rainmap-go/internal/models"
)

func testSquare(t *testing.T) *boundary.Polygon {
	t.Helper()
	poly, err := boundary.New([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 1},
		{Lat: 1, Lon: 0},
		{Lat: 0, Lon: 0},
	})
	if err != nil {
		t.Fatalf("failed to build square: %v", err)
	}
	return poly
}

func TestGenerateEmptyStore(t *testing.T) {
	svc := NewHeatmapService(&fakeStore{}, testSquare(t), 0)

	resp, err := svc.Generate(interp.GridOptions{})
	if err != nil {
		t.Fatalf("empty store must degrade, not fail: %v", err)
	}
	if resp.Count != 0 || len(resp.Points) != 0 {
		t.Fatalf("expected an empty heatmap, got %d points", resp.Count)
	}
	if resp.Points == nil {
		t.Fatal("points must serialize as an empty array, not null")
	}
	if resp.Resolution != interp.DefaultResolution || resp.Power != interp.DefaultPower || resp.BufferKm != interp.DefaultBufferKm {
		t.Fatalf("defaults not echoed: %+v", resp)
	}
}

func TestGenerateConfiguredDefaultResolution(t *testing.T) {
	store := &fakeStore{batches: []models.ReadingBatch{{
		ObservedAt: time.Now().UTC(),
		FetchedAt:  time.Now().UTC(),
		Readings: []models.StationReading{
			{StationID: "S1", Latitude: 0.5, Longitude: 0.5, Value: 16},
		},
	}}}
	svc := NewHeatmapService(store, testSquare(t), 40)

	resp, err := svc.Generate(interp.GridOptions{BufferKm: 11.1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if resp.Resolution != 40 {
		t.Fatalf("resolution = %d, want the configured default 40", resp.Resolution)
	}
	if resp.Count == 0 || resp.Count > 41*41 {
		t.Fatalf("count = %d, want a populated 41x41 lattice at most", resp.Count)
	}

	// An explicit request resolution still wins over the configured default.
	resp, err = svc.Generate(interp.GridOptions{Resolution: 10, BufferKm: 11.1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if resp.Resolution != 10 {
		t.Fatalf("resolution = %d, want the requested 10", resp.Resolution)
	}
}

func TestGenerateSingleStation(t *testing.T) {
	store := &fakeStore{batches: []models.ReadingBatch{{
		ObservedAt: time.Now().UTC(),
		FetchedAt:  time.Now().UTC(),
		Readings: []models.StationReading{
			{StationID: "S1", Latitude: 0.5, Longitude: 0.5, Value: 16},
		},
	}}}
	svc := NewHeatmapService(store, testSquare(t), 0)

	resp, err := svc.Generate(interp.GridOptions{Resolution: 10, BufferKm: 11.1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if resp.Count == 0 {
		t.Fatal("expected grid points")
	}
	if resp.Stations != 1 {
		t.Fatalf("stations = %d, want 1", resp.Stations)
	}
	if resp.MaxValue != 16 || resp.MinValue != 16 {
		t.Fatalf("value range = [%f, %f], want [16, 16]", resp.MinValue, resp.MaxValue)
	}
	for _, p := range resp.Points {
		if p.Intensity != 1 {
			t.Fatalf("intensity = %f, want 1 for a uniform field", p.Intensity)
		}
	}
}

func TestGenerateZeroRainfall(t *testing.T) {
	// A dry batch: values all zero. Intensity must stay 0 rather than divide
	// by a zero maximum.
	store := &fakeStore{batches: []models.ReadingBatch{{
		FetchedAt: time.Now().UTC(),
		Readings: []models.StationReading{
			{StationID: "S1", Latitude: 0.3, Longitude: 0.3, Value: 0},
			{StationID: "S2", Latitude: 0.7, Longitude: 0.7, Value: 0},
		},
	}}}
	svc := NewHeatmapService(store, testSquare(t), 0)

	resp, err := svc.Generate(interp.GridOptions{Resolution: 10, BufferKm: 11.1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	for _, p := range resp.Points {
		if p.Intensity != 0 || p.Value != 0 {
			t.Fatalf("dry field produced point %+v", p)
		}
	}
}
