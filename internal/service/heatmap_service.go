package service

import (
	"errors"

	"github.com/handshou/rainmap-go/internal/boundary"
	"github.com/handshou/rainmap-go/internal/interp"
	"github.com/handshou/rainmap-go/internal/models"
	"github.com/handshou/rainmap-go/internal/repository"
)

// HeatmapService derives boundary-clipped heatmap grids from the latest
// stored reading batch. Grids are computed per request and never persisted.
type HeatmapService struct {
	store             ReadingStore
	boundary          *boundary.Polygon
	defaultResolution int
}

// NewHeatmapService creates a new heatmap service. defaultResolution is the
// lattice resolution used when a request does not ask for one; non-positive
// values fall back to the package default.
func NewHeatmapService(store ReadingStore, poly *boundary.Polygon, defaultResolution int) *HeatmapService {
	if defaultResolution <= 0 {
		defaultResolution = interp.DefaultResolution
	}
	return &HeatmapService{store: store, boundary: poly, defaultResolution: defaultResolution}
}

// Boundary returns the configured clipping polygon.
func (s *HeatmapService) Boundary() *boundary.Polygon {
	return s.boundary
}

// Generate interpolates the latest batch over the bounded grid. With no
// stored readings it degrades to an empty heatmap rather than an error.
func (s *HeatmapService) Generate(opts interp.GridOptions) (models.HeatmapResponse, error) {
	resp := models.HeatmapResponse{
		Points:     []models.HeatmapPoint{},
		Resolution: opts.Resolution,
		Power:      opts.Power,
		BufferKm:   opts.BufferKm,
	}
	if resp.Resolution <= 0 {
		resp.Resolution = s.defaultResolution
	}
	if resp.Power <= 0 {
		resp.Power = interp.DefaultPower
	}
	if resp.BufferKm <= 0 {
		resp.BufferKm = interp.DefaultBufferKm
	}

	batch, err := s.store.LatestBatch()
	if err != nil {
		if errors.Is(err, repository.ErrNoReadings) {
			return resp, nil
		}
		return resp, err
	}

	points := interp.BoundedGrid(batch.Readings, s.boundary, interp.GridOptions{
		Resolution: resp.Resolution,
		Power:      resp.Power,
		BufferKm:   resp.BufferKm,
	})

	resp.Stations = len(batch.Readings)
	resp.ObservedAt = batch.ObservedAt
	resp.Count = len(points)
	if len(points) == 0 {
		return resp, nil
	}

	resp.MinValue = points[0].Value
	resp.MaxValue = points[0].Value
	for _, p := range points {
		if p.Value < resp.MinValue {
			resp.MinValue = p.Value
		}
		if p.Value > resp.MaxValue {
			resp.MaxValue = p.Value
		}
	}

	resp.Points = make([]models.HeatmapPoint, 0, len(points))
	for _, p := range points {
		intensity := 0.0
		if resp.MaxValue > 0 {
			intensity = p.Value / resp.MaxValue
		}
		resp.Points = append(resp.Points, models.HeatmapPoint{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Value:     p.Value,
			Intensity: intensity,
		})
	}

	return resp, nil
}
