package models

import "time"

// InterpolatedPoint is a synthetic sample produced by the interpolator at a
// grid location. It is computed fresh per request and never persisted.
type InterpolatedPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Value     float64 `json:"value"` // estimated rainfall in mm
}

// HeatmapPoint is an interpolated point decorated for the rendering layer.
type HeatmapPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Value     float64 `json:"value"`     // raw mm
	Intensity float64 `json:"intensity"` // normalized 0-1 against the batch maximum
}

// HeatmapResponse is the heatmap API payload.
type HeatmapResponse struct {
	Points     []HeatmapPoint `json:"points"`
	Count      int            `json:"count"`
	MaxValue   float64        `json:"max_value"`
	MinValue   float64        `json:"min_value"`
	Resolution int            `json:"resolution"`
	Power      float64        `json:"power"`
	BufferKm   float64        `json:"buffer_km"`
	Stations   int            `json:"stations"`
	ObservedAt time.Time      `json:"observed_at,omitempty"`
}

// HeatmapFilter holds the tunable query parameters of the heatmap endpoint.
// Zero values mean "use the configured default".
type HeatmapFilter struct {
	Resolution int     `form:"resolution" binding:"omitempty,min=1,max=200"`
	Power      float64 `form:"power" binding:"omitempty,gt=0"`
	BufferKm   float64 `form:"buffer_km" binding:"omitempty,gte=0"`
}
