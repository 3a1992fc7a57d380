package models

import "time"

// StationReading is a single rain-gauge observation: where the gauge is and
// how much rain it measured in the current reporting window.
type StationReading struct {
	StationID string  `json:"station_id" db:"station_id"`
	Name      string  `json:"name,omitempty" db:"name"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Value     float64 `json:"value" db:"value"` // rainfall in mm, non-negative
}

// ReadingBatch groups all station readings captured by one poll of the
// upstream rainfall API. Batches are append-only: a new poll supersedes the
// previous batch, it never mutates it.
type ReadingBatch struct {
	ObservedAt time.Time        `json:"observed_at"` // timestamp reported by the source
	FetchedAt  time.Time        `json:"fetched_at"`  // when we stored the batch
	Readings   []StationReading `json:"readings"`
}

// IsEmpty reports whether the batch carries no readings.
func (b ReadingBatch) IsEmpty() bool {
	return len(b.Readings) == 0
}
