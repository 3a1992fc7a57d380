package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/handshou/rainmap-go/internal/models"
	"github.com/sony/gobreaker"
)

// DefaultRainfallURL is the NEA realtime rainfall endpoint on data.gov.sg.
const DefaultRainfallURL = "https://api-open.data.gov.sg/v2/real-time/api/rainfall"

// RealtimeProvider fetches current rain-gauge readings from a data.gov.sg
// style realtime rainfall API.
type RealtimeProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewRealtimeProvider creates a provider against the given endpoint. An empty
// baseURL selects the default data.gov.sg endpoint.
func NewRealtimeProvider(client *http.Client, baseURL string) *RealtimeProvider {
	if baseURL == "" {
		baseURL = DefaultRainfallURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "rainfall-realtime",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &RealtimeProvider{
		name:    "rainfall-realtime",
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *RealtimeProvider) Name() string {
	return p.name
}

// rainfallPayload mirrors the upstream response shape: station metadata and
// per-station readings arrive in separate arrays joined by station id.
type rainfallPayload struct {
	Data struct {
		Stations []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Location struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"location"`
		} `json:"stations"`
		Readings []struct {
			Timestamp string `json:"timestamp"`
			Data      []struct {
				StationID string  `json:"stationId"`
				Value     float64 `json:"value"`
			} `json:"data"`
		} `json:"readings"`
	} `json:"data"`
}

// Fetch retrieves the current batch of rainfall readings. Stations without a
// value in the current reading window are omitted from the batch.
func (p *RealtimeProvider) Fetch(ctx context.Context) (models.ReadingBatch, error) {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, p.baseURL, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return models.ReadingBatch{}, fmt.Errorf("rainfall fetch failed: %w", err)
	}
	defer resp.Body.Close()

	var payload rainfallPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.ReadingBatch{}, fmt.Errorf("failed to decode rainfall payload: %w", err)
	}

	stations := make(map[string]struct {
		name     string
		lat, lon float64
	}, len(payload.Data.Stations))
	for _, s := range payload.Data.Stations {
		stations[s.ID] = struct {
			name     string
			lat, lon float64
		}{s.Name, s.Location.Latitude, s.Location.Longitude}
	}

	batch := models.ReadingBatch{FetchedAt: time.Now().UTC()}

	for _, window := range payload.Data.Readings {
		if ts, err := time.Parse(time.RFC3339, window.Timestamp); err == nil {
			batch.ObservedAt = ts.UTC()
		}

		for _, d := range window.Data {
			s, ok := stations[d.StationID]
			if !ok {
				// Reading for an unlisted station; nothing to place on the map.
				continue
			}
			batch.Readings = append(batch.Readings, models.StationReading{
				StationID: d.StationID,
				Name:      s.name,
				Latitude:  s.lat,
				Longitude: s.lon,
				Value:     d.Value,
			})
		}
	}

	if batch.ObservedAt.IsZero() {
		batch.ObservedAt = batch.FetchedAt
	}

	return batch, nil
}
