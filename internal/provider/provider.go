// Package provider fetches rainfall station readings from upstream sources.
package provider

import (
	"context"

	"github.com/handshou/rainmap-go/internal/models"
)

// Provider abstracts a rainfall data source. Implementations return a full
// batch of current station readings per call.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) (models.ReadingBatch, error)
}
