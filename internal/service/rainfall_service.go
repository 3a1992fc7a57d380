package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/handshou/rainmap-go/internal/models"
	"github.com/handshou/rainmap-go/internal/provider"
)

// ErrEmptyBatch rejects ingested batches that carry no readings.
var ErrEmptyBatch = errors.New("reading batch is empty")

// ReadingStore is the persistence contract the rainfall service needs.
// *repository.ReadingRepository satisfies it.
type ReadingStore interface {
	SaveBatch(batch models.ReadingBatch) error
	LatestBatch() (models.ReadingBatch, error)
	BatchesInRange(from, to time.Time) ([]models.ReadingBatch, error)
	PruneBefore(cutoff time.Time) (int64, error)
}

// RainfallService orchestrates fetching readings from the upstream provider
// and persisting them as immutable batches.
type RainfallService struct {
	store    ReadingStore
	provider provider.Provider
}

// NewRainfallService creates a new rainfall service
func NewRainfallService(store ReadingStore, p provider.Provider) *RainfallService {
	return &RainfallService{store: store, provider: p}
}

// Refresh fetches the current batch from the provider and stores it. An
// empty fetch result is skipped so the last good batch keeps serving.
func (s *RainfallService) Refresh(ctx context.Context) error {
	if s.provider == nil {
		return fmt.Errorf("no rainfall provider configured")
	}

	batch, err := s.provider.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("provider %s: %w", s.provider.Name(), err)
	}

	if batch.IsEmpty() {
		log.Printf("provider %s returned no readings; keeping last good batch", s.provider.Name())
		return nil
	}

	if err := s.store.SaveBatch(batch); err != nil {
		return fmt.Errorf("failed to store batch: %w", err)
	}

	log.Printf("stored rainfall batch: %d stations, observed %s",
		len(batch.Readings), batch.ObservedAt.Format(time.RFC3339))
	return nil
}

// Latest returns the most recently stored batch.
func (s *RainfallService) Latest() (models.ReadingBatch, error) {
	return s.store.LatestBatch()
}

// History returns the stored batches fetched between from and to.
func (s *RainfallService) History(from, to time.Time) ([]models.ReadingBatch, error) {
	return s.store.BatchesInRange(from, to)
}

// Ingest stores a manually supplied batch (backfill or testing).
func (s *RainfallService) Ingest(batch models.ReadingBatch) error {
	if batch.IsEmpty() {
		return ErrEmptyBatch
	}
	if batch.FetchedAt.IsZero() {
		batch.FetchedAt = time.Now().UTC()
	}
	return s.store.SaveBatch(batch)
}

// Prune removes batches older than the retention window.
func (s *RainfallService) Prune(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	return s.store.PruneBefore(time.Now().Add(-retention))
}
