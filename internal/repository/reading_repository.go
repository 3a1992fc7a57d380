package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/handshou/rainmap-go/internal/database"
	"github.com/handshou/rainmap-go/internal/models"
)

// ErrNoReadings is returned when no batch has been stored yet.
var ErrNoReadings = errors.New("no rainfall readings stored")

// ReadingRepository handles database operations for rainfall reading batches.
// Batches are append-only: each poll inserts a new set of rows keyed by its
// fetched_at timestamp and never touches earlier rows.
type ReadingRepository struct {
	db *sql.DB
}

// NewReadingRepository creates a new reading repository
func NewReadingRepository(db *sql.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// SaveBatch stores every reading of a batch in one transaction.
func (r *ReadingRepository) SaveBatch(batch models.ReadingBatch) error {
	if batch.IsEmpty() {
		return nil
	}

	fetchedAt := batch.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}
	observedAt := batch.ObservedAt
	if observedAt.IsZero() {
		observedAt = fetchedAt
	}

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO readings
			(station_id, name, latitude, longitude, value, observed_at, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, reading := range batch.Readings {
			_, err := stmt.Exec(
				reading.StationID, reading.Name,
				reading.Latitude, reading.Longitude, reading.Value,
				observedAt.Unix(), fetchedAt.Unix(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert reading %s: %w", reading.StationID, err)
			}
		}
		return nil
	})
}

// LatestBatch returns the most recently fetched batch.
func (r *ReadingRepository) LatestBatch() (models.ReadingBatch, error) {
	// MAX over an empty table yields a single NULL row.
	var fetchedAt sql.NullInt64
	err := r.db.QueryRow("SELECT MAX(fetched_at) FROM readings").Scan(&fetchedAt)
	if err != nil {
		return models.ReadingBatch{}, fmt.Errorf("failed to query latest batch: %w", err)
	}
	if !fetchedAt.Valid {
		return models.ReadingBatch{}, ErrNoReadings
	}

	return r.batchAt(fetchedAt.Int64)
}

// BatchesInRange returns all batches fetched between from and to, inclusive,
// ordered oldest first.
func (r *ReadingRepository) BatchesInRange(from, to time.Time) ([]models.ReadingBatch, error) {
	rows, err := r.db.Query(
		`SELECT DISTINCT fetched_at FROM readings
		 WHERE fetched_at >= ? AND fetched_at <= ?
		 ORDER BY fetched_at ASC`,
		from.Unix(), to.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch timestamps: %w", err)
	}
	defer rows.Close()

	var stamps []int64
	for rows.Next() {
		var ts int64
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("failed to scan batch timestamp: %w", err)
		}
		stamps = append(stamps, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(stamps) == 0 {
		return nil, ErrNoReadings
	}

	batches := make([]models.ReadingBatch, 0, len(stamps))
	for _, ts := range stamps {
		batch, err := r.batchAt(ts)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, nil
}

// PruneBefore deletes readings fetched before the cutoff and reports how many
// rows were removed.
func (r *ReadingRepository) PruneBefore(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec("DELETE FROM readings WHERE fetched_at < ?", cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune readings: %w", err)
	}
	return res.RowsAffected()
}

func (r *ReadingRepository) batchAt(fetchedAt int64) (models.ReadingBatch, error) {
	rows, err := r.db.Query(
		`SELECT station_id, name, latitude, longitude, value, observed_at
		 FROM readings WHERE fetched_at = ? ORDER BY station_id ASC`,
		fetchedAt,
	)
	if err != nil {
		return models.ReadingBatch{}, fmt.Errorf("failed to query readings: %w", err)
	}
	defer rows.Close()

	batch := models.ReadingBatch{
		FetchedAt: time.Unix(fetchedAt, 0).UTC(),
	}

	var observedAt int64
	for rows.Next() {
		var reading models.StationReading
		if err := rows.Scan(
			&reading.StationID, &reading.Name,
			&reading.Latitude, &reading.Longitude, &reading.Value,
			&observedAt,
		); err != nil {
			return models.ReadingBatch{}, fmt.Errorf("failed to scan reading: %w", err)
		}
		batch.Readings = append(batch.Readings, reading)
	}
	if err := rows.Err(); err != nil {
		return models.ReadingBatch{}, err
	}

	if batch.IsEmpty() {
		return models.ReadingBatch{}, ErrNoReadings
	}

	batch.ObservedAt = time.Unix(observedAt, 0).UTC()
	return batch, nil
}
