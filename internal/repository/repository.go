package repository

import (
	"context"
	"database/sql"
	"time"

	"energy_dashboard/internal/models"
)

// ReadingRepo reads the raw energy log. Rows come back in file order with
// tolerant per-cell coercion already applied; deduplication, sorting and
// caching are service-layer policy.
type ReadingRepo interface {
	ReadAll(ctx context.Context) ([]models.Reading, error)
}

// EventRepo exposes the append-only audit log with filtering access.
type EventRepo interface {
	Append(ctx context.Context, e models.ControlEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ControlEvent, error)
}

type Repository struct {
	Readings ReadingRepo
	Events   EventRepo
}

func NewRepository(db *sql.DB, csvPath string) *Repository {
	return &Repository{
		Readings: NewCSVReadingRepo(csvPath),
		Events:   NewEventSQLite(db),
	}
}
