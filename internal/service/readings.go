package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"energy_dashboard/internal/logger"
	"energy_dashboard/internal/models"
	"energy_dashboard/internal/repository"
)

// ReadingsService turns the raw log into a ReadingTable and memoizes the
// result for the requested ttl. A whole-file parse failure never propagates:
// the service logs it and serves the empty table with LoadError set, so the
// dashboard always renders something.
type ReadingsService struct {
	repo repository.ReadingRepo
	log  *logger.Logger

	mu    sync.Mutex
	cache map[cacheKey]cacheEntry
}

// cacheKey includes the ttl itself: loading with a different lifetime must
// force a fresh read rather than reuse an entry cached under another window.
type cacheKey struct {
	ttl time.Duration
}

type cacheEntry struct {
	table   models.ReadingTable
	expires time.Time
}

func NewReadingsService(repo repository.ReadingRepo, log *logger.Logger) *ReadingsService {
	return &ReadingsService{
		repo:  repo,
		log:   log,
		cache: make(map[cacheKey]cacheEntry),
	}
}

// Load returns the current table, served from cache while the entry cached
// under this ttl is still fresh.
func (s *ReadingsService) Load(ctx context.Context, ttl time.Duration) models.ReadingTable {
	now := time.Now()
	key := cacheKey{ttl: ttl}

	s.mu.Lock()
	if e, ok := s.cache[key]; ok && ttl > 0 && now.Before(e.expires) {
		s.mu.Unlock()
		return e.table
	}
	s.mu.Unlock()

	table := s.build(ctx, now)

	// A non-positive ttl entry could never be served; don't store it.
	if ttl > 0 {
		s.mu.Lock()
		s.cache[key] = cacheEntry{table: table, expires: now.Add(ttl)}
		s.mu.Unlock()
	}

	return table
}

// build runs the full load pipeline: read, dedup (keep last occurrence),
// sort ascending.
func (s *ReadingsService) build(ctx context.Context, now time.Time) models.ReadingTable {
	rows, err := s.repo.ReadAll(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("energy_log_load_failed", "err", err)
		}
		return models.ReadingTable{
			Rows:      []models.Reading{},
			LoadError: err.Error(),
			LoadedAt:  now.UTC(),
		}
	}
	return models.ReadingTable{
		Rows:     dedupAndSort(rows),
		LoadedAt: now.UTC(),
	}
}

// dedupAndSort collapses duplicate timestamps keeping the last occurrence in
// file order (appended rows are more authoritative), then sorts ascending.
func dedupAndSort(rows []models.Reading) []models.Reading {
	seen := make(map[int64]int, len(rows)) // unix nanos -> index in out
	out := make([]models.Reading, 0, len(rows))
	for _, r := range rows {
		key := r.Timestamp.UnixNano()
		if i, ok := seen[key]; ok {
			out[i] = r
			continue
		}
		seen[key] = len(out)
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
