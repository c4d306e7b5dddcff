package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"energy_dashboard/internal/logger"
	"energy_dashboard/internal/models"
	"energy_dashboard/internal/repository"
)

// PollerService is the explicit refresh loop: timer -> reload -> recompute ->
// publish. It replaces the implicit rerun a dashboard UI framework would
// provide. Each cycle stores the latest snapshot and turns a new whole-file
// load failure into a LOAD_ERROR audit event.
type PollerService struct {
	dashboard Dashboard
	settings  Settings
	events    repository.EventRepo
	log       *logger.Logger

	mu      sync.Mutex
	latest  models.Metrics
	polled  bool
	lastErr string
}

func NewPollerService(dashboard Dashboard, settings Settings, events repository.EventRepo, log *logger.Logger) *PollerService {
	return &PollerService{
		dashboard: dashboard,
		settings:  settings,
		events:    events,
		log:       log,
	}
}

// Run ticks at the configured refresh interval until ctx is canceled. The
// interval is re-read from settings after every cycle so an updated setting
// takes effect on the next tick.
func (s *PollerService) Run(ctx context.Context) {
	timer := time.NewTimer(s.settings.Get().RefreshInterval())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-timer.C:
			s.runOnce(ctx, now)
			timer.Reset(s.settings.Get().RefreshInterval())
		}
	}
}

// Latest returns the snapshot from the most recent cycle; the flag is false
// until the first cycle has run.
func (s *PollerService) Latest() (models.Metrics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.polled
}

// runOnce performs one reload/recompute cycle.
func (s *PollerService) runOnce(ctx context.Context, now time.Time) {
	m, err := s.dashboard.Current(ctx)
	if err != nil && !errors.Is(err, ErrInsufficientData) {
		if s.log != nil {
			s.log.Errorw("poll_cycle_failed", "err", err)
		}
		return
	}

	s.auditLoadError(ctx, m.LoadError, now)

	s.mu.Lock()
	s.latest = m
	s.polled = true
	s.mu.Unlock()

	if s.log != nil {
		if errors.Is(err, ErrInsufficientData) {
			s.log.Debugw("poll_waiting_for_data", "samples", m.Samples)
		} else {
			s.log.Debugw("poll_cycle_done", "samples", m.Samples, "total_energy_kwh", m.TotalEnergyKWh)
		}
	}
}

// auditLoadError appends a LOAD_ERROR event when the failure message changed
// since the previous cycle, so a persistent failure is recorded once rather
// than on every tick. Best-effort.
func (s *PollerService) auditLoadError(ctx context.Context, loadErr string, now time.Time) {
	s.mu.Lock()
	changed := loadErr != s.lastErr
	s.lastErr = loadErr
	s.mu.Unlock()

	if !changed || loadErr == "" {
		return
	}
	err := s.events.Append(ctx, models.ControlEvent{
		OccurredAt:  now.UTC(),
		Type:        models.EventLoadError,
		Description: "Energy log load failed",
		Metadata:    map[string]any{"error": loadErr},
	})
	if err != nil && s.log != nil {
		s.log.Warnw("load_error_event_append_failed", "err", err)
	}
}
