package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"energy_dashboard/internal/logger"
	"energy_dashboard/internal/models"
	"energy_dashboard/internal/repository"
)

var errInvalidTargetState = errors.New("invalid target state: must be ON or OFF")

// DeviceService simulates the remote switch API. The state machine has two
// states {ON, OFF}; a transition flips the state unconditionally, records the
// transition time, and deterministically reports success. Placeholder for a
// real API client; no retry or timeout semantics exist yet.
type DeviceService struct {
	events repository.EventRepo
	log    *logger.Logger

	mu    sync.Mutex
	state models.DeviceState
}

// NewDeviceService starts in OFF, matching a fresh process.
func NewDeviceService(events repository.EventRepo, log *logger.Logger) *DeviceService {
	return &DeviceService{
		events: events,
		log:    log,
		state:  models.DeviceState{Status: models.DeviceOff, LastChange: time.Now().UTC()},
	}
}

// State returns the current switch state.
func (s *DeviceService) State() models.DeviceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Control switches the device to the given target state ("ON"/"OFF",
// case-insensitive). The returned flag is the simulated API success, which
// is always true for a valid target.
func (s *DeviceService) Control(ctx context.Context, target string) (models.DeviceState, bool, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	if target != models.DeviceOn && target != models.DeviceOff {
		return s.State(), false, errInvalidTargetState
	}
	return s.apply(ctx, func(models.DeviceState) string { return target }), true, nil
}

// Toggle flips the current state. Always succeeds.
func (s *DeviceService) Toggle(ctx context.Context) (models.DeviceState, bool) {
	return s.apply(ctx, func(cur models.DeviceState) string {
		if cur.IsOn() {
			return models.DeviceOff
		}
		return models.DeviceOn
	}), true
}

// apply performs the transition and appends the audit event. The target is
// decided from the current state inside the critical section, so concurrent
// toggles each see the state left by the previous one. The audit write is
// best-effort: the stub call itself cannot fail, so an append error is
// logged and swallowed.
func (s *DeviceService) apply(ctx context.Context, decide func(models.DeviceState) string) models.DeviceState {
	s.mu.Lock()
	target := decide(s.state)
	st := models.DeviceState{Status: target, LastChange: time.Now().UTC()}
	s.state = st
	s.mu.Unlock()

	evType := models.EventSwitchOn
	if target == models.DeviceOff {
		evType = models.EventSwitchOff
	}
	err := s.events.Append(ctx, models.ControlEvent{
		OccurredAt:  st.LastChange,
		Type:        evType,
		Description: "Device switched " + target,
	})
	if err != nil && s.log != nil {
		s.log.Warnw("device_event_append_failed", "err", err, "target", target)
	}
	return st
}
