package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SettingsService is the explicit application-state holder for the knobs the
// original kept in ambient session state. Mutated only through Update.
type SettingsService struct {
	mu       sync.Mutex
	refresh  time.Duration
	priceKWh float64
}

func NewSettingsService(d Defaults) *SettingsService {
	s := &SettingsService{
		refresh:  d.RefreshInterval,
		priceKWh: d.PricePerKWh,
	}
	// Clamp startup defaults into bounds rather than refusing to boot.
	if sec := int(s.refresh / time.Second); sec < MinRefreshSec {
		s.refresh = MinRefreshSec * time.Second
	} else if sec > MaxRefreshSec {
		s.refresh = MaxRefreshSec * time.Second
	}
	if s.priceKWh < MinPricePerKWh {
		s.priceKWh = MinPricePerKWh
	}
	return s
}

func (s *SettingsService) Get() SettingsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SettingsView{
		RefreshIntervalSec: int(s.refresh / time.Second),
		PricePerKWh:        s.priceKWh,
	}
}

// Update applies a partial update after validating bounds.
func (s *SettingsService) Update(ctx context.Context, p SettingsParams) (SettingsView, error) {
	if p.RefreshIntervalSec != nil {
		if v := *p.RefreshIntervalSec; v < MinRefreshSec || v > MaxRefreshSec {
			return SettingsView{}, fmt.Errorf("refresh interval %d out of range [%d, %d] seconds", v, MinRefreshSec, MaxRefreshSec)
		}
	}
	if p.PricePerKWh != nil && *p.PricePerKWh < MinPricePerKWh {
		return SettingsView{}, fmt.Errorf("price per kWh %.2f below minimum %.2f", *p.PricePerKWh, MinPricePerKWh)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p.RefreshIntervalSec != nil {
		s.refresh = time.Duration(*p.RefreshIntervalSec) * time.Second
	}
	if p.PricePerKWh != nil {
		s.priceKWh = *p.PricePerKWh
	}
	return SettingsView{
		RefreshIntervalSec: int(s.refresh / time.Second),
		PricePerKWh:        s.priceKWh,
	}, nil
}
