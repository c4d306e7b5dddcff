package service

import (
	"context"
	"testing"
	"time"
)

func intp(v int) *int { return &v }

func TestNewSettings_ClampsDefaultsIntoBounds(t *testing.T) {
	t.Parallel()

	svc := NewSettingsService(Defaults{RefreshInterval: 0, PricePerKWh: 0})
	v := svc.Get()
	if v.RefreshIntervalSec != MinRefreshSec {
		t.Fatalf("expected refresh clamp to %d, got %d", MinRefreshSec, v.RefreshIntervalSec)
	}
	if v.PricePerKWh != MinPricePerKWh {
		t.Fatalf("expected price floor %.2f, got %.2f", MinPricePerKWh, v.PricePerKWh)
	}

	svc = NewSettingsService(Defaults{RefreshInterval: time.Hour, PricePerKWh: 7.50})
	if v := svc.Get(); v.RefreshIntervalSec != MaxRefreshSec {
		t.Fatalf("expected refresh clamp to %d, got %d", MaxRefreshSec, v.RefreshIntervalSec)
	}
}

func TestUpdate_PartialUpdateKeepsOtherField(t *testing.T) {
	t.Parallel()

	svc := NewSettingsService(Defaults{RefreshInterval: 5 * time.Second, PricePerKWh: 7.50})
	price := 8.25
	v, err := svc.Update(context.Background(), SettingsParams{PricePerKWh: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.PricePerKWh != 8.25 {
		t.Fatalf("expected price 8.25, got %.2f", v.PricePerKWh)
	}
	if v.RefreshIntervalSec != 5 {
		t.Fatalf("expected refresh unchanged at 5, got %d", v.RefreshIntervalSec)
	}
}

func TestUpdate_RejectsOutOfRangeRefresh(t *testing.T) {
	t.Parallel()

	svc := NewSettingsService(Defaults{RefreshInterval: 5 * time.Second, PricePerKWh: 7.50})
	for _, bad := range []int{0, 1, 31, 120} {
		if _, err := svc.Update(context.Background(), SettingsParams{RefreshIntervalSec: intp(bad)}); err == nil {
			t.Fatalf("expected error for refresh %d", bad)
		}
	}
	if v := svc.Get(); v.RefreshIntervalSec != 5 {
		t.Fatalf("expected state unchanged after rejected updates, got %d", v.RefreshIntervalSec)
	}
}

func TestUpdate_RejectsPriceBelowFloor(t *testing.T) {
	t.Parallel()

	svc := NewSettingsService(Defaults{RefreshInterval: 5 * time.Second, PricePerKWh: 7.50})
	price := 0.005
	if _, err := svc.Update(context.Background(), SettingsParams{PricePerKWh: &price}); err == nil {
		t.Fatalf("expected error for price below floor")
	}
	if v := svc.Get(); v.PricePerKWh != 7.50 {
		t.Fatalf("expected price unchanged, got %.2f", v.PricePerKWh)
	}
}

func TestSettingsView_RefreshIntervalDuration(t *testing.T) {
	t.Parallel()

	v := SettingsView{RefreshIntervalSec: 7}
	if v.RefreshInterval() != 7*time.Second {
		t.Fatalf("expected 7s, got %v", v.RefreshInterval())
	}
}
