package service

import "time"

// Bounds for the runtime-adjustable settings.
const (
	MinRefreshSec  = 2
	MaxRefreshSec  = 30
	MinPricePerKWh = 0.01
)

// SettingsView is the current settings snapshot.
type SettingsView struct {
	RefreshIntervalSec int     `json:"refresh_interval_sec"` // bounded 2..30
	PricePerKWh        float64 `json:"price_per_kwh"`        // bounded >= 0.01
}

// RefreshInterval returns the refresh interval as a duration. It doubles as
// the loader cache ttl so a changed interval never serves a cache entry of a
// different lifetime.
func (v SettingsView) RefreshInterval() time.Duration {
	return time.Duration(v.RefreshIntervalSec) * time.Second
}

// SettingsParams is a partial update; nil fields are left unchanged.
type SettingsParams struct {
	RefreshIntervalSec *int
	PricePerKWh        *float64
}

// LogFilter supports audit history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "SWITCH_ON", "SWITCH_OFF", "LOAD_ERROR"
}
