package models

import "time"

// Metrics is the derived dashboard snapshot computed from a ReadingTable
// with at least two rows.
type Metrics struct {
	// Latest sample values.
	Timestamp time.Time `json:"timestamp"`
	VoltageV  *float64  `json:"voltage_v"`
	CurrentA  *float64  `json:"current_a"`
	PowerW    *float64  `json:"power_w"`
	EnergyKWh *float64  `json:"energy_kwh"`

	// Signed change between the two most recent samples. Nil when either
	// endpoint is missing.
	PowerDeltaW    *float64 `json:"power_delta_w,omitempty"`
	EnergyDeltaKWh *float64 `json:"energy_delta_kwh,omitempty"`

	// Running maxima over the whole table. Max rather than last guards
	// against a single out-of-order trailing dip in the cumulative column.
	TotalEnergyKWh float64 `json:"total_energy_kwh"`
	PeakPowerW     float64 `json:"peak_power_w"`

	// Billing estimate: TotalEnergyKWh * PricePerKWh, unrounded.
	PricePerKWh  float64 `json:"price_per_kwh"`
	CostEstimate float64 `json:"cost_estimate"`
	CostDisplay  string  `json:"cost_display"` // comma-grouped, two decimals

	Samples     int       `json:"samples"`
	LoadError   string    `json:"load_error,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
