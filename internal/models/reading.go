package models

import "time"

// Reading is one timestamped sample from the energy log.
// Numeric fields are pointers: a cell that failed numeric coercion is kept
// as nil rather than dropping the whole row.
type Reading struct {
	Timestamp time.Time `json:"timestamp"`
	VoltageV  *float64  `json:"voltage_v"`  // volts
	CurrentA  *float64  `json:"current_a"`  // amps
	PowerW    *float64  `json:"power_w"`    // watts
	EnergyKWh *float64  `json:"energy_kwh"` // cumulative kilowatt-hours
	Status    string    `json:"status,omitempty"`
}

// ReadingTable is the full in-memory log: deduplicated by timestamp
// (last occurrence wins) and sorted ascending. Tables are replaced whole,
// never mutated in place.
type ReadingTable struct {
	Rows []Reading `json:"rows"`
	// LoadError carries the user-visible message when a whole-file parse
	// failure forced a fallback to the empty table.
	LoadError string    `json:"load_error,omitempty"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// Len returns the number of rows.
func (t ReadingTable) Len() int { return len(t.Rows) }

// Last returns the i-th row from the end (0 = latest).
func (t ReadingTable) Last(i int) Reading {
	return t.Rows[len(t.Rows)-1-i]
}
