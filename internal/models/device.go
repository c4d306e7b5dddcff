package models

import "time"

// Device statuses.
const (
	DeviceOn  = "ON"
	DeviceOff = "OFF"
)

// DeviceState is the ephemeral, process-local switch state. It defaults to
// OFF at startup, is mutated only by the control service, and is never
// persisted.
type DeviceState struct {
	Status     string    `json:"status"` // ON | OFF
	LastChange time.Time `json:"last_change"`
}

// IsOn reports whether the device is switched on.
func (s DeviceState) IsOn() bool { return s.Status == DeviceOn }
