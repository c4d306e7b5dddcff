package models

import "time"

// Event types recorded in the audit log.
const (
	EventSwitchOn  = "SWITCH_ON"
	EventSwitchOff = "SWITCH_OFF"
	EventLoadError = "LOAD_ERROR"
)

// ControlEvent is a single audit log entry.
type ControlEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // SWITCH_ON | SWITCH_OFF | LOAD_ERROR
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
