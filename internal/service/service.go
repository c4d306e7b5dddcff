package service

import (
	"context"
	"time"

	"energy_dashboard/internal/logger"
	"energy_dashboard/internal/models"
	"energy_dashboard/internal/repository"
)

// Readings loads the energy log into an in-memory table: tolerant parse,
// duplicate timestamps collapsed (last wins), rows sorted ascending. Results
// are cached per (path, ttl) so polling within the ttl window does not
// re-read the file.
type Readings interface {
	Load(ctx context.Context, ttl time.Duration) models.ReadingTable
}

// Dashboard computes the derived metrics snapshot and serves chart history.
type Dashboard interface {
	Current(ctx context.Context) (models.Metrics, error)
	History(ctx context.Context) models.ReadingTable
}

// Device exposes the remote switch. The underlying call is a placeholder
// that always reports success; a production system would back it with a
// real HTTP/RPC client.
type Device interface {
	State() models.DeviceState
	Control(ctx context.Context, target string) (models.DeviceState, bool, error)
	Toggle(ctx context.Context) (models.DeviceState, bool)
}

// Settings holds the runtime-adjustable dashboard knobs (refresh interval,
// unit energy price).
type Settings interface {
	Get() SettingsView
	Update(ctx context.Context, p SettingsParams) (SettingsView, error)
}

// EventLog exposes the append-only audit log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ControlEvent, error)
}

// Poller runs the background refresh cycle (timer -> reload -> recompute ->
// publish). Stop via context cancellation in main() for graceful shutdown.
type Poller interface {
	Run(ctx context.Context)
	Latest() (models.Metrics, bool)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Readings
	Dashboard
	Device
	Settings
	EventLog
	Poller
}

// Defaults seeds the runtime settings at startup.
type Defaults struct {
	RefreshInterval time.Duration
	PricePerKWh     float64
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger, d Defaults) *Service {
	settings := NewSettingsService(d)
	readings := NewReadingsService(repos.Readings, log)
	dashboard := NewDashboardService(readings, settings)
	return &Service{
		Readings:  readings,
		Dashboard: dashboard,
		Device:    NewDeviceService(repos.Events, log),
		Settings:  settings,
		EventLog:  NewEventLogService(repos.Events),
		Poller:    NewPollerService(dashboard, settings, repos.Events, log),
	}
}
