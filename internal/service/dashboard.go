package service

import (
	"context"
	"errors"
	"time"

	"energy_dashboard/internal/models"

	"github.com/dustin/go-humanize"
)

// ErrInsufficientData is returned while the log holds fewer than two rows.
// It marks a "waiting for data" state, not a failure.
var ErrInsufficientData = errors.New("insufficient data: at least 2 readings required")

// minSamples is the smallest table the delta computation is defined for.
const minSamples = 2

// DashboardService derives the metrics snapshot from the loaded table.
type DashboardService struct {
	readings Readings
	settings Settings
}

func NewDashboardService(readings Readings, settings Settings) *DashboardService {
	return &DashboardService{readings: readings, settings: settings}
}

// History returns the full table for chart rendering.
func (s *DashboardService) History(ctx context.Context) models.ReadingTable {
	return s.readings.Load(ctx, s.settings.Get().RefreshInterval())
}

// Current computes the snapshot from the latest table. With fewer than two
// rows it returns the partial snapshot together with ErrInsufficientData.
func (s *DashboardService) Current(ctx context.Context) (models.Metrics, error) {
	cfg := s.settings.Get()
	table := s.readings.Load(ctx, cfg.RefreshInterval())

	m := models.Metrics{
		PricePerKWh: cfg.PricePerKWh,
		Samples:     table.Len(),
		LoadError:   table.LoadError,
		GeneratedAt: time.Now().UTC(),
	}
	if table.Len() < minSamples {
		return m, ErrInsufficientData
	}

	latest, prev := table.Last(0), table.Last(1)
	m.Timestamp = latest.Timestamp
	m.VoltageV = latest.VoltageV
	m.CurrentA = latest.CurrentA
	m.PowerW = latest.PowerW
	m.EnergyKWh = latest.EnergyKWh

	m.PowerDeltaW = delta(latest.PowerW, prev.PowerW)
	m.EnergyDeltaKWh = delta(latest.EnergyKWh, prev.EnergyKWh)

	// Max rather than last: the cumulative column is monotone by convention
	// only, and a trailing out-of-order dip must not shrink the total.
	m.TotalEnergyKWh = columnMax(table.Rows, func(r models.Reading) *float64 { return r.EnergyKWh })
	m.PeakPowerW = columnMax(table.Rows, func(r models.Reading) *float64 { return r.PowerW })

	m.CostEstimate = m.TotalEnergyKWh * cfg.PricePerKWh
	m.CostDisplay = humanize.FormatFloat("#,###.##", m.CostEstimate)
	return m, nil
}

// delta returns a-b, or nil when either endpoint is missing.
func delta(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	d := *a - *b
	return &d
}

// columnMax scans a column ignoring missing cells. An all-missing column
// yields 0.
func columnMax(rows []models.Reading, col func(models.Reading) *float64) float64 {
	var (
		best  float64
		found bool
	)
	for _, r := range rows {
		v := col(r)
		if v == nil {
			continue
		}
		if !found || *v > best {
			best = *v
			found = true
		}
	}
	return best
}
