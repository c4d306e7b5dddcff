package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"energy_dashboard/internal/models"
)

// Expected header columns of the energy log.
const (
	colTimestamp = "Timestamp"
	colVoltage   = "Voltage (V)"
	colCurrent   = "Current (A)"
	colPower     = "Power (W)"
	colEnergy    = "Energy (kWh)"
	colStatus    = "Status"
)

// timestampLayouts are tried in order when coercing the Timestamp column.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// CSVReadingRepo reads readings from a comma-separated log file that an
// external process appends to.
type CSVReadingRepo struct {
	path string
}

func NewCSVReadingRepo(path string) *CSVReadingRepo {
	return &CSVReadingRepo{path: path}
}

// ReadAll parses the whole log file.
//   - A missing file is an empty dataset, not an error.
//   - A row whose timestamp cannot be parsed is dropped.
//   - A non-numeric cell in a numeric column becomes nil; the row is kept.
//   - A structural failure (unreadable CSV, wrong header) is returned as an
//     error for the caller to surface.
func (r *CSVReadingRepo) ReadAll(ctx context.Context) ([]models.Reading, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Reading{}, nil
		}
		return nil, fmt.Errorf("open energy log %q: %w", r.path, err)
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // tolerate short/long rows; cells are mapped by header index
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return []models.Reading{}, nil // empty file
		}
		return nil, fmt.Errorf("read energy log header: %w", err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	out := make([]models.Reading, 0, 256)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read energy log row: %w", err)
		}
		ts, ok := parseTimestamp(cell(rec, idx.timestamp))
		if !ok {
			continue // unparseable timestamp drops the row
		}
		out = append(out, models.Reading{
			Timestamp: ts,
			VoltageV:  parseFloatCell(cell(rec, idx.voltage)),
			CurrentA:  parseFloatCell(cell(rec, idx.current)),
			PowerW:    parseFloatCell(cell(rec, idx.power)),
			EnergyKWh: parseFloatCell(cell(rec, idx.energy)),
			Status:    cell(rec, idx.status),
		})
	}
	return out, nil
}

// columnIndex holds the position of each known column in the header row.
type columnIndex struct {
	timestamp, voltage, current, power, energy, status int
}

func headerIndex(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	idx := columnIndex{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{colTimestamp, &idx.timestamp},
		{colVoltage, &idx.voltage},
		{colCurrent, &idx.current},
		{colPower, &idx.power},
		{colEnergy, &idx.energy},
		{colStatus, &idx.status},
	} {
		i, ok := pos[want.name]
		if !ok {
			return columnIndex{}, fmt.Errorf("energy log header missing column %q", want.name)
		}
		*want.dst = i
	}
	return idx, nil
}

// cell returns the trimmed field at i, or "" when the row is too short.
func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseFloatCell coerces a numeric cell, returning nil for anything that is
// not a number.
func parseFloatCell(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
