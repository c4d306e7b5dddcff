package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const csvHeader = "Timestamp,Voltage (V),Current (A),Power (W),Energy (kWh),Status\n"

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "energy_log.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadAll_MissingFileIsEmptyDataset(t *testing.T) {
	t.Parallel()

	repo := NewCSVReadingRepo(filepath.Join(t.TempDir(), "nope.csv"))
	rows, err := repo.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty dataset, got %d rows", len(rows))
	}
}

func TestReadAll_EmptyFileIsEmptyDataset(t *testing.T) {
	t.Parallel()

	repo := NewCSVReadingRepo(writeLog(t, ""))
	rows, err := repo.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty dataset, got %d rows", len(rows))
	}
}

func TestReadAll_ParsesRowsInFileOrder(t *testing.T) {
	t.Parallel()

	path := writeLog(t, csvHeader+
		"2026-08-01 10:00:00,230.1,0.5,115.0,1.0,ok\n"+
		"2026-08-01 10:00:05,229.8,0.6,138.0,1.2,ok\n")
	repo := NewCSVReadingRepo(path)

	rows, err := repo.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	r := rows[0]
	want := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if !r.Timestamp.Equal(want) {
		t.Fatalf("timestamp: got %v, want %v", r.Timestamp, want)
	}
	if r.VoltageV == nil || *r.VoltageV != 230.1 {
		t.Fatalf("voltage: got %v, want 230.1", r.VoltageV)
	}
	if r.PowerW == nil || *r.PowerW != 115.0 {
		t.Fatalf("power: got %v, want 115.0", r.PowerW)
	}
	if r.EnergyKWh == nil || *r.EnergyKWh != 1.0 {
		t.Fatalf("energy: got %v, want 1.0", r.EnergyKWh)
	}
	if r.Status != "ok" {
		t.Fatalf("status: got %q, want %q", r.Status, "ok")
	}
}

func TestReadAll_UnparseableTimestampDropsRow(t *testing.T) {
	t.Parallel()

	path := writeLog(t, csvHeader+
		"not-a-time,230.0,0.5,115.0,1.0,ok\n"+
		"2026-08-01 10:00:05,229.8,0.6,138.0,1.2,ok\n")
	repo := NewCSVReadingRepo(path)

	rows, err := repo.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected bad-timestamp row to be dropped, got %d rows", len(rows))
	}
}

func TestReadAll_NonNumericCellKeepsRowWithNil(t *testing.T) {
	t.Parallel()

	path := writeLog(t, csvHeader+
		"2026-08-01 10:00:00,abc,0.5,115.0,1.0,ok\n")
	repo := NewCSVReadingRepo(path)

	rows, err := repo.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected row to be retained, got %d rows", len(rows))
	}
	if rows[0].VoltageV != nil {
		t.Fatalf("expected nil voltage, got %v", *rows[0].VoltageV)
	}
	if rows[0].CurrentA == nil || *rows[0].CurrentA != 0.5 {
		t.Fatalf("expected other cells intact, got current %v", rows[0].CurrentA)
	}
}

func TestReadAll_ShortRowFillsMissingCells(t *testing.T) {
	t.Parallel()

	path := writeLog(t, csvHeader+
		"2026-08-01 10:00:00,230.0\n")
	repo := NewCSVReadingRepo(path)

	rows, err := repo.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].PowerW != nil || rows[0].EnergyKWh != nil {
		t.Fatalf("expected missing trailing cells to be nil")
	}
	if rows[0].Status != "" {
		t.Fatalf("expected empty status, got %q", rows[0].Status)
	}
}

func TestReadAll_MissingHeaderColumnIsStructuralError(t *testing.T) {
	t.Parallel()

	path := writeLog(t, "Timestamp,Voltage (V)\n2026-08-01 10:00:00,230.0\n")
	repo := NewCSVReadingRepo(path)

	if _, err := repo.ReadAll(context.Background()); err == nil {
		t.Fatalf("expected structural error for missing columns")
	}
}

func TestReadAll_RFC3339TimestampsAccepted(t *testing.T) {
	t.Parallel()

	path := writeLog(t, csvHeader+
		"2026-08-01T10:00:00Z,230.0,0.5,115.0,1.0,ok\n")
	repo := NewCSVReadingRepo(path)

	rows, err := repo.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}
