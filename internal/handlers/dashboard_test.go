package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"energy_dashboard/internal/models"
	"energy_dashboard/internal/service"
)

func doGet(t *testing.T, s *service.Service, url string) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(s)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func fp(v float64) *float64 { return &v }

func rowAt(sec int) models.Reading {
	return models.Reading{
		Timestamp: time.Date(2026, 8, 1, 10, 0, sec, 0, time.UTC),
		PowerW:    fp(float64(100 + sec)),
	}
}

func TestHealth_IncludesLastPoll(t *testing.T) {
	s := &service.Service{Poller: &mockPoller{
		latest: models.Metrics{Samples: 4, GeneratedAt: time.Now().UTC()},
		polled: true,
	}}
	w := doGet(t, s, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected ok status, got %v", body["status"])
	}
	if body["samples"] != float64(4) {
		t.Fatalf("expected samples=4, got %v", body["samples"])
	}
}

func TestGetMetrics_OK(t *testing.T) {
	dash := &mockDashboard{metrics: models.Metrics{
		Samples:        3,
		TotalEnergyKWh: 1.5,
		PeakPowerW:     310,
		CostEstimate:   11.25,
	}}
	s := &service.Service{Dashboard: dash}

	w := doGet(t, s, "/api/v1/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Status  string         `json:"status"`
		Metrics models.Metrics `json:"metrics"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("expected status ok, got %q", body.Status)
	}
	if body.Metrics.TotalEnergyKWh != 1.5 || body.Metrics.PeakPowerW != 310 {
		t.Fatalf("unexpected metrics: %+v", body.Metrics)
	}
}

func TestGetMetrics_WaitingForData(t *testing.T) {
	dash := &mockDashboard{
		metrics: models.Metrics{Samples: 1},
		err:     service.ErrInsufficientData,
	}
	s := &service.Service{Dashboard: dash}

	w := doGet(t, s, "/api/v1/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("waiting state must not be an error, status=%d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != statusWaiting {
		t.Fatalf("expected %q, got %v", statusWaiting, body["status"])
	}
	if body["samples"] != float64(1) {
		t.Fatalf("expected samples=1, got %v", body["samples"])
	}
}

func TestGetMetrics_WaitingCarriesLoadError(t *testing.T) {
	dash := &mockDashboard{
		metrics: models.Metrics{Samples: 0, LoadError: "read energy log header: boom"},
		err:     service.ErrInsufficientData,
	}
	s := &service.Service{Dashboard: dash}

	w := doGet(t, s, "/api/v1/metrics")
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["load_error"] == nil {
		t.Fatalf("expected load_error surfaced, body=%v", body)
	}
}

func TestGetReadings_TailLimit(t *testing.T) {
	dash := &mockDashboard{history: models.ReadingTable{
		Rows:     []models.Reading{rowAt(0), rowAt(5), rowAt(10)},
		LoadedAt: time.Now().UTC(),
	}}
	s := &service.Service{Dashboard: dash}

	w := doGet(t, s, "/api/v1/readings?limit=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Count int              `json:"count"`
		Rows  []models.Reading `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Count != 2 || len(body.Rows) != 2 {
		t.Fatalf("expected 2 tail rows, got count=%d len=%d", body.Count, len(body.Rows))
	}
	// Tail keeps the most recent rows.
	if *body.Rows[1].PowerW != 110 {
		t.Fatalf("expected last row power 110, got %v", *body.Rows[1].PowerW)
	}
}

func TestGetReadings_BadLimit(t *testing.T) {
	s := &service.Service{Dashboard: &mockDashboard{}}
	for _, q := range []string{"limit=-1", "limit=abc"} {
		w := doGet(t, s, "/api/v1/readings?"+q)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", q, w.Code)
		}
	}
}

func TestGetReadings_NoLimitReturnsAll(t *testing.T) {
	dash := &mockDashboard{history: models.ReadingTable{
		Rows: []models.Reading{rowAt(0), rowAt(5), rowAt(10)},
	}}
	s := &service.Service{Dashboard: dash}

	w := doGet(t, s, "/api/v1/readings")
	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Count != 3 {
		t.Fatalf("expected all 3 rows, got %d", body.Count)
	}
}
