package handlers

import (
	"context"

	"energy_dashboard/internal/models"
	"energy_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockDashboard struct {
	metrics models.Metrics
	err     error
	history models.ReadingTable

	currentCalls int
	historyCalls int
}

func (m *mockDashboard) Current(ctx context.Context) (models.Metrics, error) {
	m.currentCalls++
	return m.metrics, m.err
}
func (m *mockDashboard) History(ctx context.Context) models.ReadingTable {
	m.historyCalls++
	return m.history
}

type mockDevice struct {
	state      models.DeviceState
	controlOK  bool
	controlErr error

	lastTarget  string
	toggleCalls int
}

func (m *mockDevice) State() models.DeviceState { return m.state }
func (m *mockDevice) Control(ctx context.Context, target string) (models.DeviceState, bool, error) {
	m.lastTarget = target
	if m.controlErr != nil {
		return m.state, false, m.controlErr
	}
	return m.state, m.controlOK, nil
}
func (m *mockDevice) Toggle(ctx context.Context) (models.DeviceState, bool) {
	m.toggleCalls++
	return m.state, true
}

type mockSettings struct {
	view       service.SettingsView
	updateErr  error
	lastParams service.SettingsParams
}

func (m *mockSettings) Get() service.SettingsView { return m.view }
func (m *mockSettings) Update(ctx context.Context, p service.SettingsParams) (service.SettingsView, error) {
	m.lastParams = p
	if m.updateErr != nil {
		return service.SettingsView{}, m.updateErr
	}
	return m.view, nil
}

type mockEventLog struct {
	resp       []models.ControlEvent
	err        error
	lastFilter service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ControlEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

type mockPoller struct {
	latest models.Metrics
	polled bool
}

func (m *mockPoller) Run(ctx context.Context) {}
func (m *mockPoller) Latest() (models.Metrics, bool) {
	return m.latest, m.polled
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
