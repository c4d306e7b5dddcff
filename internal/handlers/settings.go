package handlers

import (
	"net/http"

	"energy_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for the settings update. Pointer fields: omitted means unchanged.
type settingsRequest struct {
	RefreshIntervalSec *int     `json:"refresh_interval_sec,omitempty"`
	PricePerKWh        *float64 `json:"price_per_kwh,omitempty"`
}

// SettingsRequest is an exported model for Swagger docs of the settings payload.
type SettingsRequest struct {
	// Auto-refresh interval in seconds, 2..30
	RefreshIntervalSec int `json:"refresh_interval_sec" example:"5"`
	// Unit energy price per kWh, >= 0.01
	PricePerKWh float64 `json:"price_per_kwh" example:"7.50"`
}

// @Summary      Get dashboard settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  service.SettingsView
// @Router       /api/v1/settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Settings.Get())
}

// @Summary      Update dashboard settings
// @Description  Partial update; refresh interval bounded 2..30 seconds, price floor 0.01.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  SettingsRequest  true  "Settings payload"
// @Success      200   {object}  service.SettingsView
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/settings [put]
func (h *Handler) updateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	view, err := h.services.Settings.Update(c.Request.Context(), service.SettingsParams{
		RefreshIntervalSec: req.RefreshIntervalSec,
		PricePerKWh:        req.PricePerKWh,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
