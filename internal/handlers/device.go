package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errInvalidBodyPref = "invalid body: "

// Request DTO for the control call.
type controlRequest struct {
	State string `json:"state" binding:"required"` // ON | OFF
}

// ControlRequest is an exported model for Swagger docs of the control payload.
type ControlRequest struct {
	// Target state. Allowed: ON, OFF
	State string `json:"state" example:"ON"`
}

// @Summary      Get device state
// @Tags         device
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/device [get]
func (h *Handler) getDevice(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Device.State())
}

// @Summary      Switch the device to a target state
// @Description  Simulated control API: the call always reports success for a valid target. Placeholder for a real network client.
// @Tags         device
// @Accept       json
// @Produce      json
// @Param        body  body  ControlRequest  true  "Control payload"
// @Success      200   {object}  map[string]interface{}  "success, state"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/device/control [post]
func (h *Handler) controlDevice(c *gin.Context) {
	var req controlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	st, ok, err := h.services.Device.Control(c.Request.Context(), req.State)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("device_control_failed", "err", err, "target", req.State)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": ok, "state": st})
}

// @Summary      Toggle the device
// @Tags         device
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, state"
// @Router       /api/v1/device/toggle [post]
func (h *Handler) toggleDevice(c *gin.Context) {
	st, ok := h.services.Device.Toggle(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": ok, "state": st})
}
