package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"energy_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusWaiting = "waiting_for_data"

	msgWaiting = "waiting for data: at least 2 readings are required"

	errBadLimit = "invalid 'limit': must be a non-negative integer"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	resp := gin.H{"status": statusOK}
	if m, ok := h.services.Poller.Latest(); ok {
		resp["last_poll"] = m.GeneratedAt
		resp["samples"] = m.Samples
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Dashboard metrics snapshot
// @Description  Latest sample, deltas between the two most recent samples, running maxima and the cost estimate. With fewer than 2 readings the response carries status "waiting_for_data" instead of metrics.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, metrics"
// @Router       /api/v1/metrics [get]
func (h *Handler) getMetrics(c *gin.Context) {
	m, err := h.services.Dashboard.Current(c.Request.Context())
	if errors.Is(err, service.ErrInsufficientData) {
		resp := gin.H{
			"status":  statusWaiting,
			"message": msgWaiting,
			"samples": m.Samples,
		}
		if m.LoadError != "" {
			resp["load_error"] = m.LoadError
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to compute metrics", "metrics_compute_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK, "metrics": m})
}

// @Summary      Reading history
// @Description  The loaded table, sorted ascending by timestamp. limit=N returns only the N most recent rows (0 = all).
// @Tags         dashboard
// @Produce      json
// @Param        limit  query  int  false  "Tail length"  example(10)
// @Success      200    {object}  map[string]interface{}  "count, rows"
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/readings [get]
func (h *Handler) getReadings(c *gin.Context) {
	limit := 0
	if qs := c.Query("limit"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errBadLimit})
			return
		}
		limit = v
	}

	table := h.services.Dashboard.History(c.Request.Context())
	rows := table.Rows
	if limit > 0 && limit < len(rows) {
		rows = rows[len(rows)-limit:]
	}

	resp := gin.H{
		"count":     len(rows),
		"rows":      rows,
		"loaded_at": table.LoadedAt,
	}
	if table.LoadError != "" {
		resp["load_error"] = table.LoadError
	}
	c.JSON(http.StatusOK, resp)
}
