package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventura/eventura-backend/internal/response"
	"github.com/eventura/eventura-backend/internal/service"
)

// StatsHandler handles global stats, per-college stats and health endpoints.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// GET /api/v1/stats
// Returns global collection counts with a health marker and timestamp.
func (h *StatsHandler) GetStats(c *gin.Context) {
	overview, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// StatsByCollege godoc
// GET /api/v1/stats/by-college
// Returns per-college student counts, scores and hosted event counts.
func (h *StatsHandler) StatsByCollege(c *gin.Context) {
	stats, err := h.statsService.ByCollege(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"colleges": stats})
}

// Health godoc
// GET /health
// Liveness probe with collection counts.
func (h *StatsHandler) Health(c *gin.Context) {
	counts, err := h.statsService.Counts(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{
		"status":      "healthy",
		"database":    "connected",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"collections": counts,
	})
}
