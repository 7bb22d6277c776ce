package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventura/eventura-backend/internal/response"
	"github.com/eventura/eventura-backend/internal/service"
)

// AnalyticsHandler handles the score distribution and per-college top
// scorer endpoints.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Distribution godoc
// GET /api/v1/analytics/distribution
// Returns the non-empty score histogram buckets.
func (h *AnalyticsHandler) Distribution(c *gin.Context) {
	buckets, err := h.analyticsService.Distribution(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"distribution": buckets})
}

// TopByCollege godoc
// GET /api/v1/analytics/top-by-college
// Returns the best student of each college that has students.
func (h *AnalyticsHandler) TopByCollege(c *gin.Context) {
	top, err := h.analyticsService.TopByCollege(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"top_by_college": top})
}
