package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventura/eventura-backend/internal/response"
	"github.com/eventura/eventura-backend/internal/service"
)

// CollegeHandler handles college listing, detail and leaderboard endpoints.
type CollegeHandler struct {
	collegeService *service.CollegeService
}

// NewCollegeHandler creates a new CollegeHandler.
func NewCollegeHandler(collegeService *service.CollegeService) *CollegeHandler {
	return &CollegeHandler{collegeService: collegeService}
}

// ListColleges godoc
// GET /api/v1/colleges
// Returns every college, id ascending.
func (h *CollegeHandler) ListColleges(c *gin.Context) {
	colleges, err := h.collegeService.ListAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"colleges": colleges})
}

// GetCollege godoc
// GET /api/v1/colleges/:id
// Returns a college, its students and the derived rollup, or 404.
func (h *CollegeHandler) GetCollege(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrCollegeNotFound)
		return
	}

	college, students, stats, err := h.collegeService.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCollegeNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCollegeNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{
		"college":  college,
		"students": students,
		"stats":    stats,
	})
}

// Leaderboard godoc
// GET /api/v1/colleges/leaderboard
// Returns colleges ranked by average student score.
func (h *CollegeHandler) Leaderboard(c *gin.Context) {
	entries, err := h.collegeService.Leaderboard(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"colleges": entries})
}
