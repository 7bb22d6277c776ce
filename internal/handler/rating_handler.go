package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventura/eventura-backend/internal/response"
	"github.com/eventura/eventura-backend/internal/service"
)

// RatingHandler handles the global and per-college ranking endpoints.
type RatingHandler struct {
	ratingService *service.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// GlobalRating godoc
// GET /api/v1/ratings/global?page=1&limit=50
// Returns one page of the full student ranking by score.
func (h *RatingHandler) GlobalRating(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	students, pagination, err := h.ratingService.Global(c.Request.Context(), page, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"rating": students, "pagination": pagination})
}

// CollegeRating godoc
// GET /api/v1/ratings/college/:id
// Returns every student of a college ranked by score, or 404 when the
// college does not exist.
func (h *RatingHandler) CollegeRating(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrCollegeNotFound)
		return
	}

	students, collegeName, err := h.ratingService.ByCollege(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCollegeNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCollegeNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"college_rating": students, "college_name": collegeName})
}
