package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventura/eventura-backend/internal/response"
	"github.com/eventura/eventura-backend/internal/service"
)

// EventHandler handles event listing endpoints.
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents godoc
// GET /api/v1/events?page=1&limit=20&college=1
// Lists events newest first with pagination and an optional college filter.
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	events, pagination, err := h.eventService.List(c.Request.Context(), page, limit, optionalIntQuery(c, "college"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"events": events, "pagination": pagination})
}

// TopEvents godoc
// GET /api/v1/events/top
// Returns the ten best-attended events.
func (h *EventHandler) TopEvents(c *gin.Context) {
	events, err := h.eventService.Top(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"events": events})
}
