package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventura/eventura-backend/internal/model"
	"github.com/eventura/eventura-backend/internal/response"
	"github.com/eventura/eventura-backend/internal/service"
	"github.com/eventura/eventura-backend/internal/validator"
)

// StudentHandler handles student listing, lookup and search endpoints.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// ListStudents godoc
// GET /api/v1/students?page=1&limit=20&college=1&period=month&sort=score
// Lists students with pagination, filtering and sorting. Bad parameter
// values fall back to defaults instead of erroring.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	params := service.ListStudentsParams{
		Page:      page,
		Limit:     limit,
		CollegeID: optionalIntQuery(c, "college"),
		Period:    model.ParseActivityPeriod(c.DefaultQuery("period", "all")),
		Sort:      model.ParseStudentSort(c.DefaultQuery("sort", "score")),
	}

	students, pagination, err := h.studentService.List(c.Request.Context(), params)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"students": students, "pagination": pagination})
}

// Top3Students godoc
// GET /api/v1/students/top3
// Returns the three highest-scoring students, no pagination metadata.
func (h *StudentHandler) Top3Students(c *gin.Context) {
	students, err := h.studentService.Top3(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"students": students})
}

// GetStudent godoc
// GET /api/v1/students/:id
// Returns a single student or 404.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"student": student})
}

// SearchStudents godoc
// POST /api/v1/students/search
// Body {query, limit}: case-insensitive substring match on name.
func (h *StudentHandler) SearchStudents(c *gin.Context) {
	var req model.SearchStudentsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithMessage(c, http.StatusBadRequest, response.GetMessage(response.ErrInvalidPayload))
		return
	}

	results, err := h.studentService.Search(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{"results": results})
}

// optionalIntQuery parses an optional integer query parameter. Missing or
// malformed values mean "no filter" (clamp-and-default policy).
func optionalIntQuery(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
