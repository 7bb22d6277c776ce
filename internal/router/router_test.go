package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventura/eventura-backend/internal/config"
	"github.com/eventura/eventura-backend/internal/handler"
	"github.com/eventura/eventura-backend/internal/model"
	"github.com/eventura/eventura-backend/internal/response"
	"github.com/eventura/eventura-backend/internal/service"
	"github.com/eventura/eventura-backend/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	os.Exit(m.Run())
}

// fixture stores backing the routed services.

type fixtureStudents struct {
	students []model.Student
}

func (f *fixtureStudents) GetByID(_ context.Context, id int) (*model.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fixtureStudents) List(_ context.Context, filter model.StudentFilter, _ model.StudentSort, limit, offset int) ([]model.Student, int, error) {
	matched := []model.Student{}
	for _, s := range f.students {
		if filter.CollegeID != nil && s.CollegeID != *filter.CollegeID {
			continue
		}
		if filter.ActiveSince != nil && s.LastActivity.Before(*filter.ActiveSince) {
			continue
		}
		matched = append(matched, s)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		return matched[i].ID < matched[j].ID
	})
	total := len(matched)
	if offset >= total {
		return []model.Student{}, total, nil
	}
	if end := offset + limit; end < total {
		matched = matched[offset:end]
	} else {
		matched = matched[offset:]
	}
	return matched, total, nil
}

func (f *fixtureStudents) TopByScore(ctx context.Context, limit int) ([]model.Student, error) {
	top, _, err := f.List(ctx, model.StudentFilter{}, model.SortByScore, limit, 0)
	return top, err
}

func (f *fixtureStudents) SearchByName(_ context.Context, query string, limit int) ([]model.Student, error) {
	results := []model.Student{}
	for _, s := range f.students {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(query)) {
			results = append(results, s)
			if len(results) == limit {
				break
			}
		}
	}
	return results, nil
}

func (f *fixtureStudents) ListByCollege(_ context.Context, collegeID int) ([]model.Student, error) {
	students := []model.Student{}
	for _, s := range f.students {
		if s.CollegeID == collegeID {
			students = append(students, s)
		}
	}
	return students, nil
}

func (f *fixtureStudents) ListAll(_ context.Context) ([]model.Student, error) {
	return f.students, nil
}

func (f *fixtureStudents) Count(_ context.Context) (int, error) {
	return len(f.students), nil
}

type fixtureColleges struct {
	colleges []model.College
}

func (f *fixtureColleges) GetByID(_ context.Context, id int) (*model.College, error) {
	for _, c := range f.colleges {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fixtureColleges) ListAll(_ context.Context) ([]model.College, error) {
	return f.colleges, nil
}

func (f *fixtureColleges) Count(_ context.Context) (int, error) {
	return len(f.colleges), nil
}

type fixtureEvents struct {
	events []model.Event
}

func (f *fixtureEvents) List(_ context.Context, collegeID *int, limit, offset int) ([]model.Event, int, error) {
	matched := []model.Event{}
	for _, e := range f.events {
		if collegeID != nil && e.CollegeID != *collegeID {
			continue
		}
		matched = append(matched, e)
	}
	total := len(matched)
	if offset >= total {
		return []model.Event{}, total, nil
	}
	if end := offset + limit; end < total {
		matched = matched[offset:end]
	} else {
		matched = matched[offset:]
	}
	return matched, total, nil
}

func (f *fixtureEvents) TopByParticipants(_ context.Context, limit int) ([]model.Event, error) {
	out := append([]model.Event{}, f.events...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Participants > out[j].Participants })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fixtureEvents) CountsByCollege(_ context.Context) (map[int]int, error) {
	counts := make(map[int]int)
	for _, e := range f.events {
		counts[e.CollegeID]++
	}
	return counts, nil
}

func (f *fixtureEvents) Count(_ context.Context) (int, error) {
	return len(f.events), nil
}

func newTestRouter() *gin.Engine {
	students := &fixtureStudents{students: []model.Student{
		{ID: 1, Name: "Ivan Petrov", CollegeID: 1, Score: 800, Rating: 1, LastActivity: time.Now()},
		{ID: 2, Name: "Anna Ivanova", CollegeID: 1, Score: 600, Rating: 2, LastActivity: time.Now()},
		{ID: 3, Name: "Petr Sidorov", CollegeID: 2, Score: 400, Rating: 3, LastActivity: time.Now()},
	}}
	colleges := &fixtureColleges{colleges: []model.College{
		{ID: 1, Name: "College #1", City: "RF"},
		{ID: 2, Name: "College #2", City: "RF"},
	}}
	events := &fixtureEvents{events: []model.Event{
		{ID: 1, Name: "Event 1", CollegeID: 1, Participants: 120, Date: time.Now()},
		{ID: 2, Name: "Event 2", CollegeID: 2, Participants: 80, Date: time.Now()},
	}}

	log := zerolog.Nop()
	studentSvc := service.NewStudentService(students)
	collegeSvc := service.NewCollegeService(colleges, students, nil, 0, log)
	eventSvc := service.NewEventService(events)
	ratingSvc := service.NewRatingService(students, colleges)
	analyticsSvc := service.NewAnalyticsService(students, colleges, nil, 0, log)
	statsSvc := service.NewStatsService(students, colleges, events, nil, 0, log)

	handlers := &Handlers{
		Student:   handler.NewStudentHandler(studentSvc),
		College:   handler.NewCollegeHandler(collegeSvc),
		Event:     handler.NewEventHandler(eventSvc),
		Rating:    handler.NewRatingHandler(ratingSvc),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc),
		Stats:     handler.NewStatsHandler(statsSvc),
	}
	return SetupRouter(handlers, &config.Config{GinMode: gin.TestMode, CacheTTL: time.Minute})
}

func doGET(t *testing.T, r *gin.Engine, path string) (int, map[string]json.RawMessage) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	body := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestListStudentsEnvelope(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/students")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "students")
	assert.Contains(t, body, "pagination")

	var pagination response.Pagination
	require.NoError(t, json.Unmarshal(body["pagination"], &pagination))
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, service.DefaultPageSize, pagination.Limit)
	assert.Equal(t, 3, pagination.Total)
	assert.Equal(t, 1, pagination.Pages)
}

func TestListStudents_MalformedParamsFallBack(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/students?page=abc&limit=-5&college=xyz&period=decade&sort=height")
	assert.Equal(t, http.StatusOK, code)

	var pagination response.Pagination
	require.NoError(t, json.Unmarshal(body["pagination"], &pagination))
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, service.DefaultPageSize, pagination.Limit)
	assert.Equal(t, 3, pagination.Total) // malformed college filter ignored
}

func TestGetStudent(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/students/1")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "student")
}

func TestGetStudent_NotFound(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/api/v1/students/999", "/api/v1/students/abc"} {
		code, body := doGET(t, r, path)
		assert.Equal(t, http.StatusNotFound, code, path)
		var msg string
		require.NoError(t, json.Unmarshal(body["error"], &msg))
		assert.Equal(t, "Student not found", msg)
	}
}

func TestSearchStudents(t *testing.T) {
	r := newTestRouter()

	payload := bytes.NewBufferString(`{"query": "iva", "limit": 5}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/search", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Results []model.Student `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Results, 2) // Ivan Petrov, Anna Ivanova
}

func TestSearchStudents_MalformedBody(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/search", bytes.NewBufferString(`{"limit": `))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCollegeDetailEnvelope(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/colleges/1")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "college")
	assert.Contains(t, body, "students")
	assert.Contains(t, body, "stats")

	code, _ = doGET(t, r, "/api/v1/colleges/999")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLeaderboardEnvelope(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/colleges/leaderboard")
	assert.Equal(t, http.StatusOK, code)

	var entries []model.LeaderboardEntry
	require.NoError(t, json.Unmarshal(body["colleges"], &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.InDelta(t, 700.0, entries[0].AvgScore, 1e-9)
}

func TestRatingRoutes(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/ratings/global")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "rating")
	assert.Contains(t, body, "pagination")

	code, body = doGET(t, r, "/api/v1/ratings/college/2")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "college_rating")
	var name string
	require.NoError(t, json.Unmarshal(body["college_name"], &name))
	assert.Equal(t, "College #2", name)

	code, _ = doGET(t, r, "/api/v1/ratings/college/404")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAnalyticsRoutes(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/analytics/distribution")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "distribution")

	code, body = doGET(t, r, "/api/v1/analytics/top-by-college")
	assert.Equal(t, http.StatusOK, code)

	var top []model.CollegeTopStudent
	require.NoError(t, json.Unmarshal(body["top_by_college"], &top))
	require.Len(t, top, 2)
	assert.Equal(t, "Ivan Petrov", top[0].Student)
}

func TestAnalyticsCacheControlHeader(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/distribution", nil)
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=60")
}

func TestStatsAndHealth(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/stats")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "events")
	assert.Contains(t, body, "students")
	assert.Contains(t, body, "colleges")
	assert.Contains(t, body, "status")

	code, body = doGET(t, r, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "collections")
	var status string
	require.NoError(t, json.Unmarshal(body["status"], &status))
	assert.Equal(t, "healthy", status)
}

func TestEventRoutes(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/events")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "events")
	assert.Contains(t, body, "pagination")

	code, body = doGET(t, r, "/api/v1/events/top")
	assert.Equal(t, http.StatusOK, code)
	var events []model.Event
	require.NoError(t, json.Unmarshal(body["events"], &events))
	require.Len(t, events, 2)
	assert.Equal(t, 120, events[0].Participants)
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	r := newTestRouter()

	code, body := doGET(t, r, "/api/v1/nothing-here")
	assert.Equal(t, http.StatusNotFound, code)

	var msg string
	require.NoError(t, json.Unmarshal(body["error"], &msg))
	assert.Equal(t, "Endpoint not found", msg)
}
