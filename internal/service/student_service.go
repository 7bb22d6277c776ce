package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eventura/eventura-backend/internal/model"
	"github.com/eventura/eventura-backend/internal/response"
)

// Listing defaults. Out-of-range caller values are clamped, never rejected.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	defaultSearchLimit = 10
	top3Limit          = 3
)

// ListStudentsParams is the normalized query for a student listing.
type ListStudentsParams struct {
	Page      int
	Limit     int
	CollegeID *int
	Period    model.ActivityPeriod
	Sort      model.StudentSort
}

// StudentService handles student listing, lookup and search.
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{students: students}
}

// List retrieves one page of students with filtering and sorting.
func (s *StudentService) List(ctx context.Context, p ListStudentsParams) ([]model.Student, *response.Pagination, error) {
	page, limit := clampPage(p.Page, p.Limit, DefaultPageSize)

	filter := model.StudentFilter{CollegeID: p.CollegeID}
	if since, ok := p.Period.Window(time.Now()); ok {
		filter.ActiveSince = &since
	}

	students, total, err := s.students.List(ctx, filter, p.Sort, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	return students, response.NewPagination(page, limit, total), nil
}

// GetByID retrieves a single student, mapping store absence onto
// ErrStudentNotFound.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// Top3 retrieves the three highest-scoring students.
func (s *StudentService) Top3(ctx context.Context) ([]model.Student, error) {
	return s.students.TopByScore(ctx, top3Limit)
}

// Search retrieves students whose name contains the query, case-insensitive.
// An empty query matches everyone. The limit defaults to 10 and is clamped to
// the listing maximum.
func (s *StudentService) Search(ctx context.Context, query string, limit int) ([]model.Student, error) {
	if limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return s.students.SearchByName(ctx, query, limit)
}

// clampPage normalizes pagination input: page defaults to 1, limit to the
// given default, and limit never exceeds MaxPageSize.
func clampPage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
