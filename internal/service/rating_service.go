package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/eventura/eventura-backend/internal/model"
	"github.com/eventura/eventura-backend/internal/response"
)

// DefaultRatingPageSize is the global rating page size; larger than listings
// because rating pages are scanned top-down by dashboards.
const DefaultRatingPageSize = 50

// RatingService handles the global and per-college score rankings.
type RatingService struct {
	students StudentStore
	colleges CollegeStore
}

// NewRatingService creates a new RatingService.
func NewRatingService(students StudentStore, colleges CollegeStore) *RatingService {
	return &RatingService{students: students, colleges: colleges}
}

// Global retrieves one page of the full student ranking, best score first.
func (s *RatingService) Global(ctx context.Context, page, limit int) ([]model.Student, *response.Pagination, error) {
	page, limit = clampPage(page, limit, DefaultRatingPageSize)

	students, total, err := s.students.List(ctx, model.StudentFilter{}, model.SortByScore, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	return students, response.NewPagination(page, limit, total), nil
}

// ByCollege retrieves every student of one college ranked by score, plus the
// college's display name. The college itself must exist.
func (s *RatingService) ByCollege(ctx context.Context, collegeID int) ([]model.Student, string, error) {
	college, err := s.colleges.GetByID(ctx, collegeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrCollegeNotFound
		}
		return nil, "", err
	}

	students, err := s.students.ListByCollege(ctx, collegeID)
	if err != nil {
		return nil, "", err
	}
	return students, college.Name, nil
}
