package service

import (
	"context"
	"errors"

	"github.com/eventura/eventura-backend/internal/model"
)

// Domain errors surfaced to handlers. Store-level failures are returned as-is
// and map to a generic 500 at the edge.
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrCollegeNotFound = errors.New("college not found")
)

// The services read the record store through narrow per-collection
// interfaces so tests can substitute in-memory stores. Absence of a record
// is signalled with pgx.ErrNoRows by the PostgreSQL implementations in
// internal/repository.

// StudentStore is the student slice of the record store.
type StudentStore interface {
	GetByID(ctx context.Context, id int) (*model.Student, error)
	List(ctx context.Context, filter model.StudentFilter, sort model.StudentSort, limit, offset int) ([]model.Student, int, error)
	TopByScore(ctx context.Context, limit int) ([]model.Student, error)
	SearchByName(ctx context.Context, query string, limit int) ([]model.Student, error)
	ListByCollege(ctx context.Context, collegeID int) ([]model.Student, error)
	ListAll(ctx context.Context) ([]model.Student, error)
	Count(ctx context.Context) (int, error)
}

// CollegeStore is the college slice of the record store.
type CollegeStore interface {
	GetByID(ctx context.Context, id int) (*model.College, error)
	ListAll(ctx context.Context) ([]model.College, error)
	Count(ctx context.Context) (int, error)
}

// EventStore is the event slice of the record store.
type EventStore interface {
	List(ctx context.Context, collegeID *int, limit, offset int) ([]model.Event, int, error)
	TopByParticipants(ctx context.Context, limit int) ([]model.Event, error)
	CountsByCollege(ctx context.Context) (map[int]int, error)
	Count(ctx context.Context) (int, error)
}

// collegeNames folds a college list into an id → display name lookup.
// Dangling college references resolve to model.UnknownCollegeName.
func collegeNames(colleges []model.College) map[int]string {
	names := make(map[int]string, len(colleges))
	for _, c := range colleges {
		names[c.ID] = c.Name
	}
	return names
}

func nameOf(names map[int]string, collegeID int) string {
	if name, ok := names[collegeID]; ok {
		return name
	}
	return model.UnknownCollegeName
}
