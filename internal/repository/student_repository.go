package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventura/eventura-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, name, college_id, score, events_count, rating, last_activity, joined_date`

func scanStudent(row pgx.Row, s *model.Student) error {
	return row.Scan(&s.ID, &s.Name, &s.CollegeID, &s.Score, &s.EventsCount, &s.Rating, &s.LastActivity, &s.JoinedDate)
}

// GetByID retrieves a student by ID. Returns pgx.ErrNoRows when absent.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id,
	), s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// orderClause maps a sort key onto a deterministic ORDER BY. Score and rating
// list best-first; name is lexicographic. The id tie-break keeps equal keys in
// insertion order across pages.
func orderClause(sort model.StudentSort) string {
	switch sort {
	case model.SortByRating:
		return ` ORDER BY rating DESC, id ASC`
	case model.SortByName:
		return ` ORDER BY name ASC, id ASC`
	default:
		return ` ORDER BY score DESC, id ASC`
	}
}

// buildFilter renders the WHERE clause and arguments for a student filter.
func buildFilter(filter model.StudentFilter) (string, []interface{}) {
	var (
		where string
		args  []interface{}
	)
	if filter.CollegeID != nil {
		args = append(args, *filter.CollegeID)
		where += ` WHERE college_id = $` + strconv.Itoa(len(args))
	}
	if filter.ActiveSince != nil {
		args = append(args, *filter.ActiveSince)
		if where == "" {
			where += ` WHERE`
		} else {
			where += ` AND`
		}
		where += ` last_activity >= $` + strconv.Itoa(len(args))
	}
	return where, args
}

// List retrieves one page of students matching the filter, plus the total
// matching count.
func (r *StudentRepository) List(ctx context.Context, filter model.StudentFilter, sort model.StudentSort, limit, offset int) ([]model.Student, int, error) {
	where, args := buildFilter(filter)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + studentColumns + ` FROM students` + where + orderClause(sort)
	query += ` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// TopByScore retrieves the N highest-scoring students.
func (r *StudentRepository) TopByScore(ctx context.Context, limit int) ([]model.Student, error) {
	return r.queryStudents(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY score DESC, id ASC LIMIT $1`, limit)
}

// SearchByName retrieves students whose name contains the query as a
// case-insensitive substring, in storage order. An empty query matches
// every student.
func (r *StudentRepository) SearchByName(ctx context.Context, query string, limit int) ([]model.Student, error) {
	return r.queryStudents(ctx,
		`SELECT `+studentColumns+` FROM students WHERE name ILIKE '%' || $1 || '%' ORDER BY id ASC LIMIT $2`,
		query, limit)
}

// ListByCollege retrieves every student of one college, best score first.
func (r *StudentRepository) ListByCollege(ctx context.Context, collegeID int) ([]model.Student, error) {
	return r.queryStudents(ctx,
		`SELECT `+studentColumns+` FROM students WHERE college_id = $1 ORDER BY score DESC, id ASC`, collegeID)
}

// ListAll streams the entire student collection in insertion order, for
// in-core aggregation passes.
func (r *StudentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	return r.queryStudents(ctx, `SELECT `+studentColumns+` FROM students ORDER BY id ASC`)
}

// Count returns the total number of students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&n)
	return n, err
}

// ReplaceAll truncates the collection and bulk-inserts the given students.
// Used by the seeder only; the query engine never mutates.
func (r *StudentRepository) ReplaceAll(ctx context.Context, students []model.Student) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE students`); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, s := range students {
		batch.Queue(
			`INSERT INTO students (`+studentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, s.Name, s.CollegeID, s.Score, s.EventsCount, s.Rating, s.LastActivity, s.JoinedDate,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range students {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return err
		}
	}
	if err := br.Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...interface{}) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
