package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventura/eventura-backend/internal/model"
)

// CollegeRepository handles college data access.
type CollegeRepository struct {
	pool *pgxpool.Pool
}

// NewCollegeRepository creates a new CollegeRepository.
func NewCollegeRepository(pool *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{pool: pool}
}

// GetByID retrieves a college by ID. Returns pgx.ErrNoRows when absent.
func (r *CollegeRepository) GetByID(ctx context.Context, id int) (*model.College, error) {
	c := &model.College{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, city, students_count FROM colleges WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.City, &c.StudentsCount)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListAll retrieves every college ordered by id ascending.
func (r *CollegeRepository) ListAll(ctx context.Context) ([]model.College, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, city, students_count FROM colleges ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colleges := []model.College{}
	for rows.Next() {
		var c model.College
		if err := rows.Scan(&c.ID, &c.Name, &c.City, &c.StudentsCount); err != nil {
			return nil, err
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}

// Count returns the total number of colleges.
func (r *CollegeRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM colleges`).Scan(&n)
	return n, err
}

// ReplaceAll truncates the collection and bulk-inserts the given colleges.
// Used by the seeder only.
func (r *CollegeRepository) ReplaceAll(ctx context.Context, colleges []model.College) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE colleges`); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, c := range colleges {
		batch.Queue(
			`INSERT INTO colleges (id, name, city, students_count) VALUES ($1, $2, $3, $4)`,
			c.ID, c.Name, c.City, c.StudentsCount,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range colleges {
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
