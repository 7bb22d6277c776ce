package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventura/eventura-backend/internal/model"
)

// EventRepository handles event data access.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// List retrieves one page of events, newest first, optionally filtered by
// college, plus the total matching count.
func (r *EventRepository) List(ctx context.Context, collegeID *int, limit, offset int) ([]model.Event, int, error) {
	var (
		total int
		err   error
	)
	if collegeID != nil {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE college_id = $1`, *collegeID).Scan(&total)
	} else {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&total)
	}
	if err != nil {
		return nil, 0, err
	}

	var rows pgx.Rows
	if collegeID != nil {
		rows, err = r.pool.Query(ctx,
			`SELECT id, name, date, college_id, participants FROM events
			 WHERE college_id = $1 ORDER BY date DESC, id ASC LIMIT $2 OFFSET $3`,
			*collegeID, limit, offset)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT id, name, date, college_id, participants FROM events
			 ORDER BY date DESC, id ASC LIMIT $1 OFFSET $2`,
			limit, offset)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.CollegeID, &e.Participants); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

// TopByParticipants retrieves the N best-attended events.
func (r *EventRepository) TopByParticipants(ctx context.Context, limit int) ([]model.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, date, college_id, participants FROM events
		 ORDER BY participants DESC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.CollegeID, &e.Participants); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountsByCollege returns the number of events hosted per college id.
func (r *EventRepository) CountsByCollege(ctx context.Context) (map[int]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT college_id, COUNT(*) FROM events GROUP BY college_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var collegeID, count int
		if err := rows.Scan(&collegeID, &count); err != nil {
			return nil, err
		}
		counts[collegeID] = count
	}
	return counts, rows.Err()
}

// Count returns the total number of events.
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

// ReplaceAll truncates the collection and bulk-inserts the given events.
// Used by the seeder only.
func (r *EventRepository) ReplaceAll(ctx context.Context, events []model.Event) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE events`); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(
			`INSERT INTO events (id, name, date, college_id, participants) VALUES ($1, $2, $3, $4, $5)`,
			e.ID, e.Name, e.Date, e.CollegeID, e.Participants,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range events {
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
