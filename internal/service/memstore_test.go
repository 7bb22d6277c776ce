package service

import (
	"context"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/eventura/eventura-backend/internal/model"
)

// In-memory record store used across the service tests. Mirrors the ordering
// and absence semantics of the PostgreSQL repositories.

type memStudentStore struct {
	students []model.Student
}

func (m *memStudentStore) GetByID(_ context.Context, id int) (*model.Student, error) {
	for _, s := range m.students {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStudentStore) List(_ context.Context, filter model.StudentFilter, sortKey model.StudentSort, limit, offset int) ([]model.Student, int, error) {
	matched := []model.Student{}
	for _, s := range m.students {
		if filter.CollegeID != nil && s.CollegeID != *filter.CollegeID {
			continue
		}
		if filter.ActiveSince != nil && s.LastActivity.Before(*filter.ActiveSince) {
			continue
		}
		matched = append(matched, s)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch sortKey {
		case model.SortByRating:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		case model.SortByName:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		default:
			if a.Score != b.Score {
				return a.Score > b.Score
			}
		}
		return a.ID < b.ID
	})

	total := len(matched)
	if offset >= total {
		return []model.Student{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *memStudentStore) TopByScore(ctx context.Context, limit int) ([]model.Student, error) {
	top, _, err := m.List(ctx, model.StudentFilter{}, model.SortByScore, limit, 0)
	return top, err
}

func (m *memStudentStore) SearchByName(_ context.Context, query string, limit int) ([]model.Student, error) {
	results := []model.Student{}
	for _, s := range m.students {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(query)) {
			results = append(results, s)
			if len(results) == limit {
				break
			}
		}
	}
	return results, nil
}

func (m *memStudentStore) ListByCollege(_ context.Context, collegeID int) ([]model.Student, error) {
	students := []model.Student{}
	for _, s := range m.students {
		if s.CollegeID == collegeID {
			students = append(students, s)
		}
	}
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].Score != students[j].Score {
			return students[i].Score > students[j].Score
		}
		return students[i].ID < students[j].ID
	})
	return students, nil
}

func (m *memStudentStore) ListAll(_ context.Context) ([]model.Student, error) {
	return append([]model.Student{}, m.students...), nil
}

func (m *memStudentStore) Count(_ context.Context) (int, error) {
	return len(m.students), nil
}

type memCollegeStore struct {
	colleges []model.College
}

func (m *memCollegeStore) GetByID(_ context.Context, id int) (*model.College, error) {
	for _, c := range m.colleges {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memCollegeStore) ListAll(_ context.Context) ([]model.College, error) {
	out := append([]model.College{}, m.colleges...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCollegeStore) Count(_ context.Context) (int, error) {
	return len(m.colleges), nil
}

type memEventStore struct {
	events []model.Event
}

func (m *memEventStore) List(_ context.Context, collegeID *int, limit, offset int) ([]model.Event, int, error) {
	matched := []model.Event{}
	for _, e := range m.events {
		if collegeID != nil && e.CollegeID != *collegeID {
			continue
		}
		matched = append(matched, e)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	if offset >= total {
		return []model.Event{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *memEventStore) TopByParticipants(_ context.Context, limit int) ([]model.Event, error) {
	out := append([]model.Event{}, m.events...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Participants != out[j].Participants {
			return out[i].Participants > out[j].Participants
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memEventStore) CountsByCollege(_ context.Context) (map[int]int, error) {
	counts := make(map[int]int)
	for _, e := range m.events {
		counts[e.CollegeID]++
	}
	return counts, nil
}

func (m *memEventStore) Count(_ context.Context) (int, error) {
	return len(m.events), nil
}
