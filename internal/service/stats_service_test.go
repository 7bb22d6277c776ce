package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventura/eventura-backend/internal/model"
)

func newStatsService(students []model.Student, colleges []model.College, events []model.Event) *StatsService {
	return NewStatsService(
		&memStudentStore{students: students},
		&memCollegeStore{colleges: colleges},
		&memEventStore{events: events},
		nil, 0, zerolog.Nop(),
	)
}

func TestStatsOverview(t *testing.T) {
	svc := newStatsService(
		newStudents(4),
		[]model.College{{ID: 1}, {ID: 2}},
		[]model.Event{{ID: 1}, {ID: 2}, {ID: 3}},
	)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, overview.Students)
	assert.Equal(t, 2, overview.Colleges)
	assert.Equal(t, 3, overview.Events)
	assert.Equal(t, "healthy", overview.Status)

	_, err = time.Parse(time.RFC3339, overview.Timestamp)
	assert.NoError(t, err)
}

func TestStatsByCollege(t *testing.T) {
	colleges := []model.College{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}}
	students := []model.Student{
		{ID: 1, CollegeID: 2, Score: 100},
		{ID: 2, CollegeID: 1, Score: 200},
		{ID: 3, CollegeID: 2, Score: 101},
	}
	events := []model.Event{
		{ID: 1, CollegeID: 2},
		{ID: 2, CollegeID: 2},
	}
	svc := newStatsService(students, colleges, events)

	stats, err := svc.ByCollege(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, 1, stats[0].CollegeID) // ordered by college id
	assert.Equal(t, "Alpha", stats[0].CollegeName)
	assert.Equal(t, 1, stats[0].StudentsCount)
	assert.Equal(t, 0, stats[0].EventsCount)
	assert.InDelta(t, 200.0, stats[0].AvgScore, 1e-9)

	assert.Equal(t, 2, stats[1].CollegeID)
	assert.Equal(t, 2, stats[1].StudentsCount)
	assert.Equal(t, 201, stats[1].TotalScore)
	assert.Equal(t, 2, stats[1].EventsCount)
	assert.InDelta(t, 100.5, stats[1].AvgScore, 1e-9)
}

func TestStatsByCollege_DanglingReference(t *testing.T) {
	svc := newStatsService([]model.Student{{ID: 1, CollegeID: 77, Score: 10}}, nil, nil)

	stats, err := svc.ByCollege(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, model.UnknownCollegeName, stats[0].CollegeName)
}
