package service

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eventura/eventura-backend/internal/config"
	"github.com/eventura/eventura-backend/internal/model"
)

// Overview is the global /stats payload.
type Overview struct {
	Events    int    `json:"events"`
	Students  int    `json:"students"`
	Colleges  int    `json:"colleges"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// CollectionCounts is the per-collection cardinality block in /health.
type CollectionCounts struct {
	Students int `json:"students"`
	Colleges int `json:"colleges"`
	Events   int `json:"events"`
}

// StatsService handles global counts and the per-college stats rollup.
type StatsService struct {
	students StudentStore
	colleges CollegeStore
	events   EventStore
	rdb      *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(students StudentStore, colleges CollegeStore, events EventStore, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *StatsService {
	return &StatsService{
		students: students,
		colleges: colleges,
		events:   events,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "stats_service").Logger(),
	}
}

// Overview counts every collection and stamps the result.
func (s *StatsService) Overview(ctx context.Context) (*Overview, error) {
	counts, err := s.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{
		Events:    counts.Events,
		Students:  counts.Students,
		Colleges:  counts.Colleges,
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Counts returns the cardinality of each collection.
func (s *StatsService) Counts(ctx context.Context) (*CollectionCounts, error) {
	students, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	colleges, err := s.colleges.Count(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.events.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &CollectionCounts{Students: students, Colleges: colleges, Events: events}, nil
}

// ByCollege folds all students into per-college groups (count, total score,
// average) and annotates each group with its college name and hosted event
// count. Groups are ordered by college id ascending.
func (s *StatsService) ByCollege(ctx context.Context) ([]model.CollegeStats, error) {
	var cached []model.CollegeStats
	if cacheGet(ctx, s.rdb, s.log, config.CacheKey.CollegeStatsKey(), &cached) {
		return cached, nil
	}
	return s.RefreshByCollege(ctx)
}

// RefreshByCollege recomputes the per-college stats and overwrites the
// cached copy.
func (s *StatsService) RefreshByCollege(ctx context.Context) ([]model.CollegeStats, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	colleges, err := s.colleges.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	eventCounts, err := s.events.CountsByCollege(ctx)
	if err != nil {
		return nil, err
	}
	names := collegeNames(colleges)

	groups := make(map[int]*model.CollegeStats)
	for _, st := range students {
		g, ok := groups[st.CollegeID]
		if !ok {
			g = &model.CollegeStats{
				CollegeID:   st.CollegeID,
				CollegeName: nameOf(names, st.CollegeID),
				EventsCount: eventCounts[st.CollegeID],
			}
			groups[st.CollegeID] = g
		}
		g.StudentsCount++
		g.TotalScore += st.Score
	}

	stats := make([]model.CollegeStats, 0, len(groups))
	for _, g := range groups {
		g.AvgScore = float64(g.TotalScore) / float64(g.StudentsCount)
		stats = append(stats, *g)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].CollegeID < stats[j].CollegeID })

	cacheSet(ctx, s.rdb, s.log, config.CacheKey.CollegeStatsKey(), s.cacheTTL, stats)
	return stats, nil
}
