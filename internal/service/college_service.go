package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eventura/eventura-backend/internal/config"
	"github.com/eventura/eventura-backend/internal/model"
)

// CollegeService handles college listing, detail rollups and the leaderboard.
type CollegeService struct {
	colleges CollegeStore
	students StudentStore
	rdb      *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewCollegeService creates a new CollegeService.
func NewCollegeService(colleges CollegeStore, students StudentStore, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *CollegeService {
	return &CollegeService{
		colleges: colleges,
		students: students,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "college_service").Logger(),
	}
}

// ListAll retrieves every college, id ascending.
func (s *CollegeService) ListAll(ctx context.Context) ([]model.College, error) {
	return s.colleges.ListAll(ctx)
}

// Detail retrieves a college, its students (best score first) and the derived
// rollup. Absence of the college id is ErrCollegeNotFound regardless of
// whether students reference it.
func (s *CollegeService) Detail(ctx context.Context, id int) (*model.College, []model.Student, *model.CollegeRollup, error) {
	college, err := s.colleges.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil, ErrCollegeNotFound
		}
		return nil, nil, nil, err
	}

	students, err := s.students.ListByCollege(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	rollup := &model.CollegeRollup{StudentsCount: len(students)}
	for _, st := range students {
		rollup.TotalScore += st.Score
	}
	// avg is defined as 0 for a college with no students.
	if len(students) > 0 {
		rollup.AvgScore = rollup.TotalScore / len(students)
	}

	return college, students, rollup, nil
}

// Leaderboard groups all students by college and ranks the groups by average
// score descending. Equal averages are ordered by college id ascending so the
// ranking is deterministic. Colleges with no students are absent.
func (s *CollegeService) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	var cached []model.LeaderboardEntry
	if cacheGet(ctx, s.rdb, s.log, config.CacheKey.LeaderboardKey(), &cached) {
		return cached, nil
	}
	return s.RefreshLeaderboard(ctx)
}

// RefreshLeaderboard recomputes the leaderboard and overwrites the cached
// copy. The background worker calls this on a timer.
func (s *CollegeService) RefreshLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	colleges, err := s.colleges.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := collegeNames(colleges)

	groups := make(map[int]*model.LeaderboardEntry)
	for _, st := range students {
		g, ok := groups[st.CollegeID]
		if !ok {
			g = &model.LeaderboardEntry{
				CollegeID:   st.CollegeID,
				CollegeName: nameOf(names, st.CollegeID),
			}
			groups[st.CollegeID] = g
		}
		g.StudentsCount++
		g.TotalScore += st.Score
	}

	entries := make([]model.LeaderboardEntry, 0, len(groups))
	for _, g := range groups {
		g.AvgScore = float64(g.TotalScore) / float64(g.StudentsCount)
		entries = append(entries, *g)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AvgScore != entries[j].AvgScore {
			return entries[i].AvgScore > entries[j].AvgScore
		}
		return entries[i].CollegeID < entries[j].CollegeID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	cacheSet(ctx, s.rdb, s.log, config.CacheKey.LeaderboardKey(), s.cacheTTL, entries)
	return entries, nil
}
