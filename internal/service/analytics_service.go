package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eventura/eventura-backend/internal/config"
	"github.com/eventura/eventura-backend/internal/model"
)

// AnalyticsService computes full-collection summaries: the score histogram
// and the best-student-per-college table. Both scan every student record, so
// results are cached.
type AnalyticsService struct {
	students StudentStore
	colleges CollegeStore
	rdb      *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(students StudentStore, colleges CollegeStore, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		students: students,
		colleges: colleges,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "analytics_service").Logger(),
	}
}

// Distribution partitions all students into the fixed half-open score
// buckets. Scores outside every interval are counted under "Other", never
// dropped, so bucket counts always sum to the student total. Only non-empty
// buckets are returned.
func (s *AnalyticsService) Distribution(ctx context.Context) ([]model.ScoreBucket, error) {
	var cached []model.ScoreBucket
	if cacheGet(ctx, s.rdb, s.log, config.CacheKey.DistributionKey(), &cached) {
		return cached, nil
	}
	return s.RefreshDistribution(ctx)
}

// RefreshDistribution recomputes the histogram and overwrites the cached copy.
func (s *AnalyticsService) RefreshDistribution(ctx context.Context) ([]model.ScoreBucket, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	bounds := model.ScoreBucketBounds
	counts := make([]int, len(bounds)-1)
	other := 0

	for _, st := range students {
		idx := -1
		for i := 0; i < len(bounds)-1; i++ {
			// Half-open [low, high): a boundary value belongs to the bucket
			// it is the lower edge of.
			if st.Score >= bounds[i] && st.Score < bounds[i+1] {
				idx = i
				break
			}
		}
		if idx >= 0 {
			counts[idx]++
		} else {
			other++
		}
	}

	buckets := []model.ScoreBucket{}
	for i, n := range counts {
		if n == 0 {
			continue
		}
		low, high := bounds[i], bounds[i+1]
		buckets = append(buckets, model.ScoreBucket{
			Range: fmt.Sprintf("%d-%d", low, high),
			Low:   &low,
			High:  &high,
			Count: n,
		})
	}
	if other > 0 {
		buckets = append(buckets, model.ScoreBucket{
			Range: model.OtherBucketLabel,
			Count: other,
		})
	}

	cacheSet(ctx, s.rdb, s.log, config.CacheKey.DistributionKey(), s.cacheTTL, buckets)
	return buckets, nil
}

// TopByCollege selects the highest scorer within each college that has at
// least one student. Score ties inside a college resolve to the earlier
// student id. Output is ordered by college id ascending.
func (s *AnalyticsService) TopByCollege(ctx context.Context) ([]model.CollegeTopStudent, error) {
	var cached []model.CollegeTopStudent
	if cacheGet(ctx, s.rdb, s.log, config.CacheKey.TopByCollegeKey(), &cached) {
		return cached, nil
	}
	return s.RefreshTopByCollege(ctx)
}

// RefreshTopByCollege recomputes the per-college top scorers and overwrites
// the cached copy.
func (s *AnalyticsService) RefreshTopByCollege(ctx context.Context) ([]model.CollegeTopStudent, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	colleges, err := s.colleges.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := collegeNames(colleges)

	// students arrive in insertion order, so the first higher-score wins and
	// equal scores keep the earlier record.
	best := make(map[int]model.Student)
	for _, st := range students {
		if cur, ok := best[st.CollegeID]; !ok || st.Score > cur.Score {
			best[st.CollegeID] = st
		}
	}

	top := make([]model.CollegeTopStudent, 0, len(best))
	for collegeID, st := range best {
		top = append(top, model.CollegeTopStudent{
			CollegeID:   collegeID,
			CollegeName: nameOf(names, collegeID),
			Student:     st.Name,
			Score:       st.Score,
		})
	}
	sort.Slice(top, func(i, j int) bool { return top[i].CollegeID < top[j].CollegeID })

	cacheSet(ctx, s.rdb, s.log, config.CacheKey.TopByCollegeKey(), s.cacheTTL, top)
	return top, nil
}
