package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// LeaderboardKey returns the cache key for the per-college leaderboard.
func (r *CacheKeyStruct) LeaderboardKey() string {
	return "agg:leaderboard"
}

// DistributionKey returns the cache key for the score histogram.
func (r *CacheKeyStruct) DistributionKey() string {
	return "agg:distribution"
}

// TopByCollegeKey returns the cache key for the best-student-per-college summary.
func (r *CacheKeyStruct) TopByCollegeKey() string {
	return "agg:top_by_college"
}

// CollegeStatsKey returns the cache key for the per-college stats rollup.
func (r *CacheKeyStruct) CollegeStatsKey() string {
	return "agg:college_stats"
}

// AggregateKeys lists every aggregate cache key, for bulk invalidation after a reseed.
func (r *CacheKeyStruct) AggregateKeys() []string {
	return []string{
		r.LeaderboardKey(),
		r.DistributionKey(),
		r.TopByCollegeKey(),
		r.CollegeStatsKey(),
	}
}

var CacheKey = NewCacheKeyStruct()
