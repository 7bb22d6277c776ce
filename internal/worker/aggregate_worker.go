package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventura/eventura-backend/internal/service"
)

// AggregateWorker keeps the Redis-cached aggregates warm by recomputing them
// on a timer, so cache expiry never surfaces a full-collection scan to a
// request. The data is read-only between reseeds, which makes a timed
// refresh safe.
type AggregateWorker struct {
	colleges  *service.CollegeService
	analytics *service.AnalyticsService
	stats     *service.StatsService
	interval  time.Duration
	log       zerolog.Logger
}

// NewAggregateWorker creates a new AggregateWorker refreshing at the given
// interval (normally the cache TTL).
func NewAggregateWorker(
	colleges *service.CollegeService,
	analytics *service.AnalyticsService,
	stats *service.StatsService,
	interval time.Duration,
	log zerolog.Logger,
) *AggregateWorker {
	return &AggregateWorker{
		colleges:  colleges,
		analytics: analytics,
		stats:     stats,
		interval:  interval,
		log:       log.With().Str("component", "aggregate_worker").Logger(),
	}
}

// Start begins the refresh loop. Call in a goroutine; returns when ctx is
// cancelled. The first refresh runs immediately so the caches are warm
// before traffic arrives.
func (w *AggregateWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	w.refreshAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

func (w *AggregateWorker) refreshAll(ctx context.Context) {
	start := time.Now()

	if _, err := w.colleges.RefreshLeaderboard(ctx); err != nil {
		w.log.Error().Err(err).Msg("leaderboard refresh failed")
	}
	if _, err := w.analytics.RefreshDistribution(ctx); err != nil {
		w.log.Error().Err(err).Msg("distribution refresh failed")
	}
	if _, err := w.analytics.RefreshTopByCollege(ctx); err != nil {
		w.log.Error().Err(err).Msg("top-by-college refresh failed")
	}
	if _, err := w.stats.RefreshByCollege(ctx); err != nil {
		w.log.Error().Err(err).Msg("college stats refresh failed")
	}

	w.log.Debug().Dur("took", time.Since(start)).Msg("aggregate caches refreshed")
}
