package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Aggregate results are cached in Redis as JSON blobs with a short TTL.
// The cache is best-effort: any Redis failure falls through to a direct
// computation, and a nil client disables caching entirely (tests, seeder).

func cacheGet(ctx context.Context, rdb *redis.Client, log zerolog.Logger, key string, dst interface{}) bool {
	if rdb == nil {
		return false
	}
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, recomputing")
		return false
	}
	return true
}

func cacheSet(ctx context.Context, rdb *redis.Client, log zerolog.Logger, key string, ttl time.Duration, v interface{}) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache marshal failed")
		return
	}
	if err := rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
