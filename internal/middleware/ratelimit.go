package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventura/eventura-backend/internal/response"
)

// RateLimiter is a per-IP token bucket. Each client starts with a full
// bucket of `rate` tokens; a full refill lands every interval.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*bucket
	rate     int
	interval time.Duration
}

type bucket struct {
	tokens   int
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing `rate` requests per interval
// per client IP and starts its stale-entry sweeper.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*bucket),
		rate:     rate,
		interval: interval,
	}

	go func() {
		for range time.Tick(time.Minute) {
			rl.sweep()
		}
	}()

	return rl
}

// Middleware rejects over-limit requests with 429 before the handler runs.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[ip]
	if !ok {
		b = &bucket{tokens: rl.rate, lastSeen: time.Now()}
		rl.clients[ip] = b
	}

	if refill := int(time.Since(b.lastSeen)/rl.interval) * rl.rate; refill > 0 {
		b.tokens += refill
		if b.tokens > rl.rate {
			b.tokens = rl.rate
		}
		b.lastSeen = time.Now()
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, b := range rl.clients {
		if time.Since(b.lastSeen) > 3*time.Minute {
			delete(rl.clients, ip)
		}
	}
}
