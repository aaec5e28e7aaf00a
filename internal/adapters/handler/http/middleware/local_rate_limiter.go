package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimiter is the in-process limiter used when Redis is not
// configured. Each client gets a token bucket refilled at limit per window.
type LocalRateLimiter struct {
	limiters map[string]*clientLimiter
	mu       sync.Mutex
	limit    int
	every    rate.Limit
	now      func() time.Time
}

func NewLocalRateLimiter(limit int, window time.Duration) *LocalRateLimiter {
	return &LocalRateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    limit,
		every:    rate.Every(window / time.Duration(limit)),
		now:      time.Now,
	}
}

func (rl *LocalRateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.every, rl.limit)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = rl.now()
	return cl.limiter
}

func (rl *LocalRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.get(rateLimitKey(c))
		now := rl.now()

		allowed := limiter.AllowN(now, 1)
		remaining := int64(limiter.TokensAt(now))

		resetIn := time.Duration(0)
		if float64(rl.every) > 0 {
			resetIn = time.Duration(float64(time.Second) / float64(rl.every))
		}
		setRateLimitHeaders(c, rl.limit, remaining, now.Add(resetIn))

		if !allowed {
			rejectRateLimited(c, resetIn)
			return
		}

		c.Next()
	}
}

// Cleanup forgets clients idle for longer than maxIdle and returns how many
// were removed.
func (rl *LocalRateLimiter) Cleanup(maxIdle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-maxIdle)
	removed := 0
	for key, cl := range rl.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

func (rl *LocalRateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}
