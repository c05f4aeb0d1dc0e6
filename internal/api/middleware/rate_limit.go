package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/utils/response"
	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles clients with a sliding window kept in a redis
// sorted set: one timestamped member per request, members older than the
// window pruned on every hit.
type RateLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
	now    func() time.Time
}

func NewRateLimiter(client *redis.Client, max int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// Allow records one request under key and reports whether the client is
// still within the window. retryAfter is how long the client must wait
// once over the limit.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error) {

	now := rl.now().UnixNano()
	windowStart := now - rl.window.Nanoseconds()

	pipe := rl.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	if count.Val() <= rl.max {
		return true, 0, nil
	}

	oldest, err := rl.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil || len(oldest) == 0 {
		return false, rl.window, err
	}

	elapsed := time.Duration(now - int64(oldest[0].Score))

	return false, rl.window - elapsed, nil
}

// Limit rejects requests from clients that exceeded their window with a
// 429 and a Retry-After header. The key is the client address; a redis
// outage fails open.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		allowed, retryAfter, err := rl.Allow(r.Context(), "ratelimit:"+host)
		if err != nil {
			logger.Warn("Rate limiter unavailable", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)

			return
		}

		if !allowed {
			logger.Warn("Request rate limited", slog.String("client", host))
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			response.Error(w, errors.RateLimitedError("Too many requests"))

			return
		}

		next.ServeHTTP(w, r)
	})
}
