package middleware

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiterTest(t *testing.T, max int64, window time.Duration, at time.Time) (*RateLimiter, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()

	rl := NewRateLimiter(client, max, window)
	rl.now = func() time.Time { return at }

	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	return rl, mock
}

func TestRateLimiterAllow(t *testing.T) {
	ctx := context.Background()
	at := time.Unix(1700000000, 0)
	now := at.UnixNano()
	window := time.Minute

	expectWindowUpdate := func(mock redismock.ClientMock, key string, count int64) {
		windowStart := now - window.Nanoseconds()
		mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(windowStart, 10)).SetVal(0)
		mock.ExpectZAdd(key, redis.Z{Score: float64(now), Member: now}).SetVal(1)
		mock.ExpectZCard(key).SetVal(count)
		mock.ExpectExpire(key, window).SetVal(true)
	}

	t.Run("Within Limit", func(t *testing.T) {
		rl, mock := setupRateLimiterTest(t, 3, window, at)

		expectWindowUpdate(mock, "ratelimit:10.0.0.1", 2)

		allowed, retryAfter, err := rl.Allow(ctx, "ratelimit:10.0.0.1")

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
	})

	t.Run("Over Limit", func(t *testing.T) {
		rl, mock := setupRateLimiterTest(t, 3, window, at)

		oldest := at.Add(-40 * time.Second).UnixNano()
		expectWindowUpdate(mock, "ratelimit:10.0.0.1", 4)
		mock.ExpectZRangeWithScores("ratelimit:10.0.0.1", 0, 0).
			SetVal([]redis.Z{{Score: float64(oldest), Member: oldest}})

		allowed, retryAfter, err := rl.Allow(ctx, "ratelimit:10.0.0.1")

		require.NoError(t, err)
		assert.False(t, allowed)
		// The oldest hit is 40s old, so the client waits out the rest of
		// the minute.
		assert.InDelta(t, (20 * time.Second).Seconds(), retryAfter.Seconds(), 1)
	})

	t.Run("Redis Error", func(t *testing.T) {
		rl, mock := setupRateLimiterTest(t, 3, window, at)

		windowStart := now - window.Nanoseconds()
		mock.ExpectZRemRangeByScore("ratelimit:10.0.0.1", "0", strconv.FormatInt(windowStart, 10)).
			SetErr(assert.AnError)

		_, _, err := rl.Allow(ctx, "ratelimit:10.0.0.1")

		assert.Error(t, err)
	})
}
