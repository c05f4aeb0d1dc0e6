package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/monokpe/james-ecom/internal/cache"
	"github.com/monokpe/james-ecom/internal/config"
	"github.com/monokpe/james-ecom/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCacheTest(t *testing.T) (cache.Cache, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()

	c := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: 5 * time.Minute})
	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	return c, mock
}

func TestCacheGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit", func(t *testing.T) {
		c, mock := setupCacheTest(t)

		stored, err := json.Marshal(models.Product{ID: 1, Name: "Mechanical Keyboard"})
		require.NoError(t, err)

		key := cache.Key(cache.ProductKeyPrefix, "1")
		mock.ExpectGet(key).SetVal(string(stored))

		var product models.Product
		hit, err := c.Get(ctx, key, &product)

		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "Mechanical Keyboard", product.Name)
	})

	t.Run("Miss", func(t *testing.T) {
		c, mock := setupCacheTest(t)

		key := cache.Key(cache.ProductKeyPrefix, "404")
		mock.ExpectGet(key).RedisNil()

		var product models.Product
		hit, err := c.Get(ctx, key, &product)

		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("Corrupt Payload", func(t *testing.T) {
		c, mock := setupCacheTest(t)

		key := cache.Key(cache.ProductKeyPrefix, "1")
		mock.ExpectGet(key).SetVal("{not json")

		var product models.Product
		_, err := c.Get(ctx, key, &product)

		assert.Error(t, err)
	})
}

func TestCacheSet(t *testing.T) {
	ctx := context.Background()

	t.Run("Explicit TTL", func(t *testing.T) {
		c, mock := setupCacheTest(t)

		key := cache.Key(cache.ProductKeyPrefix, "1")
		data, err := json.Marshal(models.Product{ID: 1, Name: "Mechanical Keyboard"})
		require.NoError(t, err)

		mock.ExpectSet(key, data, 10*time.Minute).SetVal("OK")

		assert.NoError(t, c.Set(ctx, key, models.Product{ID: 1, Name: "Mechanical Keyboard"}, 10*time.Minute))
	})

	t.Run("Zero TTL Falls Back To Default", func(t *testing.T) {
		c, mock := setupCacheTest(t)

		key := cache.Key(cache.ProductKeyPrefix, "1")
		data, err := json.Marshal(models.Product{ID: 1})
		require.NoError(t, err)

		mock.ExpectSet(key, data, 5*time.Minute).SetVal("OK")

		assert.NoError(t, c.Set(ctx, key, models.Product{ID: 1}, 0))
	})
}

func TestCacheDelete(t *testing.T) {
	c, mock := setupCacheTest(t)

	key := cache.Key(cache.ProductKeyPrefix, "1")
	mock.ExpectDel(key).SetVal(1)

	assert.NoError(t, c.Delete(context.Background(), key))
}
