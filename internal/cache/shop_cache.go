// Package cache keeps the public shop profile in Redis so the
// unauthenticated booking page does not hit postgres on every load.
// Without a configured Redis address every call degrades to a miss.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

const shopKeyPrefix = "shop:profile:"

type ShopCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New returns a cache backed by addr, or a disabled cache when addr is
// empty or the server is unreachable.
func New(addr string, logger *zap.Logger) *ShopCache {
	c := &ShopCache{ttl: 5 * time.Minute, logger: logger}
	if addr == "" {
		return c
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, shop cache disabled", zap.Error(err))
		return c
	}

	c.rdb = rdb
	return c
}

func key(id uint) string {
	return shopKeyPrefix + strconv.FormatUint(uint64(id), 10)
}

func (c *ShopCache) Get(ctx context.Context, id uint) (*models.Shop, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var shop models.Shop
	if err := json.Unmarshal(raw, &shop); err != nil {
		return nil, false
	}
	return &shop, true
}

func (c *ShopCache) Set(ctx context.Context, shop *models.Shop) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(shop)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(shop.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("shop cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached profile after a settings update.
func (c *ShopCache) Invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key(id))
}
