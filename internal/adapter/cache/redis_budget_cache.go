package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"interior_budget/internal/domain/entities"
	"interior_budget/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// redisAPI is the subset of *redis.Client used by the cache.
type redisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisBudgetCache stores estimator results as JSON strings with a TTL.
type RedisBudgetCache struct {
	rdb redisAPI
	ttl time.Duration
}

var _ interfaces.IBudgetCache = (*RedisBudgetCache)(nil)

func NewRedisBudgetCache(rdb *redis.Client, ttl time.Duration) *RedisBudgetCache {
	return &RedisBudgetCache{rdb: rdb, ttl: ttl}
}

func (c *RedisBudgetCache) Get(ctx context.Context, key string) (entities.BudgetResult, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.BudgetResult{}, false, nil
	}
	if err != nil {
		return entities.BudgetResult{}, false, err
	}

	var res entities.BudgetResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return entities.BudgetResult{}, false, err
	}
	return res, true, nil
}

func (c *RedisBudgetCache) Set(ctx context.Context, key string, result entities.BudgetResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}
