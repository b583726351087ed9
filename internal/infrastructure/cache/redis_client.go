package cache

import (
	"context"
	"fmt"
	"time"

	"interior_budget/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 3 * time.Second

// ConnectRedis returns a client for cfg.Addr, or nil when no address is
// configured. The server is pinged once so a bad address fails at start-up.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		zap.S().Infow("[cache][redis] REDIS_ADDR not set, estimate cache disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	zap.S().Infow("[cache][redis] connected", "addr", cfg.Addr, "db", cfg.DB)
	return rdb, nil
}
