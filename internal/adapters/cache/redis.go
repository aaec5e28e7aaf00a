package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/config"
)

const pingTimeout = 5 * time.Second

// NewRedisClient connects to the configured Redis and checks it answers.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := Ping(ctx, rdb); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	logrus.WithFields(logrus.Fields{"addr": addr, "db": cfg.DB}).Info("[CACHE] redis connected")
	return rdb, nil
}

// Ping reports whether rdb answers within pingTimeout. A nil client is
// treated as unreachable.
func Ping(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return fmt.Errorf("redis not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return rdb.Ping(ctx).Err()
}
