package redis

import (
	"context"
	"fmt"
	"time"

	"dashboard/internal/pkg/config"
	"dashboard/pkg/logger"
	retrierconfig "dashboard/pkg/retrier"
	"dashboard/pkg/retrier/backoff_adapter"

	goredis "github.com/redis/go-redis/v9"
)

const (
	dialTimeout  = 5 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
	poolSize     = 10
)

// NewClient dials Redis and waits until it answers PING.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		PoolSize:     poolSize,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	err := pingRedis(ctx, redisLog, client)
	if err != nil {
		closeErr := client.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("redis connection: %w (failed to close: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	return client, nil
}

func pingRedis(ctx context.Context, log logger.Logger, client *goredis.Client) error {
	retryConfig := retrierconfig.ConnectConfig()
	retryConfig.Notify = func(err error, next time.Duration) {
		log.Warn("redis is not ready",
			logger.NewField("error", err),
			logger.NewField("retry_in", next.String()),
		)
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return client.Ping(ctx).Err()
	})
	if err != nil {
		log.Error("Redis connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info("Redis connection established",
		logger.NewField("attempts", attempt),
	)
	return nil
}
