package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campushq/campus-ui-api/config"
)

// RedisOptions contains configuration for the session store connection.
type RedisOptions struct {
	Redis  config.RedisConfig
	Logger *slog.Logger
}

// ConnectRedis establishes a connection to the Redis session store.
//
//nolint:ireturn // returning redis.UniversalClient lets us pick single or sentinel clients at runtime.
func ConnectRedis(opts RedisOptions) (redis.UniversalClient, error) {
	var (
		client   redis.UniversalClient
		addrDesc string
	)

	if opts.Redis.UseSentinel {
		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       opts.Redis.SentinelMasterName,
			SentinelAddrs:    opts.Redis.SentinelNodes,
			SentinelPassword: opts.Redis.SentinelPassword,
			Password:         opts.Redis.Password,
			DB:               opts.Redis.DB,
		})
		addrDesc = fmt.Sprintf("sentinel:%s", opts.Redis.SentinelMasterName)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     opts.Redis.URI,
			Password: opts.Redis.Password,
			DB:       opts.Redis.DB,
		})
		addrDesc = opts.Redis.URI
	}

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if opts.Logger != nil {
		opts.Logger.Info("redis connected", "addr", addrDesc)
	}

	return client, nil
}
