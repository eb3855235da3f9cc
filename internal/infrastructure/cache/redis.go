package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"hospital-directory/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis is only a second cache tier for the kiosk, so every call is kept short.
const (
	redisDialTimeout = 2 * time.Second
	redisIOTimeout   = time.Second
	redisPingTimeout = 5 * time.Second
)

func NewRedisClient(cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisDialTimeout,
		ReadTimeout:  redisIOTimeout,
		WriteTimeout: redisIOTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	log.WithField("addr", addr).Info("Connected to Redis cache tier")

	return client, nil
}
