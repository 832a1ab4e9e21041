package redis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"guild-bot/internal/config"
	"guild-bot/internal/observability"

	"github.com/redis/go-redis/v9"
)

var errNotConnected = errors.New("redis client not connected")

// Client stores the bot document and the weekly sales list in Redis.
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient dials Redis and verifies the connection before returning.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     4,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redis_addr", Value: client.Options().Addr},
		observability.Field{Key: "redis_db", Value: cfg.DB},
	)
	logger.Info(ctx, "connected to redis document store")
	return NewFromClient(client, logger), nil
}

// NewFromClient wraps an already configured client.
func NewFromClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

func (c *Client) ready() error {
	if c == nil || c.client == nil {
		return errNotConnected
	}
	return nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c.ready() != nil {
		return nil
	}
	return c.client.Close()
}
