package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	MenuTreeKey     = "navigation:tree"
	DirectoryKeyFmt = "directory:listings:%s"
	MenuTreeTTL     = 5 * time.Minute
	DirectoryTTL    = 10 * time.Minute
)

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Client is a thin wrapper around the redis client for the read-mostly
// collections the site renders on every page (menu tree, directory).
type Client struct {
	rdb *redis.Client
}

func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// NewClientFromRedis wraps an existing redis client; used by tests with
// redismock.
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Delete(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func DirectoryKey(category string) string {
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf(DirectoryKeyFmt, category)
}
