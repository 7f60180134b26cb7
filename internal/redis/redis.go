// Package redis wraps the go-redis client used as an optional catalog store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultProductsKey is the list holding one JSON product record per element.
const DefaultProductsKey = "specsim:products"

// Client is a wrapper around the go-redis client.
type Client struct {
	*redis.Client
}

// NewClient parses a redis:// URL, connects and pings the server.
func NewClient(ctx context.Context, url string) (*Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb}, nil
}
