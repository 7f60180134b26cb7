package catalog

import (
	"context"
	"fmt"
	"time"

	"specsim/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// ListReader is the subset of the go-redis client used by RedisSource.
type ListReader interface {
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// RedisSource reads product records stored as JSON documents in a Redis list.
type RedisSource struct {
	client ListReader
	key    string
}

// NewRedisSource creates a RedisSource reading the list at key.
func NewRedisSource(client ListReader, key string) *RedisSource {
	return &RedisSource{client: client, key: key}
}

// Load reads the whole list in order.
func (r *RedisSource) Load(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	docs, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog list %q: %w", r.key, err)
	}

	products := make([]models.Product, 0, len(docs))
	for i, doc := range docs {
		p, err := decodeProduct(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode catalog element %d of %q: %w", i, r.key, err)
		}
		products = append(products, p)
	}

	snap, err := NewSnapshot(products)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("key", r.key).Int("products", snap.Len()).Dur("elapsed", time.Since(start)).Msg("Catalog loaded from Redis")
	return snap, nil
}
