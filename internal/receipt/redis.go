// internal/receipt/redis.go
package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps receipt correlations in redis. A non-zero TTL gives the
// mapping an eviction policy instead of growing without bound; zero keeps
// entries until redis itself evicts them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Set(ctx context.Context, orderID, receiptURL string) error {
	return s.client.Set(ctx, receiptKey(orderID), receiptURL, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, orderID string) (string, bool, error) {
	receiptURL, err := s.client.Get(ctx, receiptKey(orderID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return receiptURL, true, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func receiptKey(orderID string) string {
	return "receipt:" + orderID
}
