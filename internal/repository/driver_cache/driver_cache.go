package driver_cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "delayer:driver:"

// Repository кэш водителей по ключу cap~productType.
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(key string) string {
	return keyPrefix + key
}

// GetMany возвращает найденные в кэше значения. Отсутствующих ключей в ответе нет.
func (r *Repository) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	redisKeys := make([]string, len(keys))
	for i, key := range keys {
		redisKeys[i] = cacheKey(key)
	}

	values, err := r.client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver cache get error: %w", err)
	}

	res := make(map[string]string, len(keys))
	for i, value := range values {
		if s, ok := value.(string); ok && s != "" {
			res[keys[i]] = s
		}
	}
	return res, nil
}

func (r *Repository) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for key, value := range values {
		pipe.Set(ctx, cacheKey(key), value, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("unexpected driver cache set error: %w", err)
	}
	return nil
}
