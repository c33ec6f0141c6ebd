package repo

import (
	"context"

	"github.com/redis/go-redis/v9"

	errx "github.com/storefront-poc-v1/client/internal/core/error"
	"github.com/storefront-poc-v1/client/internal/shop/session"
	logx "github.com/storefront-poc-v1/client/pkg/logger"
)

// RedisSessionStorage keeps the session keys in Redis, for setups where
// several clients share one sign-in. Keys are stored verbatim with no TTL;
// sessions have no expiry.
type RedisSessionStorage struct {
	rdb redis.Cmdable
}

func NewRedisSessionStorage(rdb redis.Cmdable) *RedisSessionStorage {
	return &RedisSessionStorage{rdb: rdb}
}

func (r *RedisSessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to read session key from redis")
		return "", false, errx.WrapStorage(err)
	}
	return val, true, nil
}

func (r *RedisSessionStorage) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to write session key to redis")
		return errx.WrapStorage(err)
	}
	return nil
}

func (r *RedisSessionStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		logx.Error().Err(err).Strs("keys", keys).Msg("failed to delete session keys from redis")
		return errx.WrapStorage(err)
	}
	return nil
}

var _ session.Storage = (*RedisSessionStorage)(nil)
