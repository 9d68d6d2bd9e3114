package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// DeleteByPattern removes every key matching a redis glob pattern.
	DeleteByPattern(ctx context.Context, pattern string) error
}
