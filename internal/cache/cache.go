package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// Incr bumps a counter key. Used to version cached pages so an append
	// invalidates every page at once.
	Incr(ctx context.Context, key string) (int64, error)
}
