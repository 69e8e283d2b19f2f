package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface keeps rendered list snapshots and generated
// reports out of the hot path to the gym backend.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
}
