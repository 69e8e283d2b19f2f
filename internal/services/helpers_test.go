package services

import (
	"context"
	"sync"
	"time"

	"gym-admin/pkg/errors"
)

// fakeCache is an in-memory stand-in for the Redis cache.
type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
	sets int
	gets int
	dels int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = value.(string)
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	if !ok {
		return "", errors.ErrNotFound
	}
	return v, nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dels++
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}
