// internal/service/cache.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/biza/internal/cache"
	"github.com/dangerclosesec/biza/internal/domain"
)

// CacheService provides caching functionality with input validation
type CacheService struct {
	cache *cache.InMemoryCache
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
	// MaxEntries bounds the cache size; zero means unbounded
	MaxEntries int
}

// NewCacheService creates a new cache service
func NewCacheService(config CacheConfig) *CacheService {
	cache := cache.NewInMemoryCache(config.TTL, config.CleanupFreq, config.MaxEntries)

	// Start the cleanup routine
	ctx := context.Background()
	cache.StartCleanup(ctx)

	return &CacheService{
		cache: cache,
	}
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Set(ctx, key, value)
	return nil
}

// Get retrieves a value from the cache
func (s *CacheService) Get(ctx context.Context, key string) (interface{}, error) {
	if key == "" {
		return nil, domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, key)
	if !found {
		return nil, domain.ErrNotFound
	}

	return value, nil
}

// GetOrSet retrieves a value from cache or computes and stores it if not found
func (s *CacheService) GetOrSet(ctx context.Context, key string, fetchFunc func() (interface{}, error)) (interface{}, error) {
	value, err := s.Get(ctx, key)
	if err == nil {
		return value, nil
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("getting from cache: %w", err)
	}

	value, err = fetchFunc()
	if err != nil {
		return nil, fmt.Errorf("fetching value: %w", err)
	}

	if err := s.Set(ctx, key, value); err != nil {
		return nil, fmt.Errorf("storing in cache: %w", err)
	}

	return value, nil
}

// Delete removes a value from the cache
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Delete(ctx, key)
	return nil
}

// Close stops the cleanup routine
func (s *CacheService) Close() {
	s.cache.StopCleanup()
}
