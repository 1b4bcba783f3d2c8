package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Service is the cache interface the repositories depend on. A nil
// *CacheService satisfies every method as a no-op so the application
// runs without redis.
type Service interface {
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	Stats(ctx context.Context) (map[string]string, error)
	FlushAll(ctx context.Context) error
	Close() error
}

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{client: client, ttl: defaultTTL}
}

func (s *CacheService) available() bool {
	return s != nil && s.client != nil
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !s.available() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !s.available() {
		return false, nil
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if !s.available() || len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *CacheService) Stats(ctx context.Context) (map[string]string, error) {
	if !s.available() {
		return map[string]string{"status": "disabled"}, nil
	}
	info, err := s.client.Info(ctx, "stats").Result()
	if err != nil {
		return nil, err
	}
	size, err := s.client.DBSize(ctx).Result()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"status": "ok",
		"keys":   fmt.Sprintf("%d", size),
		"info":   info,
	}, nil
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	if !s.available() {
		return nil
	}
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	if !s.available() {
		return nil
	}
	return s.client.Close()
}

// Key builders keep every cache key format in one place.

func UserKey(id uint) string {
	return fmt.Sprintf("user:id:%d", id)
}

func UserEmailKey(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

func WishlistKey(userID uint) string {
	return fmt.Sprintf("wishlist:user:%d", userID)
}

func VendorKey(id uint) string {
	return fmt.Sprintf("vendor:id:%d", id)
}

func VendorUserKey(userID uint) string {
	return fmt.Sprintf("vendor:user:%d", userID)
}
