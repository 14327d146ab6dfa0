// Package blobstore stores product images in Redis, keyed by an
// upload-time content key. Only the catalog uses it.
package blobstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the narrow blob contract the catalog needs: upload by key,
// fetch by key, delete by key.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// RedisStore is a Redis-backed Store.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Store on top of an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "image:"}
}

// ObjectKey builds a content key from the upload time and original
// filename. Keys are unique per upload, so a crash between blob write and
// record write leaves at worst an orphaned blob.
func ObjectKey(now time.Time, filename string) string {
	return fmt.Sprintf("%d-%s", now.UnixNano(), filename)
}

// Put uploads the blob. Blobs have no TTL; deletion is explicit.
func (s *RedisStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store blob %s: %w", key, err)
	}
	return nil
}

// Get fetches the blob by key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("blob %s not found", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blob %s: %w", key, err)
	}
	return data, nil
}

// Delete removes the blob by key. Deleting a missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
