package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultExtensionTTL is the default TTL for provider entries (30 days)
	DefaultExtensionTTL = 30 * 24 * time.Hour
	// DefaultMenuTTL is the default TTL for cached menus
	DefaultMenuTTL = 5 * time.Minute
)

// Store handles Redis operations for extension providers and the menu cache
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Ping reports whether Redis answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
