package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/envf/internal/domain"
)

// ErrExtensionNotFound is returned when a provider has no entry in Redis.
var ErrExtensionNotFound = errors.New("extension not found")

// SaveExtension stores a provider in Redis
func (s *Store) SaveExtension(ctx context.Context, ext *domain.Extension) error {
	data, err := json.Marshal(ext)
	if err != nil {
		return fmt.Errorf("failed to marshal extension: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, ExtensionKey(ext.Name), data, DefaultExtensionTTL)
	pipe.SAdd(ctx, AllExtensionsKey(), ext.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save extension: %w", err)
	}

	return nil
}

// GetExtension retrieves a provider from Redis by name
func (s *Store) GetExtension(ctx context.Context, name string) (*domain.Extension, error) {
	data, err := s.client.Get(ctx, ExtensionKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrExtensionNotFound, name)
		}
		return nil, fmt.Errorf("failed to get extension: %w", err)
	}

	var ext domain.Extension
	if err := json.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extension: %w", err)
	}

	return &ext, nil
}

// GetAllExtensions retrieves all providers from Redis in provider order.
// Names whose entry expired are dropped from the set.
func (s *Store) GetAllExtensions(ctx context.Context) ([]*domain.Extension, error) {
	names, err := s.client.SMembers(ctx, AllExtensionsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get extension names: %w", err)
	}

	extensions := make([]*domain.Extension, 0, len(names))
	for _, name := range names {
		ext, err := s.GetExtension(ctx, name)
		if errors.Is(err, ErrExtensionNotFound) {
			_ = s.client.SRem(ctx, AllExtensionsKey(), name).Err()
			continue
		}
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext)
	}

	sort.Slice(extensions, func(i, j int) bool {
		return extensions[i].Order < extensions[j].Order
	})

	return extensions, nil
}

// DeleteExtension removes a provider from Redis
func (s *Store) DeleteExtension(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, ExtensionKey(name))
	pipe.SRem(ctx, AllExtensionsKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete extension: %w", err)
	}

	return nil
}

// SaveExtensionsMany stores multiple providers in Redis (bulk operation)
func (s *Store) SaveExtensionsMany(ctx context.Context, extensions []*domain.Extension) error {
	if len(extensions) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()

	for _, ext := range extensions {
		data, err := json.Marshal(ext)
		if err != nil {
			return fmt.Errorf("failed to marshal extension %s: %w", ext.Name, err)
		}

		pipe.Set(ctx, ExtensionKey(ext.Name), data, DefaultExtensionTTL)
		pipe.SAdd(ctx, AllExtensionsKey(), ext.Name)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save extensions: %w", err)
	}

	return nil
}
