package scheduler

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/envf/internal/index"
	"github.com/MrSnakeDoc/envf/internal/logger"
)

// RedisSyncer restores providers from Redis into the memory index on startup
type RedisSyncer struct {
	store  ExtensionStore
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store ExtensionStore,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads providers from Redis and updates the memory index
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing extensions from redis to memory")

	extensions, err := rs.store.GetAllExtensions(ctx)
	if err != nil {
		return fmt.Errorf("failed to read extensions from redis: %w", err)
	}

	if len(extensions) == 0 {
		rs.logger.Info("no extensions found in redis")
		return nil
	}

	rs.index.UpdateExtensions(extensions)

	rs.logger.Info("synced extensions from redis",
		logger.Int("count", len(extensions)))

	return nil
}
