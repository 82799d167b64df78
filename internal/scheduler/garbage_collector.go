package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/envf/internal/index"
	"github.com/MrSnakeDoc/envf/internal/logger"
)

const (
	// DefaultGCThreshold is the duration after which disabled providers are deleted
	DefaultGCThreshold = 30 * 24 * time.Hour // 30 days
)

// GarbageCollector deletes providers that stayed disabled longer than a threshold
type GarbageCollector struct {
	store     ExtensionStore
	index     *index.MemoryIndex
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	stopCh    chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
}

// NewGarbageCollector creates a new garbage collector. store may be nil.
func NewGarbageCollector(
	store ExtensionStore,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
) *GarbageCollector {
	if threshold == 0 {
		threshold = DefaultGCThreshold
	}

	return &GarbageCollector{
		store:     store,
		index:     idx,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start collects once, then on every tick until ctx is cancelled or Stop is called
func (gc *GarbageCollector) Start(ctx context.Context) {
	gc.Collect(ctx)

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer close(gc.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				gc.Collect(ctx)
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the collection loop and waits for it to exit
func (gc *GarbageCollector) Stop() {
	gc.stopOnce.Do(func() { close(gc.stopCh) })
	<-gc.done
}

// Collect removes providers disabled for longer than the threshold and returns how many went.
func (gc *GarbageCollector) Collect(ctx context.Context) int {
	now := time.Now()
	deleted := 0

	for _, ext := range gc.index.GetAllExtensions() {
		if !ext.Disabled || ext.UpdatedAt.IsZero() {
			continue
		}

		disabledFor := now.Sub(ext.UpdatedAt)
		if disabledFor < gc.threshold {
			continue
		}

		gc.index.DeleteExtension(ext.Name)

		// Delete from Redis store (best effort)
		if gc.store != nil {
			if err := gc.store.DeleteExtension(ctx, ext.Name); err != nil {
				gc.logger.Warn("failed to delete extension from redis",
					logger.String("extension", ext.Name),
					logger.Error(err))
			}
		}

		gc.logger.Info("garbage collected disabled extension",
			logger.String("extension", ext.Name),
			logger.String("disabled_for", disabledFor.String()))

		deleted++
	}

	if deleted == 0 {
		gc.logger.Debug("no extensions to garbage collect")
	}
	return deleted
}
