package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/envf/internal/domain"
	"github.com/MrSnakeDoc/envf/internal/index"
	"github.com/MrSnakeDoc/envf/internal/logger"
	"github.com/MrSnakeDoc/envf/internal/sources/extensions"
)

// ExtensionReloader keeps the index in sync with the extensions file.
type ExtensionReloader struct {
	loader        *extensions.Loader
	mapper        *extensions.Mapper
	store         ExtensionStore
	cache         MenuCache
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	manualTrigger <-chan struct{}
	stopCh        chan struct{}
	done          chan struct{}
	stopOnce      sync.Once
}

// NewExtensionReloader creates a reloader. store and cache may be nil.
func NewExtensionReloader(
	extensionsFile string,
	defaultColor string,
	store ExtensionStore,
	cache MenuCache,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger <-chan struct{},
) *ExtensionReloader {
	return &ExtensionReloader{
		loader:        extensions.NewLoader(extensionsFile),
		mapper:        extensions.NewMapper(defaultColor),
		store:         store,
		cache:         cache,
		index:         idx,
		logger:        log.With(logger.String("file", extensionsFile)),
		interval:      interval,
		manualTrigger: manualTrigger,
		stopCh:        make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start loads the file once, then reloads it on every tick and manual trigger
// until ctx is cancelled or Stop is called.
func (er *ExtensionReloader) Start(ctx context.Context) error {
	if err := er.Reload(ctx); err != nil {
		close(er.done)
		return fmt.Errorf("initial extension reload failed: %w", err)
	}

	ticker := time.NewTicker(er.interval)
	go func() {
		defer close(er.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				er.reloadAndLog(ctx)
			case <-er.manualTrigger:
				er.logger.Info("manual extension reload triggered")
				er.reloadAndLog(ctx)
			case <-er.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop ends the reload loop and waits for it to exit.
func (er *ExtensionReloader) Stop() {
	er.stopOnce.Do(func() { close(er.stopCh) })
	<-er.done
}

func (er *ExtensionReloader) reloadAndLog(ctx context.Context) {
	if err := er.Reload(ctx); err != nil {
		er.logger.Error("failed to reload extensions", logger.Error(err))
	}
}

// Reload reads the file and replaces the providers in the index.
// Providers that disappeared from the file are kept, marked disabled.
func (er *ExtensionReloader) Reload(ctx context.Context) error {
	config, err := er.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load extensions: %w", err)
	}

	fresh, err := er.mapper.MapExtensions(config)
	if err != nil {
		return fmt.Errorf("failed to map extensions: %w", err)
	}

	er.logger.Info("loaded extensions from file", logger.Int("count", len(fresh)))

	merged := er.merge(fresh, time.Now())
	er.index.UpdateExtensions(merged)

	// Redis is best effort, the memory index is the primary source
	if er.store != nil {
		if err := er.store.SaveExtensionsMany(ctx, merged); err != nil {
			er.logger.Warn("failed to save extensions to redis", logger.Error(err))
		}
	}

	if er.cache != nil {
		n, err := er.cache.FlushMenus(ctx)
		if err != nil {
			er.logger.Warn("failed to flush menu cache", logger.Error(err))
		} else {
			er.logger.Debug("menu cache flushed", logger.Int("keys", n))
		}
	}

	return nil
}

// merge keeps creation dates of known providers and disables the ones missing from fresh.
func (er *ExtensionReloader) merge(fresh []*domain.Extension, now time.Time) []*domain.Extension {
	known := make(map[string]*domain.Extension)
	for _, ext := range er.index.GetAllExtensions() {
		known[ext.Name] = ext
	}

	seen := make(map[string]bool, len(fresh))
	for _, ext := range fresh {
		seen[ext.Name] = true
		if old, ok := known[ext.Name]; ok && !old.CreatedAt.IsZero() {
			ext.CreatedAt = old.CreatedAt
		}
	}

	var disabled []*domain.Extension
	for name, old := range known {
		if seen[name] || !old.HasSource(domain.SourceFile) {
			continue
		}
		gone := *old
		if !gone.Disabled {
			gone.Disabled = true
			gone.UpdatedAt = now
		}
		disabled = append(disabled, &gone)
	}

	if len(disabled) > 0 {
		er.logger.Info("marking removed extensions as disabled", logger.Int("count", len(disabled)))
	}

	return append(fresh, disabled...)
}
