package scheduler

import (
	"context"

	"github.com/MrSnakeDoc/envf/internal/domain"
)

// ExtensionStore persists providers. *redis.Store implements it.
type ExtensionStore interface {
	SaveExtensionsMany(ctx context.Context, extensions []*domain.Extension) error
	GetAllExtensions(ctx context.Context) ([]*domain.Extension, error)
	DeleteExtension(ctx context.Context, name string) error
}

// MenuCache drops cached menus. *redis.Store implements it.
type MenuCache interface {
	FlushMenus(ctx context.Context) (int, error)
}
