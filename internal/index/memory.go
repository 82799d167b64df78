package index

import (
	"sort"
	"sync"
	"time"

	"github.com/MrSnakeDoc/envf/internal/domain"
	"github.com/MrSnakeDoc/envf/internal/menu"
	"github.com/MrSnakeDoc/envf/internal/nav"
)

// MemoryIndex holds the extension providers in memory.
// It is the source of truth for composition; Redis only persists it across restarts.
type MemoryIndex struct {
	mu         sync.RWMutex
	extensions map[string]*domain.Extension // Name -> Extension
	icons      menu.IconRenderer
	lastReload time.Time
}

// NewMemoryIndex creates an empty index. icons renders item icons; nil leaves them empty.
func NewMemoryIndex(icons menu.IconRenderer) *MemoryIndex {
	return &MemoryIndex{
		extensions: make(map[string]*domain.Extension),
		icons:      icons,
	}
}

// UpdateExtensions replaces all providers in the index
func (idx *MemoryIndex) UpdateExtensions(extensions []*domain.Extension) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.extensions = make(map[string]*domain.Extension, len(extensions))
	for _, ext := range extensions {
		idx.extensions[ext.Name] = ext
	}
	idx.lastReload = time.Now()
}

// GetExtension retrieves a provider by name
func (idx *MemoryIndex) GetExtension(name string) (*domain.Extension, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	ext, ok := idx.extensions[name]
	return ext, ok
}

// GetAllExtensions returns every provider, disabled ones included, in provider order.
func (idx *MemoryIndex) GetAllExtensions() []*domain.Extension {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.sorted()
}

// AddExtension adds or updates a single provider
func (idx *MemoryIndex) AddExtension(ext *domain.Extension) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.extensions[ext.Name] = ext
}

// DeleteExtension removes a provider from the index
func (idx *MemoryIndex) DeleteExtension(name string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.extensions, name)
}

// Count returns the number of providers, disabled ones included
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.extensions)
}

// GetLastReload returns the timestamp of the last full update
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}

// Items returns the tools menu items of every enabled provider, in provider order.
// It matches menu.ItemsFunc so the index can be registered as a contributor.
func (idx *MemoryIndex) Items() []menu.Item {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var items []menu.Item
	for _, ext := range idx.sorted() {
		if ext.Disabled {
			continue
		}
		for _, it := range ext.Items {
			items = append(items, idx.item(it))
		}
	}
	return items
}

func (idx *MemoryIndex) item(it domain.ExtensionItem) menu.Item {
	out := menu.Item{
		ID:        it.ID,
		URL:       it.URL,
		Text:      it.Text,
		Color:     it.Color,
		NewWindow: it.NewWindow,
	}
	if idx.icons != nil && it.Icon != "" {
		out.Icon = idx.icons.Icon(nav.Icon{Pix: it.Icon})
	}
	return out
}

// sorted must be called with the lock held.
func (idx *MemoryIndex) sorted() []*domain.Extension {
	out := make([]*domain.Extension, 0, len(idx.extensions))
	for _, ext := range idx.extensions {
		out = append(out, ext)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out
}
