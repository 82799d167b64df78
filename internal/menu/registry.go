package menu

import (
	"fmt"
	"sync"

	"github.com/MrSnakeDoc/envf/internal/logger"
)

// ItemsFunc contributes extra tools menu items. It takes no arguments.
type ItemsFunc func() []Item

type registration struct {
	name string
	fn   ItemsFunc
}

// Registry is the ordered list of tools menu contributors, filled at startup.
type Registry struct {
	mu      sync.RWMutex
	entries []registration
	logger  logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{logger: log}
}

// Register appends a contributor. Items are concatenated in registration order.
func (r *Registry) Register(name string, fn ItemsFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, registration{name: name, fn: fn})
}

// Names lists the registered contributors in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	return names
}

// Items calls every contributor in order and concatenates their items.
// A contributor that panics contributes nothing.
func (r *Registry) Items() []Item {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	entries := append([]registration(nil), r.entries...)
	r.mu.RUnlock()

	var items []Item
	for _, e := range entries {
		items = append(items, r.call(e)...)
	}
	return items
}

func (r *Registry) call(e registration) (items []Item) {
	defer func() {
		if rec := recover(); rec != nil {
			if r.logger != nil {
				r.logger.Error("tools menu contributor panicked",
					logger.String("contributor", e.name),
					logger.String("panic", fmt.Sprint(rec)))
			}
			items = nil
		}
	}()
	return e.fn()
}
