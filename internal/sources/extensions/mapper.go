package extensions

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrSnakeDoc/envf/internal/domain"
)

// Mapper converts the file entries to domain extensions.
type Mapper struct {
	defaultColor string
}

// NewMapper creates a mapper. Items without a colour get defaultColor.
func NewMapper(defaultColor string) *Mapper {
	return &Mapper{defaultColor: defaultColor}
}

// MapExtensions converts a Config to providers, keeping file order.
// Entries without a name and items without an id or url are skipped.
// A provider declared twice is an error.
func (m *Mapper) MapExtensions(config Config) ([]*domain.Extension, error) {
	extensions := make([]*domain.Extension, 0, len(config))
	seen := make(map[string]bool, len(config))
	now := time.Now()

	for _, entry := range config {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("extension %q declared more than once", name)
		}
		seen[name] = true

		items := make([]domain.ExtensionItem, 0, len(entry.Items))
		for _, it := range entry.Items {
			if it.ID == "" || it.URL == "" {
				continue
			}
			color := it.Color
			if color == "" {
				color = m.defaultColor
			}
			items = append(items, domain.ExtensionItem{
				ID:        it.ID,
				URL:       it.URL,
				Text:      it.Text,
				Icon:      it.Icon,
				Color:     color,
				NewWindow: it.NewWindow,
			})
		}

		extensions = append(extensions, &domain.Extension{
			Name:      name,
			Items:     items,
			Order:     len(extensions),
			Sources:   []string{domain.SourceFile},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return extensions, nil
}
