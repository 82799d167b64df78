package domain

import "time"

// SourceFile marks providers declared in the extensions file.
const SourceFile = "file"

// ExtensionItem is one tools menu entry contributed by a plugin.
type ExtensionItem struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Text      string `json:"text"`
	Icon      string `json:"icon,omitempty"` // pix identifier, rendered at compose time
	Color     string `json:"color,omitempty"`
	NewWindow bool   `json:"newwindow,omitempty"`
}

// Extension represents a plugin that contributes items to the tools menu.
type Extension struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// Name is the plugin component name and the unique identifier.
	// Example: local_mcms
	Name string

	// ─────────────────────────────
	// Contribution
	// ─────────────────────────────

	// Items are appended to the tools menu in declaration order.
	Items []ExtensionItem

	// Order is the position of the provider in the extensions file.
	// Items of lower orders come first.
	Order int

	// ─────────────────────────────
	// Provenance
	// ─────────────────────────────

	// Sources indicates where this provider was discovered from.
	// Example: file
	Sources []string

	// CreatedAt is the first time the provider was discovered.
	CreatedAt time.Time

	// UpdatedAt is updated on any mutation.
	UpdatedAt time.Time

	// ─────────────────────────────
	// Liveness & cleanup
	// ─────────────────────────────

	// Disabled marks a provider removed from the file.
	// Its items are no longer contributed and it may be garbage-collected later.
	Disabled bool
}

// HasSource reports whether the provider was seen in the given source.
func (e *Extension) HasSource(source string) bool {
	for _, s := range e.Sources {
		if s == source {
			return true
		}
	}
	return false
}
