package menu

import (
	"html/template"

	"github.com/MrSnakeDoc/envf/internal/nav"
)

// Item is one entry of the tools menu, ready for the template.
type Item struct {
	ID        string        `json:"id" yaml:"id"`
	URL       string        `json:"url" yaml:"url"`
	Text      string        `json:"text" yaml:"text"`
	Icon      template.HTML `json:"icon" yaml:"icon"`
	Color     string        `json:"color" yaml:"color"`
	NewWindow bool          `json:"newwindow" yaml:"newwindow"`
}

// Tools is the data of the tools menu template.
type Tools struct {
	MenuItems []Item `json:"menuitems"`
	HasItems  bool   `json:"hasitems"`
}

// ActionLink is one entry of a contextual settings menu.
type ActionLink struct {
	Text     string        `json:"text"`
	URL      string        `json:"url"`
	Icon     template.HTML `json:"icon,omitempty"`
	Disabled bool          `json:"disabled,omitempty"`
	Indent   bool          `json:"indent,omitempty"`
	Classes  []string      `json:"classes,omitempty"`
}

// ActionMenu is the contextual settings menu of a page.
type ActionMenu struct {
	Links []ActionLink `json:"links"`
}

func (m ActionMenu) Empty() bool { return len(m.Links) == 0 }

// IconRenderer turns an icon reference into markup.
type IconRenderer interface {
	Icon(icon nav.Icon) template.HTML
}
