package menu

import (
	"html/template"

	"github.com/MrSnakeDoc/envf/internal/logger"
	"github.com/MrSnakeDoc/envf/internal/nav"
	"github.com/MrSnakeDoc/envf/internal/page"
)

// Composer builds the tools menu and the contextual settings menu of a page.
// It holds no per-request state; every call receives the page explicitly.
type Composer struct {
	policy     Policy
	layouts    map[string]struct{}
	keys       map[string]struct{}
	icons      IconRenderer
	extensions *Registry
	formats    page.FormatResolver
	logger     logger.Logger
}

func NewComposer(
	policy Policy,
	icons IconRenderer,
	extensions *Registry,
	formats page.FormatResolver,
	log logger.Logger,
) *Composer {
	return &Composer{
		policy:     policy,
		layouts:    toSet(policy.ToolsLayouts),
		keys:       toSet(policy.SecondaryKeys),
		icons:      icons,
		extensions: extensions,
		formats:    formats,
		logger:     log,
	}
}

// Policy returns the rules the composer was built with.
func (c *Composer) Policy() Policy { return c.policy }

// NormalizeIcon swaps the generic navigation glyph for the default one.
func (c *Composer) NormalizeIcon(icon nav.Icon) nav.Icon {
	if icon.Pix == c.policy.SentinelIcon {
		icon.Pix = c.policy.DefaultIcon
	}
	return icon
}

// Tools composes the tools menu: all primary items, allow-listed secondary items on
// allow-listed layouts, then registered contributor items.
func (c *Composer) Tools(p *page.Page) Tools {
	var items []Item
	if p != nil {
		for _, n := range p.PrimaryNav.Kids() {
			items = append(items, c.item(n))
		}

		if _, ok := c.layouts[p.Layout]; ok {
			for _, n := range p.SecondaryNav.Kids() {
				if n == nil {
					continue
				}
				if _, allowed := c.keys[n.Key]; !allowed {
					continue
				}
				items = append(items, c.item(n))
			}
		}
	}

	items = append(items, c.extensions.Items()...)

	return Tools{
		MenuItems: items,
		HasItems:  len(items) > 0,
	}
}

func (c *Composer) item(n *nav.Node) Item {
	if n == nil {
		return Item{Color: c.policy.ItemColor}
	}
	return Item{
		ID:        n.Key,
		URL:       n.Action,
		Text:      n.Text,
		Icon:      c.icon(n.Icon, true),
		Color:     c.policy.ItemColor,
		NewWindow: false,
	}
}

func (c *Composer) icon(icon *nav.Icon, normalize bool) template.HTML {
	if icon.IsZero() || c.icons == nil {
		return ""
	}
	i := *icon
	if normalize {
		i = c.NormalizeIcon(i)
	}
	return c.icons.Icon(i)
}
