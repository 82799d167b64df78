package menu

import (
	"github.com/MrSnakeDoc/envf/internal/logger"
	"github.com/MrSnakeDoc/envf/internal/nav"
	"github.com/MrSnakeDoc/envf/internal/page"
)

// ExtendNavigation returns a copy of the page navigation without the entries the user
// may not see: the calendar link and the "my courses" breadcrumb root.
func (c *Composer) ExtendNavigation(p *page.Page, caps page.CapabilityChecker) *nav.Node {
	if p == nil || p.Navigation == nil {
		return nil
	}

	tree := p.Navigation.Clone()
	ctx := p.ContextOrSystem()

	if !has(caps, CalendarViewCapability, ctx) {
		tree = c.prune(tree, "calendar", nav.TypeCustom)
	}
	if !has(caps, ViewCourseBreadcrumbCapability, ctx) {
		tree = c.prune(tree, "mycourses", nav.TypeRoot)
	}
	return tree
}

func (c *Composer) prune(tree *nav.Node, key string, typ nav.Type) *nav.Node {
	if tree == nil {
		return nil
	}
	if tree.Key == key && tree.Type == typ {
		return nil
	}
	if tree.Remove(key, typ) && c.logger != nil {
		c.logger.Debug("navigation node removed",
			logger.String("key", key),
			logger.String("type", typ.String()))
	}
	return tree
}

func has(caps page.CapabilityChecker, name string, ctx page.Context) bool {
	return caps != nil && caps.HasCapability(name, ctx)
}
