package menu

import (
	"github.com/MrSnakeDoc/envf/internal/logger"
	"github.com/MrSnakeDoc/envf/internal/nav"
	"github.com/MrSnakeDoc/envf/internal/page"
)

// Settings composes the contextual settings menu of a page.
// Any missing node along the way yields an empty menu.
func (c *Composer) Settings(p *page.Page, caps page.CapabilityChecker) ActionMenu {
	var m ActionMenu
	if p == nil {
		return m
	}

	container := c.settingsContainer(p, caps)
	if container == nil {
		return m
	}
	c.buildActionMenu(&m, container, false)
	return m
}

func (c *Composer) settingsContainer(p *page.Page, caps page.CapabilityChecker) *nav.Node {
	switch p.Level() {
	case page.LevelModule:
		if !c.moduleMenuAllowed(p, caps) {
			return nil
		}
		return p.SettingsNav.Find(ModuleSettingsKey, nav.TypeSetting)

	case page.LevelCourseCategory:
		if p.Type != page.TypeCategoryIndex {
			return nil
		}
		return p.SettingsNav.Find(CategorySettingsKey, nav.TypeContainer)

	default:
		last := p.Navbar.Last()
		if last == nil || last.Key != ParticipantsKey {
			return nil
		}
		return p.SettingsNav.Find(UsersKey, nav.TypeContainer)
	}
}

// moduleMenuAllowed: the menu is forced, or we are on the first page of an activity
// (the breadcrumb leaf is the active activity/resource node). Courses in the reserved
// format additionally require the grade capability.
func (c *Composer) moduleMenuAllowed(p *page.Page, caps page.CapabilityChecker) bool {
	build := p.SettingsMenuForced
	if !build {
		node := p.Navigation.FindActive()
		if node != nil && (node.Type == nav.TypeActivity || node.Type == nav.TypeResource) {
			build = p.Navbar.Last().Matches(node)
		}
	}
	if !build {
		return false
	}
	return c.formatAllows(p, caps)
}

func (c *Composer) formatAllows(p *page.Page, caps page.CapabilityChecker) bool {
	var course page.Course
	if p.Course != nil {
		course = *p.Course
	}

	format := course.Format
	if c.formats != nil {
		format = c.formats.Format(course)
	}
	if format != c.policy.ReservedFormat {
		return true
	}

	allowed := caps != nil && caps.HasCapability(c.policy.GradeCapability, p.ContextOrSystem())
	if !allowed && c.logger != nil {
		c.logger.Debug("module settings menu hidden by course format",
			logger.String("format", format),
			logger.String("capability", c.policy.GradeCapability))
	}
	return allowed
}

// buildActionMenu adds every visible descendant of node, pre-order.
// Nested descendants are indented and nodes without an action become disabled links.
func (c *Composer) buildActionMenu(m *ActionMenu, node *nav.Node, indent bool) {
	for _, child := range node.Kids() {
		if !child.Visible() {
			continue
		}

		link := ActionLink{
			Text:    child.Text,
			URL:     child.Action,
			Icon:    c.icon(child.Icon, false),
			Indent:  indent,
			Classes: child.Classes,
		}
		if link.URL == "" {
			link.URL = "#"
			link.Disabled = true
		}
		m.Links = append(m.Links, link)

		c.buildActionMenu(m, child, true)
	}
}
