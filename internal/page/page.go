package page

import (
	"strings"

	"github.com/MrSnakeDoc/envf/internal/nav"
)

// Level is the context level a page is rendered in.
type Level int

const (
	LevelSystem Level = iota
	LevelUser
	LevelCourseCategory
	LevelCourse
	LevelModule
	LevelBlock
)

var levelNames = map[Level]string{
	LevelSystem:         "system",
	LevelUser:           "user",
	LevelCourseCategory: "coursecat",
	LevelCourse:         "course",
	LevelModule:         "module",
	LevelBlock:          "block",
}

// ParseLevel maps a level name to a Level. Unknown names are LevelSystem.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == s {
			return l
		}
	}
	return LevelSystem
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return levelNames[LevelSystem]
}

func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Level) UnmarshalText(b []byte) error {
	*l = ParseLevel(string(b))
	return nil
}

// Context identifies the scope a capability is checked in.
type Context struct {
	Level      Level `json:"level"`
	InstanceID int64 `json:"instance_id,omitempty"`
}

// SystemContext is used when a page carries no context of its own.
var SystemContext = Context{Level: LevelSystem}

// Course is the course a page belongs to. Format is the course format plugin name.
type Course struct {
	ID     int64  `json:"id"`
	Format string `json:"format,omitempty"`
}

// Category index page type, the only category page that gets a settings menu.
const TypeCategoryIndex = "course-index-category"

// Page is the request-scoped state a host sends for one page render.
// Every builder receives it explicitly.
type Page struct {
	Context            *Context       `json:"context,omitempty"`
	Course             *Course        `json:"course,omitempty"`
	Type               string         `json:"pagetype,omitempty"`
	Layout             string         `json:"pagelayout,omitempty"`
	SettingsMenuForced bool           `json:"settings_menu_forced,omitempty"`
	Navigation         *nav.Node      `json:"navigation,omitempty"`
	SettingsNav        *nav.Node      `json:"settingsnav,omitempty"`
	PrimaryNav         *nav.Node      `json:"primarynav,omitempty"`
	SecondaryNav       *nav.Node      `json:"secondarynav,omitempty"`
	Navbar             nav.Breadcrumb `json:"navbar,omitempty"`
	Capabilities       []string       `json:"capabilities,omitempty"`
}

// ContextOrSystem returns the page context, falling back to the system context.
func (p *Page) ContextOrSystem() Context {
	if p == nil || p.Context == nil {
		return SystemContext
	}
	return *p.Context
}

// Level is the level of the page context.
func (p *Page) Level() Level {
	return p.ContextOrSystem().Level
}
