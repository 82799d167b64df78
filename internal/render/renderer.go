package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/MrSnakeDoc/envf/internal/menu"
	"github.com/MrSnakeDoc/envf/internal/nav"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// ErrUnknownTemplate is returned when a template name is not part of the set.
var ErrUnknownTemplate = errors.New("unknown template")

// glyphs maps pix identifiers to Font Awesome classes.
var glyphs = map[string]string{
	"book":               "fa-book",
	"i/navigationitem":   "fa-fw",
	"i/dashboard":        "fa-tachometer",
	"i/home":             "fa-home",
	"i/course":           "fa-graduation-cap",
	"i/settings":         "fa-cog",
	"i/edit":             "fa-pencil",
	"i/users":            "fa-users",
	"i/report":           "fa-area-chart",
	"i/calendar":         "fa-calendar",
	"i/grades":           "fa-table",
	"i/badge":            "fa-shield",
	"i/files":            "fa-file",
	"i/backup":           "fa-file-zip-o",
	"i/restore":          "fa-level-up",
	"i/questions":        "fa-question-circle",
	"i/contentbank":      "fa-paint-brush",
	"i/permissions":      "fa-pencil-square-o",
	"i/filter":           "fa-filter",
	"i/competencies":     "fa-check-square-o",
	"i/privatefiles":     "fa-file-o",
	"t/edit":             "fa-cog",
	"t/delete":           "fa-trash",
	"t/add":              "fa-plus",
	"t/message":          "fa-comment",
	"i/mnethost":         "fa-external-link",
	"i/completion_self":  "fa-user-o",
	"i/enrolusers":       "fa-user-plus",
	"i/switchrole":       "fa-user-secret",
	"i/customfield":      "fa-list",
	"i/outcomes":         "fa-tasks",
	"i/scales":           "fa-signal",
	"i/checkpermissions": "fa-unlock-alt",
}

// Renderer renders menus with the embedded template set.
type Renderer struct {
	tpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tpl, err := template.New("templates").ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Must is New for startup code; it panics on a broken template set.
func Must() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Template executes a named template.
func (r *Renderer) Template(name string, data any) (template.HTML, error) {
	t := r.tpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("render %q: %w", name, ErrUnknownTemplate)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %q: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Icon renders a pix icon. An absent icon renders nothing.
func (r *Renderer) Icon(icon nav.Icon) template.HTML {
	if icon.Pix == "" {
		return ""
	}
	out, err := r.Template("icon", struct {
		Glyph string
		Alt   string
	}{Glyph: Glyph(icon.Pix), Alt: icon.Alt})
	if err != nil {
		return ""
	}
	return out
}

// Tools renders the tools menu.
func (r *Renderer) Tools(tools menu.Tools) (template.HTML, error) {
	return r.Template("toolsmenu", tools)
}

// ActionMenu renders a settings menu. An empty menu renders nothing.
func (r *Renderer) ActionMenu(m menu.ActionMenu) (template.HTML, error) {
	if m.Empty() {
		return "", nil
	}
	return r.Template("actionmenu", m)
}

// Stylesheets renders one link tag per stylesheet URL.
func (r *Renderer) Stylesheets(urls []string) (template.HTML, error) {
	if len(urls) == 0 {
		return "", nil
	}
	return r.Template("stylesheets", urls)
}

// Glyph returns the Font Awesome class of a pix identifier.
// Unknown identifiers use their last path segment: "i/foo" -> "fa-foo".
func Glyph(pix string) string {
	if g, ok := glyphs[pix]; ok {
		return g
	}
	if i := strings.LastIndexByte(pix, '/'); i >= 0 {
		pix = pix[i+1:]
	}
	return "fa-" + pix
}
