package theme

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"github.com/MrSnakeDoc/envf/internal/page"
)

// Info is the extra data every page template receives.
type Info struct {
	Theme       string         `json:"theme"`
	Layout      string         `json:"layout,omitempty"`
	OrgList     []Organisation `json:"orglist,omitempty"`
	LegalLinks  []Link         `json:"legallinks,omitempty"`
	H5PExtraCSS template.HTML  `json:"h5p_extra_css,omitempty"`
}

// Theme is the page renderer strategy a host asks for logos, layouts and template data.
type Theme interface {
	Name() string
	LogoURL(maxWidth, maxHeight int) string
	CompactLogoURL(maxWidth, maxHeight int) string
	AdditionalInfo(p *page.Page) (Info, error)
	Layouts() map[string]Layout
}

// StylesheetRenderer renders link tags for stylesheet URLs.
type StylesheetRenderer interface {
	Stylesheets(urls []string) (template.HTML, error)
}

// Base is the parent theme behaviour.
type Base struct {
	settings Settings
}

func NewBase(settings Settings) *Base {
	return &Base{settings: settings}
}

func (b *Base) Name() string { return "clboost" }

func (b *Base) LogoURL(maxWidth, maxHeight int) string {
	return sized(b.settings.LogoURL, maxWidth, maxHeight)
}

func (b *Base) CompactLogoURL(maxWidth, maxHeight int) string {
	return sized(b.settings.CompactLogoURL, maxWidth, maxHeight)
}

func (b *Base) AdditionalInfo(p *page.Page) (Info, error) {
	info := Info{Theme: b.Name()}
	if p != nil {
		info.Layout = p.Layout
	}
	return info, nil
}

func (b *Base) Layouts() map[string]Layout { return baseLayouts() }

// Overrides replaces selected Theme methods. Each hook receives the theme it overrides.
type Overrides struct {
	Name           string
	CompactLogoURL func(base Theme, maxWidth, maxHeight int) string
	AdditionalInfo func(base Theme, p *page.Page, info Info) (Info, error)
	Layouts        func(base map[string]Layout) map[string]Layout
}

type overridden struct {
	base Theme
	o    Overrides
}

// Override layers o over base. Unset hooks fall through to base.
func Override(base Theme, o Overrides) Theme {
	return &overridden{base: base, o: o}
}

func (t *overridden) Name() string {
	if t.o.Name != "" {
		return t.o.Name
	}
	return t.base.Name()
}

func (t *overridden) LogoURL(maxWidth, maxHeight int) string {
	return t.base.LogoURL(maxWidth, maxHeight)
}

func (t *overridden) CompactLogoURL(maxWidth, maxHeight int) string {
	if t.o.CompactLogoURL != nil {
		return t.o.CompactLogoURL(t.base, maxWidth, maxHeight)
	}
	return t.base.CompactLogoURL(maxWidth, maxHeight)
}

func (t *overridden) AdditionalInfo(p *page.Page) (Info, error) {
	info, err := t.base.AdditionalInfo(p)
	if err != nil {
		return info, err
	}
	info.Theme = t.Name()
	if t.o.AdditionalInfo == nil {
		return info, nil
	}
	return t.o.AdditionalInfo(t.base, p, info)
}

func (t *overridden) Layouts() map[string]Layout {
	if t.o.Layouts != nil {
		return t.o.Layouts(t.base.Layouts())
	}
	return t.base.Layouts()
}

// NewEnvf builds the envf theme: no compact logo (the full logo is used),
// footer organisations and legal links, and theme stylesheets for H5P content.
func NewEnvf(settings Settings, styles StylesheetRenderer) Theme {
	return Override(NewBase(settings), Overrides{
		Name: "envf",
		CompactLogoURL: func(base Theme, maxWidth, maxHeight int) string {
			return base.LogoURL(maxWidth, maxHeight)
		},
		AdditionalInfo: func(_ Theme, _ *page.Page, info Info) (Info, error) {
			info.OrgList = settings.Organisations
			info.LegalLinks = settings.LegalLinks
			if styles != nil {
				css, err := styles.Stylesheets(settings.Stylesheets)
				if err != nil {
					return info, fmt.Errorf("failed to render h5p stylesheets: %w", err)
				}
				info.H5PExtraCSS = css
			}
			return info, nil
		},
		Layouts: envfLayouts,
	})
}

// sized appends the requested bounds to a logo URL. Zero bounds are left out.
func sized(raw string, maxWidth, maxHeight int) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if maxWidth > 0 {
		q.Set("maxwidth", strconv.Itoa(maxWidth))
	}
	if maxHeight > 0 {
		q.Set("maxheight", strconv.Itoa(maxHeight))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
