package menu

import (
	"html/template"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MrSnakeDoc/envf/internal/logger"
	"github.com/MrSnakeDoc/envf/internal/nav"
	"github.com/MrSnakeDoc/envf/internal/page"
)

// pixIcons renders an icon as its pix name so tests can assert on it.
type pixIcons struct{}

func (pixIcons) Icon(i nav.Icon) template.HTML { return template.HTML(i.Pix) }

func newComposer(reg *Registry) *Composer {
	return NewComposer(DefaultPolicy(), pixIcons{}, reg, page.CourseFormats{Default: "topics"}, logger.NewNop())
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func node(key string, pix string) *nav.Node {
	n := &nav.Node{Key: key, Text: key, Action: "/" + key}
	if pix != "" {
		n.Icon = &nav.Icon{Pix: pix}
	}
	return n
}

func tree(children ...*nav.Node) *nav.Node {
	return &nav.Node{Key: "root", Type: nav.TypeRoot, Children: children}
}

func TestToolsScenarioPrimaryThenAllowedSecondary(t *testing.T) {
	c := newComposer(nil)
	p := &page.Page{
		Layout:       "frontpage",
		PrimaryNav:   tree(node("A", ""), node("B", "")),
		SecondaryNav: tree(node("participants", ""), node("D", "")),
	}

	got := c.Tools(p)

	if diff := cmp.Diff([]string{"A", "B", "participants"}, ids(got.MenuItems)); diff != "" {
		t.Errorf("Tools() order mismatch (-want +got):\n%s", diff)
	}
	if !got.HasItems {
		t.Error("HasItems = false, want true")
	}
}

func TestToolsSecondaryOnlyOnAllowedLayouts(t *testing.T) {
	c := newComposer(nil)
	secondary := tree(node("editsettings", ""), node("participants", ""), node("coursereports", ""))

	tests := []struct {
		layout string
		want   []string
	}{
		{"mycourses", []string{"home", "editsettings", "participants", "coursereports"}},
		{"my-index", []string{"home", "editsettings", "participants", "coursereports"}},
		{"frontpage", []string{"home", "editsettings", "participants", "coursereports"}},
		{"admin", []string{"home", "editsettings", "participants", "coursereports"}},
		{"incourse", []string{"home"}},
		{"course", []string{"home"}},
		{"", []string{"home"}},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			got := c.Tools(&page.Page{
				Layout:       tt.layout,
				PrimaryNav:   tree(node("home", "")),
				SecondaryNav: secondary,
			})
			if diff := cmp.Diff(tt.want, ids(got.MenuItems)); diff != "" {
				t.Errorf("Tools() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToolsNeverIncludesDisallowedSecondaryKeys(t *testing.T) {
	c := newComposer(nil)
	got := c.Tools(&page.Page{
		Layout:       "admin",
		SecondaryNav: tree(node("grades", ""), node("badges", ""), node("questionbank", ""), node("contentbank", "")),
	})

	if diff := cmp.Diff([]string{"questionbank", "contentbank"}, ids(got.MenuItems)); diff != "" {
		t.Errorf("Tools() mismatch (-want +got):\n%s", diff)
	}
}

func TestToolsItemFields(t *testing.T) {
	c := newComposer(nil)
	got := c.Tools(&page.Page{
		PrimaryNav: tree(node("home", "i/navigationitem"), node("dashboard", "i/dashboard"), node("bare", "")),
	})

	want := []Item{
		{ID: "home", URL: "/home", Text: "home", Icon: "book", Color: "primary"},
		{ID: "dashboard", URL: "/dashboard", Text: "dashboard", Icon: "i/dashboard", Color: "primary"},
		{ID: "bare", URL: "/bare", Text: "bare", Icon: "", Color: "primary"},
	}
	if diff := cmp.Diff(want, got.MenuItems); diff != "" {
		t.Errorf("Tools() items mismatch (-want +got):\n%s", diff)
	}
}

func TestToolsDoesNotMutateInput(t *testing.T) {
	c := newComposer(nil)
	primary := tree(node("home", "i/navigationitem"))

	c.Tools(&page.Page{PrimaryNav: primary})

	if pix := primary.Children[0].Icon.Pix; pix != "i/navigationitem" {
		t.Errorf("input icon rewritten to %q", pix)
	}
}

func TestToolsEmpty(t *testing.T) {
	c := newComposer(nil)

	for name, p := range map[string]*page.Page{
		"nil page":      nil,
		"no trees":      {Layout: "frontpage"},
		"empty primary": {PrimaryNav: tree()},
	} {
		t.Run(name, func(t *testing.T) {
			got := c.Tools(p)
			if got.HasItems || len(got.MenuItems) != 0 {
				t.Errorf("Tools() = %+v, want empty", got)
			}
		})
	}
}

func TestToolsAppendsContributorsInRegistrationOrder(t *testing.T) {
	reg := NewRegistry(logger.NewNop())
	reg.Register("first", func() []Item { return []Item{{ID: "x1"}, {ID: "x2"}} })
	reg.Register("broken", func() []Item { panic("boom") })
	reg.Register("second", func() []Item { return []Item{{ID: "y1", NewWindow: true}} })

	c := newComposer(reg)
	got := c.Tools(&page.Page{
		Layout:       "frontpage",
		PrimaryNav:   tree(node("A", "")),
		SecondaryNav: tree(node("participants", "")),
	})

	if diff := cmp.Diff([]string{"A", "participants", "x1", "x2", "y1"}, ids(got.MenuItems)); diff != "" {
		t.Errorf("Tools() mismatch (-want +got):\n%s", diff)
	}
	if !got.MenuItems[4].NewWindow {
		t.Error("contributor items must be appended as-is")
	}
	if diff := cmp.Diff([]string{"first", "broken", "second"}, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestToolsContributorsOnly(t *testing.T) {
	reg := NewRegistry(logger.NewNop())
	reg.Register("only", func() []Item { return []Item{{ID: "z"}} })

	got := newComposer(reg).Tools(nil)
	if !got.HasItems || len(got.MenuItems) != 1 {
		t.Errorf("Tools() = %+v, want the single contributed item", got)
	}
}

func TestNormalizeIconIdempotent(t *testing.T) {
	c := newComposer(nil)

	for _, pix := range []string{"i/navigationitem", "book", "i/settings", ""} {
		t.Run(pix, func(t *testing.T) {
			once := c.NormalizeIcon(nav.Icon{Pix: pix})
			twice := c.NormalizeIcon(once)
			if once != twice {
				t.Errorf("NormalizeIcon not idempotent: %+v then %+v", once, twice)
			}
			if pix == "i/navigationitem" && once.Pix != "book" {
				t.Errorf("NormalizeIcon(%q) = %q, want book", pix, once.Pix)
			}
		})
	}
}
