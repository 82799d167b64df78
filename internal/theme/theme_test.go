package theme

import (
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MrSnakeDoc/envf/internal/page"
	"github.com/MrSnakeDoc/envf/internal/render"
)

func testSettings() Settings {
	return Settings{
		LogoURL:        "https://lms.example.org/pluginfile.php/1/core_admin/logo/0/logo.png",
		CompactLogoURL: "https://lms.example.org/pluginfile.php/1/core_admin/logocompact/0/compact.png",
		Stylesheets:    []string{"/theme/styles.php/envf/1/all"},
		Organisations:  []Organisation{{Name: "ENVF", Address: "1 avenue du Général de Gaulle"}},
		LegalLinks:     []Link{{Text: "Legal notice", URL: "/local/mcms/page.php?p=legal"}},
	}
}

func TestBaseLogos(t *testing.T) {
	b := NewBase(testSettings())

	logo := b.LogoURL(300, 100)
	if !strings.Contains(logo, "logo.png?maxheight=100&maxwidth=300") {
		t.Errorf("LogoURL() = %q", logo)
	}
	if compact := b.CompactLogoURL(0, 0); !strings.HasSuffix(compact, "compact.png") {
		t.Errorf("CompactLogoURL() = %q, want the compact logo", compact)
	}
	if got := NewBase(Settings{}).LogoURL(10, 10); got != "" {
		t.Errorf("LogoURL() without logo = %q, want empty", got)
	}
}

func TestEnvfCompactLogoIsFullLogo(t *testing.T) {
	th := NewEnvf(testSettings(), render.Must())

	if th.Name() != "envf" {
		t.Errorf("Name() = %q, want envf", th.Name())
	}
	if got, want := th.CompactLogoURL(300, 300), th.LogoURL(300, 300); got != want {
		t.Errorf("CompactLogoURL() = %q, want logo %q", got, want)
	}
}

func TestEnvfAdditionalInfo(t *testing.T) {
	th := NewEnvf(testSettings(), render.Must())

	info, err := th.AdditionalInfo(&page.Page{Layout: "frontpage"})
	if err != nil {
		t.Fatalf("AdditionalInfo() error = %v", err)
	}

	if info.Theme != "envf" || info.Layout != "frontpage" {
		t.Errorf("AdditionalInfo() base fields = %+v", info)
	}
	if diff := cmp.Diff(testSettings().Organisations, info.OrgList); diff != "" {
		t.Errorf("OrgList mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(testSettings().LegalLinks, info.LegalLinks); diff != "" {
		t.Errorf("LegalLinks mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(info.H5PExtraCSS), `href="/theme/styles.php/envf/1/all"`) {
		t.Errorf("H5PExtraCSS = %q", info.H5PExtraCSS)
	}
}

type failingStyles struct{}

func (failingStyles) Stylesheets([]string) (template.HTML, error) {
	return "", errors.New("broken")
}

func TestEnvfAdditionalInfoStylesheetError(t *testing.T) {
	th := NewEnvf(testSettings(), failingStyles{})
	if _, err := th.AdditionalInfo(nil); err == nil {
		t.Error("AdditionalInfo() should surface stylesheet render errors")
	}
}

func TestEnvfLayouts(t *testing.T) {
	layouts := NewEnvf(Settings{}, nil).Layouts()

	mcms, ok := layouts[MCMSPageLayout]
	if !ok {
		t.Fatal("mcmspage layout missing")
	}
	if mcms.File != "mcmspage.php" || mcms.DefaultRegion != "content" {
		t.Errorf("mcmspage layout = %+v", mcms)
	}

	dash := layouts["mydashboard"]
	want := map[string]bool{"nonavbar": true, "langmenu": true}
	if diff := cmp.Diff(want, dash.Options); diff != "" {
		t.Errorf("mydashboard options mismatch (-want +got):\n%s", diff)
	}

	if _, ok := layouts["incourse"]; !ok {
		t.Error("parent layouts should be kept")
	}
	if _, ok := NewBase(Settings{}).Layouts()[MCMSPageLayout]; ok {
		t.Error("base theme must not declare the mcmspage layout")
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := `---
logo_url: https://lms.example.org/logo.png
stylesheets:
  - /theme/styles.php/envf/1/all
organisations:
  - name: ENVF
    url: https://envf.example.org
legal_links:
  - text: Privacy
    url: /admin/tool/policy/view.php
menu:
  tools_layouts: [frontpage]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.LogoURL != "https://lms.example.org/logo.png" || len(s.Organisations) != 1 || len(s.LegalLinks) != 1 {
		t.Errorf("LoadSettings() = %+v", s)
	}

	policy := s.MenuPolicy()
	if diff := cmp.Diff([]string{"frontpage"}, policy.ToolsLayouts); diff != "" {
		t.Errorf("ToolsLayouts mismatch (-want +got):\n%s", diff)
	}
	if len(policy.SecondaryKeys) != 5 {
		t.Errorf("SecondaryKeys = %v, want the shipped defaults", policy.SecondaryKeys)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	if s, err := LoadSettings(""); err != nil || s.LogoURL != "" {
		t.Errorf("LoadSettings(\"\") = %+v, %v; want empty settings", s, err)
	}

	if _, err := LoadSettings("/nonexistent/theme.yaml"); err == nil {
		t.Error("LoadSettings() with missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("organisations: {not: [a list"), 0o644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("LoadSettings() with invalid yaml should fail")
	}
}
