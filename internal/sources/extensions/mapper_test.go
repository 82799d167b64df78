package extensions

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MrSnakeDoc/envf/internal/domain"
)

func TestMapperMapExtensions(t *testing.T) {
	config := Config{
		{Name: "local_mcms", Items: []ItemEntry{
			{ID: "mcms", URL: "/local/mcms/index.php", Text: "Pages", Icon: "i/settings"},
			{ID: "nourl", Text: "Broken"},
			{URL: "/noid", Text: "Broken"},
		}},
		{Name: "  "},
		{Name: "local_envf", Items: []ItemEntry{
			{ID: "help", URL: "https://help.example.org", Text: "Help", Color: "secondary", NewWindow: true},
		}},
	}

	extensions, err := NewMapper("primary").MapExtensions(config)
	if err != nil {
		t.Fatalf("MapExtensions() error = %v", err)
	}

	if len(extensions) != 2 {
		t.Fatalf("MapExtensions() returned %d providers, want 2", len(extensions))
	}

	mcms := extensions[0]
	if mcms.Name != "local_mcms" || mcms.Order != 0 || mcms.Disabled {
		t.Errorf("first provider = %+v", mcms)
	}
	want := []domain.ExtensionItem{{ID: "mcms", URL: "/local/mcms/index.php", Text: "Pages", Icon: "i/settings", Color: "primary"}}
	if diff := cmp.Diff(want, mcms.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if !mcms.HasSource(domain.SourceFile) || mcms.CreatedAt.IsZero() {
		t.Errorf("provenance not set: %+v", mcms)
	}

	envf := extensions[1]
	if envf.Order != 1 || envf.Items[0].Color != "secondary" || !envf.Items[0].NewWindow {
		t.Errorf("second provider = %+v", envf)
	}
}

func TestMapperRejectsDuplicateProviders(t *testing.T) {
	config := Config{{Name: "local_mcms"}, {Name: "local_mcms"}}
	if _, err := NewMapper("primary").MapExtensions(config); err == nil {
		t.Error("MapExtensions() should reject duplicate provider names")
	}
}

func TestMapperEmptyConfig(t *testing.T) {
	extensions, err := NewMapper("primary").MapExtensions(nil)
	if err != nil || len(extensions) != 0 {
		t.Errorf("MapExtensions(nil) = %v, %v; want no providers", extensions, err)
	}
}
