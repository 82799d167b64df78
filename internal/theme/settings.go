package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/envf/internal/menu"
)

// Organisation is one entry of the footer organisation list.
type Organisation struct {
	Name    string `yaml:"name" json:"name"`
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
	URL     string `yaml:"url,omitempty" json:"url,omitempty"`
	Logo    string `yaml:"logo,omitempty" json:"logo,omitempty"`
}

// Link is a footer link (legal notices, privacy, ...).
type Link struct {
	Text string `yaml:"text" json:"text"`
	URL  string `yaml:"url" json:"url"`
}

// MenuOverrides replaces the composer allow-lists when set.
type MenuOverrides struct {
	ToolsLayouts  []string `yaml:"tools_layouts,omitempty"`
	SecondaryKeys []string `yaml:"secondary_keys,omitempty"`
}

// Settings is the theme file: admin settings the host would otherwise store.
type Settings struct {
	LogoURL        string         `yaml:"logo_url,omitempty"`
	CompactLogoURL string         `yaml:"compact_logo_url,omitempty"`
	Stylesheets    []string       `yaml:"stylesheets,omitempty"`
	Organisations  []Organisation `yaml:"organisations,omitempty"`
	LegalLinks     []Link         `yaml:"legal_links,omitempty"`
	Menu           MenuOverrides  `yaml:"menu,omitempty"`
}

// LoadSettings reads the theme file. An empty path yields empty settings.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse theme yaml: %w", err)
	}
	return s, nil
}

// MenuPolicy applies the overrides on top of the shipped policy.
func (s Settings) MenuPolicy() menu.Policy {
	p := menu.DefaultPolicy()
	if len(s.Menu.ToolsLayouts) > 0 {
		p.ToolsLayouts = s.Menu.ToolsLayouts
	}
	if len(s.Menu.SecondaryKeys) > 0 {
		p.SecondaryKeys = s.Menu.SecondaryKeys
	}
	return p
}
