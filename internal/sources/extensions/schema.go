package extensions

// Config is the top-level structure of the extensions file: an ordered list of providers.
type Config []ProviderEntry

// ProviderEntry declares one plugin and the items it adds to the tools menu.
type ProviderEntry struct {
	Name  string      `yaml:"name"`
	Items []ItemEntry `yaml:"items"`
}

// ItemEntry is one menu item as written in the file.
type ItemEntry struct {
	ID        string `yaml:"id"`
	URL       string `yaml:"url"`
	Text      string `yaml:"text"`
	Icon      string `yaml:"icon,omitempty"`
	Color     string `yaml:"color,omitempty"`
	NewWindow bool   `yaml:"newwindow,omitempty"`
}
