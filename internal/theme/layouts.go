package theme

// Layout declares the page template and block regions of a page layout.
type Layout struct {
	File          string          `json:"file"`
	Regions       []string        `json:"regions"`
	DefaultRegion string          `json:"defaultregion,omitempty"`
	Options       map[string]bool `json:"options,omitempty"`
}

// Layout name of the CMS pages rendered by the companion content plugin.
const MCMSPageLayout = "mcmspage"

func columns2(options map[string]bool) Layout {
	return Layout{File: "columns2.php", Regions: []string{"side-pre"}, DefaultRegion: "side-pre", Options: options}
}

func noBlocks(file string, options map[string]bool) Layout {
	return Layout{File: file, Regions: []string{}, Options: options}
}

// baseLayouts are the parent theme layouts.
func baseLayouts() map[string]Layout {
	return map[string]Layout{
		"base":           noBlocks("columns1.php", nil),
		"standard":       columns2(nil),
		"course":         columns2(map[string]bool{"langmenu": true}),
		"coursecategory": columns2(nil),
		"incourse":       columns2(nil),
		"frontpage":      columns2(map[string]bool{"nonavbar": true}),
		"admin":          columns2(nil),
		"mycourses":      columns2(map[string]bool{"nonavbar": true}),
		"mydashboard":    columns2(map[string]bool{"nonavbar": true, "langmenu": true, "nocontextheader": true}),
		"mypublic":       columns2(nil),
		"login":          noBlocks("login.php", map[string]bool{"langmenu": true}),
		"popup":          noBlocks("columns1.php", map[string]bool{"nofooter": true, "nonavbar": true}),
		"frametop":       noBlocks("columns1.php", map[string]bool{"nofooter": true, "nocoursefooter": true}),
		"embedded":       noBlocks("embedded.php", nil),
		"maintenance":    noBlocks("maintenance.php", nil),
		"print":          noBlocks("columns1.php", map[string]bool{"nofooter": true, "nonavbar": false}),
		"redirect":       noBlocks("embedded.php", nil),
		"report":         columns2(nil),
		"secure":         Layout{File: "secure.php", Regions: []string{"side-pre"}, DefaultRegion: "side-pre"},
	}
}

// envfLayouts adds the CMS page layout and a dashboard without navbar to the parent ones.
func envfLayouts(base map[string]Layout) map[string]Layout {
	out := make(map[string]Layout, len(base)+2)
	for name, l := range base {
		out[name] = l
	}
	out[MCMSPageLayout] = Layout{
		File:          "mcmspage.php",
		Regions:       []string{"content"},
		DefaultRegion: "content",
	}
	out["mydashboard"] = Layout{
		File:          "columns2.php",
		Regions:       []string{"side-pre"},
		DefaultRegion: "side-pre",
		Options:       map[string]bool{"nonavbar": true, "langmenu": true},
	}
	return out
}
