package menu

// Settings containers looked up in the settings navigation tree.
const (
	ModuleSettingsKey   = "modulesettings"
	CategorySettingsKey = "categorysettings"
	UsersKey            = "users"
	ParticipantsKey     = "participants"
)

// Capabilities consulted when pruning the global navigation.
const (
	CalendarViewCapability         = "theme/envf:calendarview"
	ViewCourseBreadcrumbCapability = "theme/envf:viewcoursebreadcrumb"
)

// Policy holds the fixed composition rules.
type Policy struct {
	// ToolsLayouts are the page layouts on which secondary items join the tools menu.
	ToolsLayouts []string
	// SecondaryKeys are the secondary navigation keys allowed in the tools menu.
	SecondaryKeys []string

	SentinelIcon string
	DefaultIcon  string
	ItemColor    string

	// ReservedFormat courses only show module settings to users holding GradeCapability.
	ReservedFormat  string
	GradeCapability string
}

// DefaultPolicy returns the rules the theme ships with.
func DefaultPolicy() Policy {
	return Policy{
		ToolsLayouts:    []string{"mycourses", "my-index", "frontpage", "admin"},
		SecondaryKeys:   []string{"editsettings", "participants", "coursereports", "questionbank", "contentbank"},
		SentinelIcon:    "i/navigationitem",
		DefaultIcon:     "book",
		ItemColor:       "primary",
		ReservedFormat:  "envfpsup",
		GradeCapability: "moodle/grade:viewall",
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
