package metric

import "github.com/prometheus/client_golang/prometheus"

// Outcome label values of envf_menu_builds_total.
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeBadRequest  = "bad_request"
	OutcomeRenderError = "render_error"
)

// Result label values of envf_menu_cache_total.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Menu groups the counters of the menu endpoints.
type Menu struct {
	Builds IncrementalCounter // labels: menu, outcome
	Cache  IncrementalCounter // labels: result
}

// NewMenu registers the menu counters on reg.
func NewMenu(reg prometheus.Registerer) Menu {
	return Menu{
		Builds: NewCounterWithRegistry(reg, "envf_menu_builds_total",
			"Number of composed menus by menu and outcome.", "menu", "outcome"),
		Cache: NewCounterWithRegistry(reg, "envf_menu_cache_total",
			"Menu cache lookups by result.", "result"),
	}
}

// NopMenu returns counters that record nothing.
func NopMenu() Menu {
	return Menu{Builds: Nop{}, Cache: Nop{}}
}
