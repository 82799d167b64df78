package deps

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/envf/internal/index"
	"github.com/MrSnakeDoc/envf/internal/logger"
	"github.com/MrSnakeDoc/envf/internal/menu"
	"github.com/MrSnakeDoc/envf/internal/metric"
	"github.com/MrSnakeDoc/envf/internal/render"
	"github.com/MrSnakeDoc/envf/internal/theme"
)

// MenuCache stores encoded menu responses. *redis.Store implements it.
type MenuCache interface {
	GetCachedMenu(ctx context.Context, key string) ([]byte, error)
	CacheMenu(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// Pinger reports whether a backing service answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Composer *menu.Composer     // tools and settings menu builders
	Renderer *render.Renderer   // html fragments
	Theme    theme.Theme        // logos, layouts and page info
	Registry *menu.Registry     // tools menu contributors
	Index    *index.MemoryIndex // extension providers

	MenuCache    MenuCache     // nil when Redis is disabled
	MenuCacheTTL time.Duration // 0 disables caching
	Redis        Pinger        // nil when Redis is disabled

	Metrics        metric.Menu
	MetricsHandler http.Handler // nil disables /metrics

	AllowedCIDRS    []string      // IPs allowed on /reload, /readyz and /metrics
	TrustProxy      bool          // true if running behind a trusted reverse proxy
	RateLimitBurst  int           // per client IP burst on /api
	RateLimitPerMin int           // per client IP sustained rate on /api, 0 disables
	ReloadTrigger   chan struct{} // manual extension reload, nil when no extensions file
}
