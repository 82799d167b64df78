package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout (ex: 2s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ThemeFile           string        // theme settings yaml (optional, empty = defaults)
	ExtensionsFile      string        // extension providers yaml (optional, empty = no reloader)
	ReloadInterval      time.Duration // interval to reload the extensions file (default: 1h)
	GCInterval          time.Duration // interval to run garbage collection (default: 24h)
	GCThreshold         time.Duration // disabled providers older than this are deleted (default: 720h)
	MenuCacheTTL        time.Duration // TTL of cached menu responses, 0 disables the cache
	DefaultCourseFormat string        // format of courses posted without one (default: topics)

	// Redis (optional, empty address = memory only)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 2s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	// Per client IP limit on the menu API
	RateLimitBurst  int // requests allowed at once
	RateLimitPerMin int // sustained requests per minute, 0 disables the limit

	AllowedCIDRS []string // optional, restrict /reload, /readyz and /metrics (e.g. "10.0.0.0/8, 127.0.0.1")
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() (*Config, error) {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("ENVF_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("ENVF_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("ENVF_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("ENVF_LOG_LEVEL", "info"),
		PrettyLog: mustBool("ENVF_PRETTY_LOG", true),

		// Theme and extensions
		ThemeFile:           getenv("ENVF_THEME_FILE", ""),
		ExtensionsFile:      getenv("ENVF_EXTENSIONS_FILE", ""),
		ReloadInterval:      mustDuration("ENVF_RELOAD_INTERVAL", time.Hour),
		GCInterval:          mustDuration("ENVF_GC_INTERVAL", 24*time.Hour),
		GCThreshold:         mustDuration("ENVF_GC_THRESHOLD", 30*24*time.Hour),
		MenuCacheTTL:        mustDuration("ENVF_MENU_CACHE_TTL", 5*time.Minute),
		DefaultCourseFormat: getenv("ENVF_DEFAULT_COURSE_FORMAT", "topics"),

		// Redis settings
		RedisAddr:           getenv("ENVF_REDIS_ADDR", ""),
		RedisUser:           getenv("ENVF_REDIS_USERNAME", ""),
		RedisPassword:       getenv("ENVF_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("ENVF_REDIS_DB", 0),
		RedisDT:             mustDuration("ENVF_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("ENVF_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("ENVF_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("ENVF_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("ENVF_REDIS_PING_TIMEOUT", 2*time.Second),
		RedisPoolSize:       getenvInt("ENVF_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("ENVF_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("ENVF_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("ENVF_REDIS_WARN_THRESHOLD", 3),

		RateLimitBurst:  getenvInt("ENVF_RATE_LIMIT_BURST", 50),
		RateLimitPerMin: getenvInt("ENVF_RATE_LIMIT_PER_MIN", 1200),

		// Access restrictions
		AllowedCIDRS: splitAndTrim(getenv("ENVF_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("ENVF_TRUST_PROXY", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.ListenPort == "" {
		errs = append(errs, errors.New("ENVF_LISTEN_PORT is empty"))
	}
	if c.ExtensionsFile != "" && c.ReloadInterval <= 0 {
		errs = append(errs, fmt.Errorf("ENVF_RELOAD_INTERVAL must be > 0, got %v", c.ReloadInterval))
	}
	if c.GCInterval <= 0 {
		errs = append(errs, fmt.Errorf("ENVF_GC_INTERVAL must be > 0, got %v", c.GCInterval))
	}
	if c.MenuCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("ENVF_MENU_CACHE_TTL must be >= 0, got %v", c.MenuCacheTTL))
	}
	if c.RateLimitPerMin < 0 || c.RateLimitBurst < 0 {
		errs = append(errs, errors.New("rate limit settings must be >= 0"))
	}
	return errors.Join(errs...)
}

// RedisEnabled reports whether a Redis address is configured.
func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

// Redacted returns a copy safe to log.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.RedisUser != "" {
		cp.RedisUser = "***REDACTED***"
	}
	return cp
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
