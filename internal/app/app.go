package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/envf/internal/config"
	"github.com/MrSnakeDoc/envf/internal/httpserver"
	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/envf/internal/index"
	"github.com/MrSnakeDoc/envf/internal/logger"
	"github.com/MrSnakeDoc/envf/internal/menu"
	"github.com/MrSnakeDoc/envf/internal/metric"
	"github.com/MrSnakeDoc/envf/internal/page"
	"github.com/MrSnakeDoc/envf/internal/redis"
	"github.com/MrSnakeDoc/envf/internal/render"
	"github.com/MrSnakeDoc/envf/internal/scheduler"
	redisstore "github.com/MrSnakeDoc/envf/internal/store/redis"
	"github.com/MrSnakeDoc/envf/internal/theme"
	"github.com/MrSnakeDoc/envf/internal/version"
)

// extensionsContributor is the registry name of the file-backed providers.
const extensionsContributor = "extensions"

type App struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	store    *redisstore.Store // nil when Redis is disabled
	memIndex *index.MemoryIndex
	reloader *scheduler.ExtensionReloader // nil without extensions file
	gc       *scheduler.GarbageCollector
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	loggerClient.Debug("configuration loaded", logger.Any("config", cfg.Redacted()))

	settings, err := theme.LoadSettings(cfg.ThemeFile)
	if err != nil {
		return nil, err
	}

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Providers live in memory, Redis only mirrors them
	memIndex := index.NewMemoryIndex(renderer)
	registry := menu.NewRegistry(loggerClient)
	registry.Register(extensionsContributor, memIndex.Items)

	policy := settings.MenuPolicy()
	composer := menu.NewComposer(
		policy,
		renderer,
		registry,
		page.CourseFormats{Default: cfg.DefaultCourseFormat},
		loggerClient,
	)

	// Interfaces stay nil when Redis is disabled
	var (
		store     *redisstore.Store
		extStore  scheduler.ExtensionStore
		flusher   scheduler.MenuCache
		menuCache deps.MenuCache
		pinger    deps.Pinger
	)
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		redisClient, err := redis.New(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		loggerClient.Info("Redis initialized successfully")

		store = redisstore.NewStore(redisClient)
		extStore, flusher, pinger = store, store, store
		if cfg.MenuCacheTTL > 0 {
			menuCache = store
		}

		syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient)
		if err := syncer.Sync(context.Background()); err != nil {
			loggerClient.Warn("failed to sync from redis on startup, will load from the extensions file",
				logger.Error(err))
		}
	} else {
		loggerClient.Info("redis not configured, providers kept in memory only")
	}

	var (
		reloader      *scheduler.ExtensionReloader
		reloadTrigger chan struct{}
	)
	if cfg.ExtensionsFile != "" {
		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewExtensionReloader(
			cfg.ExtensionsFile,
			policy.ItemColor,
			extStore,
			flusher,
			memIndex,
			loggerClient,
			cfg.ReloadInterval,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("extensions file not configured, tools menu limited to navigation items")
	}

	gc := scheduler.NewGarbageCollector(
		extStore,
		memIndex,
		loggerClient,
		cfg.GCInterval,
		cfg.GCThreshold,
	)

	reg := prometheus.NewRegistry()

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		Composer:        composer,
		Renderer:        renderer,
		Theme:           theme.NewEnvf(settings, renderer),
		Registry:        registry,
		Index:           memIndex,
		MenuCache:       menuCache,
		MenuCacheTTL:    cfg.MenuCacheTTL,
		Redis:           pinger,
		Metrics:         metric.NewMenu(reg),
		MetricsHandler:  metric.Handler(reg),
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		ReloadTrigger:   reloadTrigger,
	}

	return &App{
		cfg:      cfg,
		logger:   loggerClient,
		server:   httpserver.New(cfg, loggerClient, d),
		store:    store,
		memIndex: memIndex,
		reloader: reloader,
		gc:       gc,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting %s v%s on %s", version.Component, version.Version, a.cfg.ListenPort)
	a.logger.Infof("%s %s %s (commit=%s, built=%s, go=%s)",
		version.Component, version.Release, version.Maturity,
		version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start extension reloader: %w", err)
		}
		a.logger.Info("extension reloader started",
			logger.Duration("interval", a.cfg.ReloadInterval),
			logger.Int("providers", a.memIndex.Count()))
	}

	a.gc.Start(ctx)
	a.logger.Info("garbage collector started",
		logger.Duration("interval", a.cfg.GCInterval))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.server.Start(); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("⏳ Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := a.server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}
		return nil
	})

	err := g.Wait()

	if a.reloader != nil {
		a.reloader.Stop()
	}
	a.gc.Stop()

	if a.store != nil {
		if cerr := a.store.Close(); cerr != nil {
			a.logger.Warnf("failed to close redis: %v", cerr)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	if err != nil {
		return err
	}
	a.logger.Info("✅ envf stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
